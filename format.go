package moneyfmt

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Placeholder keys understood by FormatMoney.
const (
	KeyAmount                             = "amount"
	KeyAmountNoDecimals                   = "amount_no_decimals"
	KeyAmountWithCommaSeparator           = "amount_with_comma_separator"
	KeyAmountNoDecimalsWithCommaSeparator = "amount_no_decimals_with_comma_separator"
	KeyAmountWithApostropheSeparator      = "amount_with_apostrophe_separator"
)

var placeholderPattern = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)

var placeholderPresets = map[string]Delimiters{
	KeyAmount:                             {Precision: 2, Thousands: ",", Decimal: "."},
	KeyAmountNoDecimals:                   {Precision: 0, Thousands: ",", Decimal: "."},
	KeyAmountWithCommaSeparator:           {Precision: 2, Thousands: ".", Decimal: ","},
	KeyAmountNoDecimalsWithCommaSeparator: {Precision: 0, Thousands: ".", Decimal: ","},
	KeyAmountWithApostropheSeparator:      {Precision: 0, Thousands: "'", Decimal: "."},
}

// PresetFor returns the delimiters used for a placeholder key.
func PresetFor(key string) (Delimiters, bool) {
	d, ok := placeholderPresets[key]
	return d, ok
}

// PlaceholderKey extracts the key of the first {{ key }} token in format.
func PlaceholderKey(format string) (string, bool) {
	match := placeholderPattern.FindStringSubmatch(format)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// FormatMoney substitutes the cent amount into the placeholder of format.
//
// Unknown placeholder keys are replaced with an empty string. A template
// without a placeholder is a caller error and yields ErrMissingPlaceholder.
func FormatMoney(cents float64, format string) (string, error) {
	loc := placeholderPattern.FindStringSubmatchIndex(format)
	if loc == nil {
		return "", fmt.Errorf("%w: %q", ErrMissingPlaceholder, format)
	}

	key := format[loc[2]:loc[3]]

	var value string
	if preset, ok := placeholderPresets[key]; ok {
		value = FormatWithDelimiters(cents, preset)
	}

	return format[:loc[0]] + value + format[loc[1]:], nil
}

// FormatMoneyString is FormatMoney for amounts handed over as numeral strings.
func FormatMoneyString(cents, format string) (string, error) {
	return FormatMoney(NormalizeCents(cents), format)
}

// MustFormatMoney is like FormatMoney but panics when format has no placeholder.
func MustFormatMoney(cents float64, format string) string {
	out, err := FormatMoney(cents, format)
	if err != nil {
		panic(err)
	}
	return out
}

// NormalizeCents parses a cent numeral as emitted by storefront templates.
// Every "." is dropped since it is a grouping artifact, not a decimal point.
// Empty input is zero; anything unparsable is NaN.
func NormalizeCents(raw string) float64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, ".", ""))
	if cleaned == "" {
		return 0
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return math.NaN()
	}
	return value
}

// CentsValue coerces a template argument into a cent amount.
func CentsValue(v any) float64 {
	switch value := v.(type) {
	case nil:
		return math.NaN()
	case float64:
		return value
	case float32:
		return float64(value)
	case int:
		return float64(value)
	case int8:
		return float64(value)
	case int16:
		return float64(value)
	case int32:
		return float64(value)
	case int64:
		return float64(value)
	case uint:
		return float64(value)
	case uint8:
		return float64(value)
	case uint16:
		return float64(value)
	case uint32:
		return float64(value)
	case uint64:
		return float64(value)
	case string:
		return NormalizeCents(value)
	case json.Number:
		return NormalizeCents(value.String())
	case fmt.Stringer:
		return NormalizeCents(value.String())
	default:
		return math.NaN()
	}
}
