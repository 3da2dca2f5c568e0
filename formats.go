package moneyfmt

//go:generate go run ./cmd/money-formats -in data/formats.json -out formats_data.go -strict

import (
	"sort"
	"strings"
)

// FormatName selects one of the templates stored per currency.
type FormatName string

const (
	MoneyFormatName             FormatName = "money_format"
	MoneyWithCurrencyFormatName FormatName = "money_with_currency_format"
)

// Valid reports whether the name is one of the known template names.
func (n FormatName) Valid() bool {
	return n == MoneyFormatName || n == MoneyWithCurrencyFormatName
}

// CurrencyFormats holds the display templates for a single currency.
type CurrencyFormats struct {
	MoneyFormat             string `json:"money_format" yaml:"money_format"`
	MoneyWithCurrencyFormat string `json:"money_with_currency_format" yaml:"money_with_currency_format"`
}

// Template returns the template stored under name.
func (f CurrencyFormats) Template(name FormatName) (string, bool) {
	switch name {
	case MoneyFormatName:
		return f.MoneyFormat, f.MoneyFormat != ""
	case MoneyWithCurrencyFormatName:
		return f.MoneyWithCurrencyFormat, f.MoneyWithCurrencyFormat != ""
	default:
		return "", false
	}
}

// FormatTable maps a currency code to its display templates.
type FormatTable map[string]CurrencyFormats

// Template looks up the template for currency/name. The exact code is tried
// first, then its upper-cased form.
func (t FormatTable) Template(currency string, name FormatName) (string, bool) {
	formats, ok := t.Lookup(currency)
	if !ok {
		return "", false
	}
	return formats.Template(name)
}

// Lookup returns the templates stored for currency.
func (t FormatTable) Lookup(currency string) (CurrencyFormats, bool) {
	if len(t) == 0 || currency == "" {
		return CurrencyFormats{}, false
	}
	if formats, ok := t[currency]; ok {
		return formats, true
	}
	formats, ok := t[strings.ToUpper(strings.TrimSpace(currency))]
	return formats, ok
}

// Currencies returns the currency codes in the table, sorted.
func (t FormatTable) Currencies() []string {
	if len(t) == 0 {
		return nil
	}
	codes := make([]string, 0, len(t))
	for code := range t {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Clone returns a copy that can be modified without affecting t.
func (t FormatTable) Clone() FormatTable {
	out := make(FormatTable, len(t))
	for code, formats := range t {
		out[code] = formats
	}
	return out
}

// Merge returns a new table with entries from override replacing those in t.
func (t FormatTable) Merge(override FormatTable) FormatTable {
	out := t.Clone()
	for code, formats := range override {
		out[code] = formats
	}
	return out
}

// Formats returns a copy of the built-in format table.
func Formats() FormatTable {
	return defaultFormats.Clone()
}
