package moneyfmt

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Delimiters controls how a cent amount is rendered by FormatWithDelimiters.
type Delimiters struct {
	Precision int
	Thousands string
	Decimal   string
}

// DefaultDelimiters renders two decimals with "," grouping and "." as decimal mark.
var DefaultDelimiters = Delimiters{Precision: 2, Thousands: ",", Decimal: "."}

// FormatWithDelimiters renders number, a cent amount, as a grouped decimal string.
//
// The value is divided by 100 in float64 and the exact binary value of the
// quotient is rounded half away from zero to d.Precision digits, so 100.5
// renders as "1.00" because 1.005 is stored just below the tie. Thousands
// separators are inserted every three digits of the integer part. NaN and
// infinite inputs render as "0".
func FormatWithDelimiters(number float64, d Delimiters) string {
	if math.IsNaN(number) || math.IsInf(number, 0) {
		return "0"
	}

	precision := d.Precision
	if precision < 0 {
		precision = 0
	}

	fixed := roundQuotient(number/100, int32(precision))

	integerPart, fraction, _ := strings.Cut(fixed, ".")
	result := groupThousands(integerPart, d.Thousands)
	if fraction != "" {
		result += d.Decimal + fraction
	}
	return result
}

// exactDigits is enough fractional digits to print any float64 without rounding.
const exactDigits = 1074

func roundQuotient(q float64, precision int32) string {
	exact, err := decimal.NewFromString(strconv.FormatFloat(q, 'f', exactDigits, 64))
	if err != nil {
		return "0"
	}
	return exact.StringFixed(precision)
}

func groupThousands(integerPart, sep string) string {
	sign := ""
	if strings.HasPrefix(integerPart, "-") {
		sign = "-"
		integerPart = integerPart[1:]
	}

	if len(integerPart) <= 3 || sep == "" {
		return sign + integerPart
	}

	var result strings.Builder
	result.WriteString(sign)
	for i, digit := range integerPart {
		if i > 0 && (len(integerPart)-i)%3 == 0 {
			result.WriteString(sep)
		}
		result.WriteRune(digit)
	}
	return result.String()
}
