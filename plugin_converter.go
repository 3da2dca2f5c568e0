package moneyfmt

import (
	"fmt"
	"math"
	"strings"
)

// ConverterProbe reads CurrentCurrency from the converter chosen by pick.
func ConverterProbe(name string, pick func(*Page) CurrencyConverter) CurrencyProbe {
	return NewProbe(name, func(page *Page) (string, error) {
		converter := pickConverter(page, pick)
		if converter == nil {
			return "", ErrPluginAbsent
		}
		return converter.CurrentCurrency(), nil
	})
}

// ConverterStrategy converts from the shop currency to the detected one and
// renders the result with the converter's own template for the currency.
func ConverterStrategy(name string, pick func(*Page) CurrencyConverter) FormatStrategy {
	return NewStrategy(name, func(page *Page, req FormatRequest) (string, error) {
		converter := pickConverter(page, pick)
		if converter == nil {
			return "", ErrPluginAbsent
		}

		base, ok := page.ShopCurrency()
		if !ok {
			return "", ErrBaseCurrencyUnknown
		}

		converted, err := converter.Convert(req.Cents, base, req.Currency)
		if err != nil {
			return "", fmt.Errorf("%s convert %s->%s: %w", name, base, req.Currency, err)
		}

		format, ok := converter.MoneyFormat(req.Currency, req.Format)
		if !ok {
			return "", fmt.Errorf("%s: %w %q", name, ErrUnknownCurrency, req.Currency)
		}

		return converter.FormatMoney(converted, format)
	})
}

// CurrencyGlobalProbe reads Currency.currentCurrency.
func CurrencyGlobalProbe() CurrencyProbe {
	return ConverterProbe("currency", currencyGlobal)
}

// CurrencyGlobalStrategy formats through the Currency global.
func CurrencyGlobalStrategy() FormatStrategy {
	return ConverterStrategy("currency", currencyGlobal)
}

// DoublyProbe reads DoublyGlobalCurrency.currentCurrency.
func DoublyProbe() CurrencyProbe {
	return ConverterProbe("doubly", doublyGlobal)
}

// DoublyStrategy formats through the DoublyGlobalCurrency global.
func DoublyStrategy() FormatStrategy {
	return ConverterStrategy("doubly", doublyGlobal)
}

func currencyGlobal(page *Page) CurrencyConverter { return page.Currency }

func doublyGlobal(page *Page) CurrencyConverter { return page.Doubly }

func pickConverter(page *Page, pick func(*Page) CurrencyConverter) CurrencyConverter {
	if page == nil || pick == nil {
		return nil
	}
	return pick(page)
}

// StaticConverter is a CurrencyConverter over a fixed rate cache.
// Rates hold the value of one unit of each currency in a shared reference
// currency, so Convert(x, from, to) = x * Rates[from] / Rates[to].
type StaticConverter struct {
	Active  string
	Rates   map[string]float64
	Formats FormatTable
}

var _ CurrencyConverter = &StaticConverter{}

// CurrentCurrency implements CurrencyConverter.
func (c *StaticConverter) CurrentCurrency() string {
	if c == nil {
		return ""
	}
	return c.Active
}

// Convert implements CurrencyConverter.
func (c *StaticConverter) Convert(cents float64, from, to string) (float64, error) {
	if c == nil {
		return 0, ErrPluginAbsent
	}
	if strings.EqualFold(from, to) {
		return cents, nil
	}
	fromRate, err := c.rate(from)
	if err != nil {
		return 0, err
	}
	toRate, err := c.rate(to)
	if err != nil {
		return 0, err
	}
	return cents * fromRate / toRate, nil
}

// MoneyFormat implements CurrencyConverter.
func (c *StaticConverter) MoneyFormat(currency string, name FormatName) (string, bool) {
	if c == nil {
		return "", false
	}
	formats := c.Formats
	if formats == nil {
		formats = defaultFormats
	}
	return formats.Template(currency, name)
}

// FormatMoney implements CurrencyConverter.
func (c *StaticConverter) FormatMoney(cents float64, format string) (string, error) {
	return FormatMoney(cents, format)
}

func (c *StaticConverter) rate(currency string) (float64, error) {
	rate, ok := c.Rates[currency]
	if !ok {
		rate, ok = c.Rates[strings.ToUpper(currency)]
	}
	if !ok {
		return 0, fmt.Errorf("%w %q: no rate", ErrUnknownCurrency, currency)
	}
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0, fmt.Errorf("invalid rate %v for %q", rate, currency)
	}
	return rate, nil
}
