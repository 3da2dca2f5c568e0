package moneyfmt

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

const (
	// AutoketingRatesKey is the storage key the Autoketing plugin caches its rates under.
	AutoketingRatesKey = "autoketing-currency-get-rate-v2"
	// AutoketingSelector matches the element showing the selected Autoketing currency.
	AutoketingSelector = ".autoketing-currency-convert-currency-selected"
)

// RateDescriptor is a single Autoketing rate entry: the rate against a common
// reference plus the templates used to display the currency.
type RateDescriptor struct {
	Rate float64 `json:"rate"`
	CurrencyFormats
}

// RateTable is the Autoketing rate cache keyed by currency code.
type RateTable map[string]RateDescriptor

// ParseRateTable decodes a stored rate table.
func ParseRateTable(data []byte) (RateTable, error) {
	var table RateTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRates, err)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrMalformedRates)
	}
	return table, nil
}

// Lookup returns the descriptor for currency, trying the upper-cased code second.
func (t RateTable) Lookup(currency string) (RateDescriptor, bool) {
	if d, ok := t[currency]; ok {
		return d, true
	}
	d, ok := t[strings.ToUpper(strings.TrimSpace(currency))]
	return d, ok
}

// Convert computes cents / rate[from] * rate[to].
func (t RateTable) Convert(cents float64, from, to string) (float64, error) {
	source, ok := t.Lookup(from)
	if !ok {
		return 0, fmt.Errorf("%w %q: no rate", ErrUnknownCurrency, from)
	}
	target, ok := t.Lookup(to)
	if !ok {
		return 0, fmt.Errorf("%w %q: no rate", ErrUnknownCurrency, to)
	}
	if source.Rate == 0 || math.IsNaN(source.Rate) || math.IsInf(source.Rate, 0) {
		return 0, fmt.Errorf("%w: invalid rate %v for %q", ErrMalformedRates, source.Rate, from)
	}
	return cents / source.Rate * target.Rate, nil
}

// AutoketingProbe reads the currency shown in the Autoketing switcher element.
func AutoketingProbe() CurrencyProbe {
	return NewProbe("autoketing", func(page *Page) (string, error) {
		if page == nil || page.Document == nil {
			return "", ErrPluginAbsent
		}
		text, ok := page.Document.QuerySelectorText(AutoketingSelector)
		if !ok {
			return "", ErrPluginAbsent
		}
		return strings.TrimSpace(text), nil
	})
}

// AutoketingStrategy converts with the rate table cached in storage under key
// and formats with the template stored next to the target rate. An empty key
// uses AutoketingRatesKey.
func AutoketingStrategy(key string) FormatStrategy {
	if key == "" {
		key = AutoketingRatesKey
	}
	return NewStrategy("autoketing", func(page *Page, req FormatRequest) (string, error) {
		if page == nil || page.Storage == nil {
			return "", ErrPluginAbsent
		}
		raw, ok := page.Storage.Item(key)
		if !ok {
			return "", ErrPluginAbsent
		}

		rates, err := ParseRateTable([]byte(raw))
		if err != nil {
			return "", err
		}

		base, ok := page.ShopCurrency()
		if !ok {
			return "", ErrBaseCurrencyUnknown
		}

		value, err := rates.Convert(req.Cents, base, req.Currency)
		if err != nil {
			return "", err
		}

		target, _ := rates.Lookup(req.Currency)
		format, ok := target.Template(req.Format)
		if !ok {
			return "", fmt.Errorf("autoketing: %w %q for %s", ErrUnknownFormat, req.Format, req.Currency)
		}

		return FormatMoney(value, format)
	})
}
