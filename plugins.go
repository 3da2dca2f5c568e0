package moneyfmt

import "fmt"

// TableStrategy is the built-in strategy: no conversion, templates from table.
func TableStrategy(table FormatTable) FormatStrategy {
	return NewStrategy("table", func(_ *Page, req FormatRequest) (string, error) {
		if !req.Format.Valid() {
			return "", fmt.Errorf("%w %q", ErrUnknownFormat, req.Format)
		}
		format, ok := table.Template(req.Currency, req.Format)
		if !ok {
			return "", fmt.Errorf("%w %q", ErrUnknownCurrency, req.Currency)
		}
		return FormatMoney(req.Cents, format)
	})
}

// DefaultProbes returns the detection order used by New: Bold, Currency,
// Doubly, Autoketing, then the Shopify platform signals.
func DefaultProbes() []CurrencyProbe {
	return []CurrencyProbe{
		BoldProbe(),
		CurrencyGlobalProbe(),
		DoublyProbe(),
		AutoketingProbe(),
		ShopifyProbe(),
		ShopifyAnalyticsProbe(),
	}
}

// DefaultStrategies returns the plugin strategies in detection order followed
// by the built-in table strategy.
func DefaultStrategies(table FormatTable, ratesKey string) []FormatStrategy {
	return []FormatStrategy{
		BoldStrategy(),
		CurrencyGlobalStrategy(),
		DoublyStrategy(),
		AutoketingStrategy(ratesKey),
		TableStrategy(table),
	}
}
