package moneyfmt

import "fmt"

// BoldProbe reads BOLDCURRENCY.currentCurrency.
func BoldProbe() CurrencyProbe {
	return NewProbe("bold", func(page *Page) (string, error) {
		if page == nil || page.Bold == nil {
			return "", ErrPluginAbsent
		}
		return page.Bold.CurrentCurrency(), nil
	})
}

// BoldStrategy converts with BOLDCURRENCY.converter and formats with Bold's own formats.
func BoldStrategy() FormatStrategy {
	return NewStrategy("bold", func(page *Page, req FormatRequest) (string, error) {
		if page == nil || page.Bold == nil {
			return "", ErrPluginAbsent
		}
		converted, err := page.Bold.ConvertPrice(req.Cents, req.Currency)
		if err != nil {
			return "", fmt.Errorf("bold convert: %w", err)
		}
		return page.Bold.FormatMoney(converted)
	})
}
