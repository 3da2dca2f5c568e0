package moneyfmt

// ShopifyProbe reads Shopify.currency.active.
func ShopifyProbe() CurrencyProbe {
	return NewProbe("shopify", func(page *Page) (string, error) {
		if page == nil || page.Shopify == nil {
			return "", ErrPluginAbsent
		}
		return page.Shopify.Currency.Active, nil
	})
}

// ShopifyAnalyticsProbe reads ShopifyAnalytics.meta.currency.
func ShopifyAnalyticsProbe() CurrencyProbe {
	return NewProbe("shopify-analytics", func(page *Page) (string, error) {
		if page == nil || page.Analytics == nil {
			return "", ErrPluginAbsent
		}
		return page.Analytics.Meta.Currency, nil
	})
}
