package moneyfmt

// Page is a read-only snapshot of the storefront page a price is rendered on.
// Each field stands for a global or element owned by a third-party script;
// any of them may be nil when that script is not installed.
type Page struct {
	// Bold is the BOLDCURRENCY global.
	Bold BoldCurrency
	// Currency is the Currency global exposed by currencies.js style plugins.
	Currency CurrencyConverter
	// Doubly is the DoublyGlobalCurrency global.
	Doubly CurrencyConverter
	// Document gives access to rendered elements, used by DOM driven plugins.
	Document Document
	// Storage is the durable client-side key/value store (localStorage).
	Storage Storage
	// Shopify holds window.Shopify.
	Shopify *ShopifyGlobal
	// Analytics holds window.ShopifyAnalytics.
	Analytics *ShopifyAnalytics
}

// ShopifyGlobal mirrors the parts of window.Shopify read by this package.
type ShopifyGlobal struct {
	Currency ShopifyCurrency
}

// ShopifyCurrency mirrors window.Shopify.currency.
type ShopifyCurrency struct {
	Active string
}

// ShopifyAnalytics mirrors window.ShopifyAnalytics.
type ShopifyAnalytics struct {
	Meta ShopifyAnalyticsMeta
}

// ShopifyAnalyticsMeta mirrors window.ShopifyAnalytics.meta.
type ShopifyAnalyticsMeta struct {
	Currency string
}

// BoldCurrency is the API of the Bold multi-currency plugin.
type BoldCurrency interface {
	CurrentCurrency() string
	// ConvertPrice converts cents from the shop currency into currency.
	ConvertPrice(cents float64, currency string) (float64, error)
	// FormatMoney renders converted cents using Bold's own formats.
	FormatMoney(cents float64) (string, error)
}

// CurrencyConverter is the API shared by the Currency and DoublyGlobalCurrency plugins.
type CurrencyConverter interface {
	CurrentCurrency() string
	Convert(cents float64, from, to string) (float64, error)
	MoneyFormat(currency string, name FormatName) (string, bool)
	FormatMoney(cents float64, format string) (string, error)
}

// ShopCurrency returns the currency the shop prices are stored in.
func (p *Page) ShopCurrency() (string, bool) {
	if p == nil || p.Shopify == nil || p.Shopify.Currency.Active == "" {
		return "", false
	}
	return p.Shopify.Currency.Active, true
}
