// Package moneyfmt formats cent amounts for storefront pages, converting them
// through whichever third-party currency plugin is active on the page.
//
// Detection walks an ordered list of probes (Bold, Currency, Doubly,
// Autoketing, Shopify, ShopifyAnalytics) and keeps the first currency found.
// Formatting then walks an ordered list of strategies, one per plugin plus a
// built-in table strategy, and keeps the first non-empty result.
package moneyfmt

import "sync"

// Formatter is the public entry point over a Dispatcher. It is safe for
// concurrent use as long as its hooks are.
type Formatter struct {
	dispatcher *Dispatcher
	formats    FormatTable
	hooks      []FormatHook
}

// New builds a Formatter from options.
func New(opts ...Option) (*Formatter, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.BuildFormatter()
}

// Dispatcher exposes the underlying dispatcher.
func (f *Formatter) Dispatcher() *Dispatcher {
	if f == nil {
		return nil
	}
	return f.dispatcher
}

// Formats returns a copy of the format table used by the built-in strategy.
func (f *Formatter) Formats() FormatTable {
	if f == nil {
		return nil
	}
	return f.formats.Clone()
}

// CurrentCurrency returns the display currency active on page.
func (f *Formatter) CurrentCurrency(page *Page) (string, bool) {
	if f == nil {
		return "", false
	}
	return f.dispatcher.Detector().CurrentCurrency(page)
}

// FormatMoneyWithConversion renders cents with the template called name in
// the active display currency. With html false any markup is stripped.
func (f *Formatter) FormatMoneyWithConversion(page *Page, cents float64, name FormatName, html bool) (string, bool) {
	if f == nil {
		return "", false
	}

	if len(f.hooks) == 0 {
		return f.dispatcher.FormatMoneyWithConversion(page, cents, name, html)
	}

	ctx := &FormatHookContext{Page: page, Cents: cents, Format: name, HTML: html}
	runBeforeHooks(f.hooks, ctx)

	res, ok := f.dispatcher.Dispatch(page, cents, name, html)
	ctx.Currency = res.Currency
	ctx.Probe = res.Probe
	ctx.Strategy = res.Strategy
	ctx.Result = res.Text
	ctx.OK = ok

	runAfterHooks(f.hooks, ctx)
	return res.Text, ok
}

// MoneyFormat renders cents with the money_format template.
func (f *Formatter) MoneyFormat(page *Page, cents float64, html bool) (string, bool) {
	return f.FormatMoneyWithConversion(page, cents, MoneyFormatName, html)
}

// MoneyWithCurrencyFormat renders cents with the money_with_currency_format template.
func (f *Formatter) MoneyWithCurrencyFormat(page *Page, cents float64, html bool) (string, bool) {
	return f.FormatMoneyWithConversion(page, cents, MoneyWithCurrencyFormatName, html)
}

var (
	defaultFormatterOnce sync.Once
	defaultFormatter     *Formatter
)

// Default returns the package level Formatter built with default options.
func Default() *Formatter {
	defaultFormatterOnce.Do(func() {
		f, err := New()
		if err != nil {
			panic(err)
		}
		defaultFormatter = f
	})
	return defaultFormatter
}

// CurrentCurrency uses the default Formatter.
func CurrentCurrency(page *Page) (string, bool) {
	return Default().CurrentCurrency(page)
}

// FormatMoneyWithConversion uses the default Formatter.
func FormatMoneyWithConversion(page *Page, cents float64, name FormatName, html bool) (string, bool) {
	return Default().FormatMoneyWithConversion(page, cents, name, html)
}

// MoneyFormat uses the default Formatter.
func MoneyFormat(page *Page, cents float64, html bool) (string, bool) {
	return Default().MoneyFormat(page, cents, html)
}

// MoneyWithCurrencyFormat uses the default Formatter.
func MoneyWithCurrencyFormat(page *Page, cents float64, html bool) (string, bool) {
	return Default().MoneyWithCurrencyFormat(page, cents, html)
}
