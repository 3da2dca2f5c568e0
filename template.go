package moneyfmt

import (
	"html/template"
	"reflect"
)

// HelperConfig configures template helper exports
type HelperConfig struct {
	// PageKey names the map key or struct field holding the *Page. Defaults to "Page".
	PageKey string
}

// TemplateHelpers exposes the formatter under the snake_case names used by
// Liquid style storefront templates:
//
//	{{ money_format . .Price }}
//	{{ money_with_currency_format . .Price false }}
//	{{ format_money .Price "{{ amount }} kr" }}
//	{{ current_currency . }}
func TemplateHelpers(f *Formatter, cfg HelperConfig) map[string]any {
	if f == nil {
		f = Default()
	}

	render := func(name FormatName) func(any, any, ...bool) template.HTML {
		return func(data any, cents any, html ...bool) template.HTML {
			asHTML := len(html) == 0 || html[0]
			out, _ := f.FormatMoneyWithConversion(extractPage(data, cfg.PageKey), CentsValue(cents), name, asHTML)
			if asHTML {
				return template.HTML(out)
			}
			return template.HTML(template.HTMLEscapeString(out))
		}
	}

	return map[string]any{
		"money_format":               render(MoneyFormatName),
		"money_with_currency_format": render(MoneyWithCurrencyFormatName),
		"format_money": func(cents any, format string) (string, error) {
			return FormatMoney(CentsValue(cents), format)
		},
		"current_currency": func(data any) string {
			code, _ := f.CurrentCurrency(extractPage(data, cfg.PageKey))
			return code
		},
	}
}

// extractPage pulls the page out of template data, accepting a *Page, a map
// or a struct exposing one under pageKey.
func extractPage(data any, pageKey string) *Page {
	if data == nil {
		return nil
	}

	if pageKey == "" {
		pageKey = "Page"
	}

	switch d := data.(type) {
	case *Page:
		return d
	case Page:
		return &d
	case map[string]any:
		if page, ok := d[pageKey].(*Page); ok {
			return page
		}
		return nil
	case map[string]*Page:
		return d[pageKey]
	}

	value := reflect.ValueOf(data)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}

	if value.Kind() == reflect.Struct {
		field := value.FieldByName(pageKey)
		if field.IsValid() && field.CanInterface() {
			if page, ok := field.Interface().(*Page); ok {
				return page
			}
		}
	}

	return nil
}
