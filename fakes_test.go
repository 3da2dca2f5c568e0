package moneyfmt

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeBold struct {
	currency string
	rate     float64
	err      error
	calls    int
}

func (b *fakeBold) CurrentCurrency() string { return b.currency }

func (b *fakeBold) ConvertPrice(cents float64, currency string) (float64, error) {
	b.calls++
	if b.err != nil {
		return 0, b.err
	}
	return cents * b.rate, nil
}

func (b *fakeBold) FormatMoney(cents float64) (string, error) {
	return FormatMoney(cents, "<span class=\"bold-money\">{{amount}}</span>")
}

type panicConverter struct{}

func (panicConverter) CurrentCurrency() string { panic("currency plugin not initialised") }

func (panicConverter) Convert(float64, string, string) (float64, error) {
	panic("currency plugin not initialised")
}

func (panicConverter) MoneyFormat(string, FormatName) (string, bool) { return "", false }

func (panicConverter) FormatMoney(float64, string) (string, error) { return "", nil }

var errRatesUnavailable = errors.New("rates unavailable")

type failingConverter struct {
	active string
}

func (c failingConverter) CurrentCurrency() string { return c.active }

func (c failingConverter) Convert(float64, string, string) (float64, error) {
	return 0, errRatesUnavailable
}

func (c failingConverter) MoneyFormat(string, FormatName) (string, bool) { return "", false }

func (c failingConverter) FormatMoney(float64, string) (string, error) {
	return "", errRatesUnavailable
}

func loadDocument(t *testing.T, name string) *HTMLDocument {
	t.Helper()

	f, err := os.Open(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("open %s: %v", name, err)
	}
	defer f.Close()

	doc, err := ParseHTMLDocument(f)
	if err != nil {
		t.Fatalf("ParseHTMLDocument: %v", err)
	}
	return doc
}

func readTestdata(t *testing.T, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(data)
}

func autoketingPage(t *testing.T, shop string) *Page {
	t.Helper()

	return &Page{
		Document: loadDocument(t, "storefront.html"),
		Storage:  MapStorage{AutoketingRatesKey: readTestdata(t, "rates_autoketing.json")},
		Shopify:  &ShopifyGlobal{Currency: ShopifyCurrency{Active: shop}},
	}
}

func selectorDocument(html string) Document {
	doc, err := ParseHTMLDocument(strings.NewReader(html))
	if err != nil {
		panic(fmt.Sprintf("parse: %v", err))
	}
	return doc
}
