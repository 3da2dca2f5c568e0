package moneyfmt

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if len(cfg.Probes) != 6 {
		t.Fatalf("expected 6 default probes, got %d", len(cfg.Probes))
	}
	if len(cfg.Strategies) != 5 {
		t.Fatalf("expected 5 default strategies, got %d", len(cfg.Strategies))
	}
	if cfg.RatesKey != AutoketingRatesKey {
		t.Fatalf("RatesKey = %q", cfg.RatesKey)
	}
	if cfg.Logger == nil {
		t.Fatal("expected default logger")
	}
	if len(cfg.Formats) != len(Formats()) {
		t.Fatalf("expected built-in table, got %d currencies", len(cfg.Formats))
	}
}

func TestWithFormatsOverridesBuiltIns(t *testing.T) {
	f, err := New(WithFormats(FormatTable{
		"USD": {MoneyFormat: "US${{amount}}", MoneyWithCurrencyFormat: "US${{amount}} USD"},
		"ISK": {MoneyFormat: "{{amount_no_decimals}} kr", MoneyWithCurrencyFormat: "{{amount_no_decimals}} ISK"},
	}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	page := &Page{Shopify: &ShopifyGlobal{Currency: ShopifyCurrency{Active: "USD"}}}
	if got, _ := f.MoneyFormat(page, 250, true); got != "US$2.50" {
		t.Fatalf("MoneyFormat(USD) = %q", got)
	}

	page.Shopify.Currency.Active = "ISK"
	if got, _ := f.MoneyWithCurrencyFormat(page, 123456, true); got != "1,235 ISK" {
		t.Fatalf("MoneyWithCurrencyFormat(ISK) = %q", got)
	}

	if _, ok := f.Formats()["EUR"]; !ok {
		t.Fatal("expected built-in EUR to remain")
	}
}

func TestWithFormatFiles(t *testing.T) {
	f, err := New(WithFormatFiles(filepath.Join("testdata", "formats_override.yaml")))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	page := &Page{Analytics: &ShopifyAnalytics{Meta: ShopifyAnalyticsMeta{Currency: "ISK"}}}
	if got, ok := f.MoneyFormat(page, 1234567, true); !ok || got != "12.346 kr" {
		t.Fatalf("MoneyFormat(ISK) = %q,%v", got, ok)
	}
}

func TestWithFormatFilesError(t *testing.T) {
	_, err := New(WithFormatFiles(filepath.Join("testdata", "formats_invalid.json")))
	if !errors.Is(err, ErrMissingPlaceholder) {
		t.Fatalf("expected ErrMissingPlaceholder, got %v", err)
	}
}

func TestWithStrategiesEmpty(t *testing.T) {
	if _, err := New(WithStrategies()); !errors.Is(err, ErrNoStrategies) {
		t.Fatalf("expected ErrNoStrategies, got %v", err)
	}
}

func TestWithProbesAndStrategies(t *testing.T) {
	f, err := New(
		WithProbes(NewProbe("fixed", func(*Page) (string, error) { return "JPY", nil })),
		WithStrategies(TableStrategy(Formats())),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if names := f.Dispatcher().Detector().Probes(); len(names) != 1 || names[0] != "fixed" {
		t.Fatalf("Probes() = %v", names)
	}

	if got, ok := f.MoneyFormat(nil, 150, false); !ok || got != "¥2" {
		t.Fatalf("MoneyFormat() = %q,%v", got, ok)
	}
}

func TestWithRatesKey(t *testing.T) {
	page := &Page{
		Document: selectorDocument(`<span class="autoketing-currency-convert-currency-selected">GBP</span>`),
		Storage:  MapStorage{"custom-rates": `{"USD":{"rate":1},"GBP":{"rate":0.5,"money_format":"&pound;{{amount}}"}}`},
		Shopify:  &ShopifyGlobal{Currency: ShopifyCurrency{Active: "USD"}},
	}

	f, err := New(WithRatesKey("custom-rates"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got, ok := f.MoneyFormat(page, 1000, true); !ok || got != "&pound;5.00" {
		t.Fatalf("MoneyFormat() = %q,%v", got, ok)
	}
}

func TestOptionError(t *testing.T) {
	boom := errors.New("boom")
	_, err := New(func(*Config) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected option error, got %v", err)
	}
}

func TestBuildFormatterNilConfig(t *testing.T) {
	var cfg *Config
	if _, err := cfg.BuildFormatter(); !errors.Is(err, ErrNoStrategies) {
		t.Fatalf("expected ErrNoStrategies, got %v", err)
	}
}
