package moneyfmt

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestFileLoaderJSONAndYAML(t *testing.T) {
	loader := NewFileLoader(
		filepath.Join("testdata", "formats_extra.json"),
		filepath.Join("testdata", "formats_override.yaml"),
	)

	table, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(table) != 3 {
		t.Fatalf("expected 3 currencies, got %d: %v", len(table), table.Currencies())
	}

	if got := table["USD"].MoneyWithCurrencyFormat; got != "US${{ amount }} USD" {
		t.Fatalf("later file should win for USD, got %q", got)
	}

	if got := table["ISK"].MoneyFormat; got != "{{ amount_no_decimals_with_comma_separator }} kr" {
		t.Fatalf("unexpected ISK template %q", got)
	}

	if _, ok := table["BTC"]; !ok {
		t.Fatal("expected non-ISO code to be kept upper-cased")
	}
}

func TestFileLoaderUnsupportedExtension(t *testing.T) {
	loader := NewFileLoader(filepath.Join("testdata", "formats_extra.json"), "unsupported.txt")

	if _, err := loader.Load(); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestFileLoaderRejectsTemplateWithoutPlaceholder(t *testing.T) {
	loader := NewFileLoader(filepath.Join("testdata", "formats_invalid.json"))

	_, err := loader.Load()
	if !errors.Is(err, ErrMissingPlaceholder) {
		t.Fatalf("expected ErrMissingPlaceholder, got %v", err)
	}
}

func TestFileLoaderNoPaths(t *testing.T) {
	if _, err := NewFileLoader().Load(); err == nil {
		t.Fatal("expected error without paths")
	}
}

func TestDecodeFormatTableDuplicateCodes(t *testing.T) {
	data := []byte(`{
		"usd": {"money_format": "${{amount}}", "money_with_currency_format": "${{amount}} USD"},
		"USD": {"money_format": "${{amount}}", "money_with_currency_format": "${{amount}} USD"}
	}`)

	if _, err := DecodeFormatTable("dup.json", data); err == nil {
		t.Fatal("expected duplicate currency error")
	}
}

func TestNormalizeCurrencyCode(t *testing.T) {
	tests := map[string]string{
		" eur ": "EUR",
		"jpy":   "JPY",
		"btc":   "BTC",
		"":      "",
	}
	for input, expected := range tests {
		if got := NormalizeCurrencyCode(input); got != expected {
			t.Errorf("NormalizeCurrencyCode(%q) = %q; want %q", input, got, expected)
		}
	}
}

func TestLoaderFunc(t *testing.T) {
	loader := LoaderFunc(func() (FormatTable, error) {
		return FormatTable{"USD": {MoneyFormat: "{{amount}}", MoneyWithCurrencyFormat: "{{amount}} USD"}}, nil
	})

	table, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := table["USD"]; !ok {
		t.Fatal("expected USD entry")
	}
}
