package moneyfmt

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"
)

// FormatLoader retrieves a format table.
type FormatLoader interface {
	Load() (FormatTable, error)
}

// LoaderFunc adapts a bare function to FormatLoader.
type LoaderFunc func() (FormatTable, error)

// Load implements FormatLoader.
func (fn LoaderFunc) Load() (FormatTable, error) {
	return fn()
}

// FileLoader reads format tables from JSON or YAML files. Later files
// override earlier ones per currency.
type FileLoader struct {
	paths []string
}

// NewFileLoader returns a loader for paths.
func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

// Load implements FormatLoader.
func (l *FileLoader) Load() (FormatTable, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("moneyfmt: no loader paths configured")
	}

	table := make(FormatTable)
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("moneyfmt: read %s: %w", path, err)
		}

		src, err := DecodeFormatTable(path, data)
		if err != nil {
			return nil, fmt.Errorf("moneyfmt: decode %s: %w", path, err)
		}
		for code, formats := range src {
			table[code] = formats
		}
	}

	return table, nil
}

// DecodeFormatTable decodes data according to the extension of path and
// validates every template.
func DecodeFormatTable(path string, data []byte) (FormatTable, error) {
	var raw map[string]CurrencyFormats

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	if len(raw) == 0 {
		return nil, errors.New("empty format table")
	}

	table := make(FormatTable, len(raw))
	for code, formats := range raw {
		normalized := NormalizeCurrencyCode(code)
		if normalized == "" {
			return nil, errors.New("empty currency code")
		}
		if _, exists := table[normalized]; exists {
			return nil, fmt.Errorf("duplicate currency %q", normalized)
		}
		if err := validateFormats(normalized, formats); err != nil {
			return nil, err
		}
		table[normalized] = formats
	}

	return table, nil
}

// NormalizeCurrencyCode trims and upper-cases code, canonicalising it when it
// is a known ISO 4217 code.
func NormalizeCurrencyCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	if unit, err := currency.ParseISO(code); err == nil {
		return unit.String()
	}
	return code
}

func validateFormats(code string, formats CurrencyFormats) error {
	for _, name := range []FormatName{MoneyFormatName, MoneyWithCurrencyFormatName} {
		template, ok := formats.Template(name)
		if !ok {
			return fmt.Errorf("%s: missing %s", code, name)
		}
		if _, ok := PlaceholderKey(template); !ok {
			return fmt.Errorf("%s/%s: %w", code, name, ErrMissingPlaceholder)
		}
	}
	return nil
}
