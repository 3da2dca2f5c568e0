package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lmittmann/tint"
	"golang.org/x/text/currency"

	moneyfmt "github.com/goliatone/go-moneyfmt"
)

type generatorConfig struct {
	pkg    string
	out    string
	inputs []string
	strict bool
}

type inputFlag struct {
	items []string
}

func (f *inputFlag) String() string {
	return fmt.Sprint(f.items)
}

func (f *inputFlag) Set(value string) error {
	if value == "" {
		return errors.New("empty input path")
	}
	f.items = append(f.items, value)
	return nil
}

func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo}))

	cfg, err := parseFlags()
	if err != nil {
		reportError(logger, err)
	}

	if err := run(cfg, logger); err != nil {
		reportError(logger, err)
	}
}

func reportError(logger *slog.Logger, err error) {
	logger.Error("money-formats failed", tint.Err(err))
	os.Exit(1)
}

func parseFlags() (generatorConfig, error) {
	var cfg generatorConfig
	var inputs inputFlag

	flag.StringVar(&cfg.pkg, "pkg", "moneyfmt", "package name for generated file")
	flag.StringVar(&cfg.out, "out", "formats_data.go", "path to generated Go file")
	flag.Var(&inputs, "in", "format table to read (.json, .yaml, .yml). Repeat flag to merge more, later files win.")
	flag.BoolVar(&cfg.strict, "strict", false, "reject currency codes that are not ISO 4217")

	flag.Parse()

	if len(inputs.items) == 0 {
		inputs.items = []string{filepath.Join("data", "formats.json")}
	}
	cfg.inputs = inputs.items

	return cfg, nil
}

func run(cfg generatorConfig, logger *slog.Logger) error {
	table, err := moneyfmt.NewFileLoader(cfg.inputs...).Load()
	if err != nil {
		return err
	}

	if cfg.strict {
		if err := validateISO(table); err != nil {
			return err
		}
	}

	source, err := renderSource(cfg.pkg, table)
	if err != nil {
		return err
	}

	if err := ensureDir(cfg.out); err != nil {
		return err
	}

	if err := os.WriteFile(cfg.out, source, 0o644); err != nil {
		return err
	}

	logger.Info("format table generated",
		slog.String("out", cfg.out),
		slog.Int("currencies", len(table)),
		slog.Any("inputs", cfg.inputs))
	return nil
}

func validateISO(table moneyfmt.FormatTable) error {
	var errs []error
	for _, code := range table.Currencies() {
		if _, err := currency.ParseISO(code); err != nil {
			errs = append(errs, fmt.Errorf("currency %q: %w", code, err))
		}
	}
	return errors.Join(errs...)
}

func renderSource(pkg string, table moneyfmt.FormatTable) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by money-formats. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	buf.WriteString("var defaultFormats = FormatTable{\n")
	for _, code := range table.Currencies() {
		formats := table[code]
		fmt.Fprintf(&buf, "\t%q: {\n", code)
		fmt.Fprintf(&buf, "\t\tMoneyFormat: %q,\n", formats.MoneyFormat)
		fmt.Fprintf(&buf, "\t\tMoneyWithCurrencyFormat: %q,\n", formats.MoneyWithCurrencyFormat)
		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
