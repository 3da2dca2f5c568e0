package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/lmittmann/tint"

	moneyfmt "github.com/goliatone/go-moneyfmt"
)

type config struct {
	ShopCurrency    string   `envDefault:"USD"  env:"MONEYFMT_SHOP_CURRENCY"`
	DisplayCurrency string   `env:"MONEYFMT_DISPLAY_CURRENCY"`
	RatesFile       string   `env:"MONEYFMT_RATES_FILE"`
	FormatsFiles    []string `env:"MONEYFMT_FORMATS_FILE"     envSeparator:","`
	PageFile        string   `env:"MONEYFMT_PAGE_FILE"`
	LogLevel        string   `envDefault:"info" env:"MONEYFMT_LOG_LEVEL"`
}

type options struct {
	format moneyfmt.FormatName
	text   bool
	cents  []string
}

func main() {
	cfg, err := env.ParseAs[config]()
	if err != nil {
		fmt.Fprintf(os.Stderr, "moneyfmt: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, cfg.LogLevel)

	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		logger.Error("invalid arguments", tint.Err(err))
		os.Exit(2)
	}

	if err := run(cfg, opts, logger, os.Stdout); err != nil {
		logger.Error("moneyfmt failed", tint.Err(err))
		os.Exit(1)
	}
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(tint.NewHandler(w, &tint.Options{Level: lvl}))
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	var opts options
	var format string

	fs.StringVar(&format, "format", string(moneyfmt.MoneyFormatName), "template to render: money_format or money_with_currency_format")
	fs.BoolVar(&opts.text, "text", false, "strip markup and decode entities in the output")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts.format = moneyfmt.FormatName(format)
	if !opts.format.Valid() {
		return options{}, fmt.Errorf("%w %q", moneyfmt.ErrUnknownFormat, format)
	}

	opts.cents = fs.Args()
	if len(opts.cents) == 0 {
		return options{}, errors.New("at least one cent amount is required")
	}
	return opts, nil
}

func run(cfg config, opts options, logger *slog.Logger, out io.Writer) error {
	page, err := buildPage(cfg)
	if err != nil {
		return err
	}

	formatter, err := buildFormatter(cfg, logger)
	if err != nil {
		return err
	}

	if code, ok := formatter.CurrentCurrency(page); ok {
		logger.Debug("display currency", slog.String("currency", code))
	}

	var failed []string
	for _, raw := range opts.cents {
		cents := moneyfmt.NormalizeCents(raw)
		rendered, ok := formatter.FormatMoneyWithConversion(page, cents, opts.format, !opts.text)
		if !ok {
			failed = append(failed, raw)
			continue
		}
		fmt.Fprintln(out, rendered)
	}

	if len(failed) > 0 {
		return fmt.Errorf("no format available for %s", strings.Join(failed, ", "))
	}
	return nil
}

func buildFormatter(cfg config, logger *slog.Logger) (*moneyfmt.Formatter, error) {
	probes := moneyfmt.DefaultProbes()
	if cfg.DisplayCurrency != "" {
		display := moneyfmt.NormalizeCurrencyCode(cfg.DisplayCurrency)
		override := moneyfmt.NewProbe("env", func(*moneyfmt.Page) (string, error) {
			return display, nil
		})
		probes = append([]moneyfmt.CurrencyProbe{override}, probes...)
	}

	return moneyfmt.New(
		moneyfmt.WithLogger(logger),
		moneyfmt.WithProbes(probes...),
		moneyfmt.WithFormatFiles(cfg.FormatsFiles...),
	)
}

func buildPage(cfg config) (*moneyfmt.Page, error) {
	page := &moneyfmt.Page{
		Shopify: &moneyfmt.ShopifyGlobal{
			Currency: moneyfmt.ShopifyCurrency{Active: moneyfmt.NormalizeCurrencyCode(cfg.ShopCurrency)},
		},
	}

	if cfg.RatesFile != "" {
		data, err := os.ReadFile(cfg.RatesFile)
		if err != nil {
			return nil, fmt.Errorf("read rates: %w", err)
		}
		if _, err := moneyfmt.ParseRateTable(data); err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.RatesFile, err)
		}
		page.Storage = moneyfmt.MapStorage{moneyfmt.AutoketingRatesKey: string(data)}
	}

	if cfg.PageFile != "" {
		f, err := os.Open(cfg.PageFile)
		if err != nil {
			return nil, fmt.Errorf("open page: %w", err)
		}
		defer f.Close()

		doc, err := moneyfmt.ParseHTMLDocument(f)
		if err != nil {
			return nil, err
		}
		page.Document = doc
	}

	return page, nil
}
