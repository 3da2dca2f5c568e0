package moneyfmt

import (
	"fmt"
	"log/slog"
)

// FormatRequest is the input handed to every FormatStrategy.
type FormatRequest struct {
	// Currency is the detected display currency, empty when none was found.
	Currency string
	Cents    float64
	Format   FormatName
}

// FormatStrategy converts and renders an amount through one plugin.
type FormatStrategy interface {
	Name() string
	Format(page *Page, req FormatRequest) (string, error)
}

// StrategyFunc adapts a function to FormatStrategy. Its name is "func".
type StrategyFunc func(page *Page, req FormatRequest) (string, error)

// Name implements FormatStrategy.
func (fn StrategyFunc) Name() string { return "func" }

// Format implements FormatStrategy.
func (fn StrategyFunc) Format(page *Page, req FormatRequest) (string, error) { return fn(page, req) }

type namedStrategy struct {
	name   string
	format func(*Page, FormatRequest) (string, error)
}

// NewStrategy returns a FormatStrategy identified by name.
func NewStrategy(name string, format func(page *Page, req FormatRequest) (string, error)) FormatStrategy {
	return &namedStrategy{name: name, format: format}
}

func (s *namedStrategy) Name() string { return s.name }

func (s *namedStrategy) Format(page *Page, req FormatRequest) (string, error) {
	if s.format == nil {
		return "", ErrPluginAbsent
	}
	return s.format(page, req)
}

// Dispatcher detects the display currency and tries format strategies in order.
type Dispatcher struct {
	detector   *Detector
	strategies []FormatStrategy
	logger     *slog.Logger
}

// Result describes the outcome of a dispatch.
type Result struct {
	Text     string
	Currency string
	Probe    string
	Strategy string
}

// NewDispatcher returns a Dispatcher. Nil strategies are dropped.
func NewDispatcher(detector *Detector, logger *slog.Logger, strategies ...FormatStrategy) *Dispatcher {
	if logger == nil {
		logger = discardLogger
	}
	if detector == nil {
		detector = NewDetector(logger)
	}
	filtered := make([]FormatStrategy, 0, len(strategies))
	for _, strategy := range strategies {
		if strategy != nil {
			filtered = append(filtered, strategy)
		}
	}
	return &Dispatcher{detector: detector, strategies: filtered, logger: logger}
}

// Detector returns the detector used by the dispatcher.
func (d *Dispatcher) Detector() *Detector {
	if d == nil {
		return nil
	}
	return d.detector
}

// Strategies returns the strategy names in priority order.
func (d *Dispatcher) Strategies() []string {
	if d == nil {
		return nil
	}
	names := make([]string, len(d.strategies))
	for i, strategy := range d.strategies {
		names[i] = strategy.Name()
	}
	return names
}

// FormatMoneyWithConversion renders cents in the active display currency.
// The first strategy returning a non-empty result wins; when html is false
// the markup of that result is stripped. ok is false when no strategy produced output.
func (d *Dispatcher) FormatMoneyWithConversion(page *Page, cents float64, name FormatName, html bool) (string, bool) {
	res, ok := d.Dispatch(page, cents, name, html)
	return res.Text, ok
}

// Dispatch is FormatMoneyWithConversion returning which probe and strategy won.
func (d *Dispatcher) Dispatch(page *Page, cents float64, name FormatName, html bool) (Result, bool) {
	if d == nil {
		return Result{}, false
	}

	currency, probe, _ := d.detector.detect(page)
	req := FormatRequest{Currency: currency, Cents: cents, Format: name}

	for _, strategy := range d.strategies {
		out, err := runStrategy(strategy, page, req)
		if err != nil {
			d.logger.Debug("format strategy skipped",
				slog.String("strategy", strategy.Name()),
				slog.String("currency", currency),
				slog.Any("error", err))
			continue
		}
		if out == "" {
			continue
		}

		if !html {
			out = ExtractText(out)
		}
		d.logger.Debug("format strategy matched",
			slog.String("strategy", strategy.Name()),
			slog.String("currency", currency))

		return Result{Text: out, Currency: currency, Probe: probe, Strategy: strategy.Name()}, true
	}

	return Result{Currency: currency, Probe: probe}, false
}

func runStrategy(strategy FormatStrategy, page *Page, req FormatRequest) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("strategy %s panicked: %v", strategy.Name(), r)
		}
	}()
	return strategy.Format(page, req)
}
