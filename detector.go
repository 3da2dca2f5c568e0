package moneyfmt

import (
	"fmt"
	"log/slog"
)

// CurrencyProbe detects the display currency selected through one plugin.
// Detect returns an error, or an empty code, when the plugin is absent or
// has no active currency.
type CurrencyProbe interface {
	Name() string
	Detect(page *Page) (string, error)
}

// ProbeFunc adapts a function to CurrencyProbe. Its name is "func".
type ProbeFunc func(page *Page) (string, error)

// Name implements CurrencyProbe.
func (fn ProbeFunc) Name() string { return "func" }

// Detect implements CurrencyProbe.
func (fn ProbeFunc) Detect(page *Page) (string, error) { return fn(page) }

type namedProbe struct {
	name   string
	detect func(*Page) (string, error)
}

// NewProbe returns a CurrencyProbe identified by name.
func NewProbe(name string, detect func(page *Page) (string, error)) CurrencyProbe {
	return &namedProbe{name: name, detect: detect}
}

func (p *namedProbe) Name() string { return p.name }

func (p *namedProbe) Detect(page *Page) (string, error) {
	if p.detect == nil {
		return "", ErrPluginAbsent
	}
	return p.detect(page)
}

// Detector resolves the active display currency from an ordered probe list.
type Detector struct {
	probes []CurrencyProbe
	logger *slog.Logger
}

// NewDetector returns a Detector trying probes in the given order. Nil probes are dropped.
func NewDetector(logger *slog.Logger, probes ...CurrencyProbe) *Detector {
	if logger == nil {
		logger = discardLogger
	}
	filtered := make([]CurrencyProbe, 0, len(probes))
	for _, probe := range probes {
		if probe != nil {
			filtered = append(filtered, probe)
		}
	}
	return &Detector{probes: filtered, logger: logger}
}

// Probes returns the probe names in priority order.
func (d *Detector) Probes() []string {
	if d == nil {
		return nil
	}
	names := make([]string, len(d.probes))
	for i, probe := range d.probes {
		names[i] = probe.Name()
	}
	return names
}

// CurrentCurrency returns the value of the first probe that succeeds with a
// non-empty code. Failing probes are skipped.
func (d *Detector) CurrentCurrency(page *Page) (string, bool) {
	code, _, ok := d.detect(page)
	return code, ok
}

func (d *Detector) detect(page *Page) (string, string, bool) {
	if d == nil {
		return "", "", false
	}
	for _, probe := range d.probes {
		code, err := runProbe(probe, page)
		if err != nil {
			d.logger.Debug("currency probe skipped", slog.String("probe", probe.Name()), slog.Any("error", err))
			continue
		}
		if code == "" {
			continue
		}
		d.logger.Debug("currency detected", slog.String("probe", probe.Name()), slog.String("currency", code))
		return code, probe.Name(), true
	}
	return "", "", false
}

func runProbe(probe CurrencyProbe, page *Page) (code string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("probe %s panicked: %v", probe.Name(), r)
		}
	}()
	return probe.Detect(page)
}
