package moneyfmt

import (
	"log/slog"
)

var discardLogger = slog.New(slog.DiscardHandler)

// Config captures formatter setup
type Config struct {
	Formats    FormatTable
	Loader     FormatLoader
	Probes     []CurrencyProbe
	Strategies []FormatStrategy
	Hooks      []FormatHook
	Logger     *slog.Logger
	RatesKey   string

	customProbes     bool
	customStrategies bool
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Logger == nil {
		cfg.Logger = discardLogger
	}

	if cfg.RatesKey == "" {
		cfg.RatesKey = AutoketingRatesKey
	}

	table := Formats()
	if cfg.Formats != nil {
		table = table.Merge(cfg.Formats)
	}
	if cfg.Loader != nil {
		loaded, err := cfg.Loader.Load()
		if err != nil {
			return nil, err
		}
		table = table.Merge(loaded)
	}
	cfg.Formats = table

	if !cfg.customProbes {
		cfg.Probes = DefaultProbes()
	}

	if !cfg.customStrategies {
		cfg.Strategies = DefaultStrategies(cfg.Formats, cfg.RatesKey)
	}

	if len(cfg.Strategies) == 0 {
		return nil, ErrNoStrategies
	}

	return cfg, nil
}

// WithFormats overrides or extends the built-in format table.
func WithFormats(table FormatTable) Option {
	return func(c *Config) error {
		if c.Formats == nil {
			c.Formats = make(FormatTable, len(table))
		}
		for code, formats := range table {
			c.Formats[code] = formats
		}
		return nil
	}
}

// WithFormatLoader merges the loaded table over the built-in one.
func WithFormatLoader(loader FormatLoader) Option {
	return func(c *Config) error {
		c.Loader = loader
		return nil
	}
}

// WithFormatFiles is WithFormatLoader(NewFileLoader(paths...)).
func WithFormatFiles(paths ...string) Option {
	return func(c *Config) error {
		if len(paths) == 0 {
			return nil
		}
		c.Loader = NewFileLoader(paths...)
		return nil
	}
}

// WithProbes replaces the default detection order.
func WithProbes(probes ...CurrencyProbe) Option {
	return func(c *Config) error {
		c.Probes = append([]CurrencyProbe(nil), probes...)
		c.customProbes = true
		return nil
	}
}

// WithStrategies replaces the default strategy chain. The built-in table
// strategy is not appended automatically.
func WithStrategies(strategies ...FormatStrategy) Option {
	return func(c *Config) error {
		c.Strategies = append([]FormatStrategy(nil), strategies...)
		c.customStrategies = true
		return nil
	}
}

// WithHooks registers hooks run around every conversion call.
func WithHooks(hooks ...FormatHook) Option {
	return func(c *Config) error {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			c.Hooks = append(c.Hooks, hook)
		}
		return nil
	}
}

// WithLogger sets the logger used for probe and strategy diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithRatesKey changes the storage key the Autoketing strategy reads.
func WithRatesKey(key string) Option {
	return func(c *Config) error {
		c.RatesKey = key
		return nil
	}
}

// BuildFormatter wires the detector and dispatcher described by cfg.
func (cfg *Config) BuildFormatter() (*Formatter, error) {
	if cfg == nil {
		return nil, ErrNoStrategies
	}
	if len(cfg.Strategies) == 0 {
		return nil, ErrNoStrategies
	}

	logger := cfg.Logger
	if logger == nil {
		logger = discardLogger
	}

	detector := NewDetector(logger, cfg.Probes...)
	dispatcher := NewDispatcher(detector, logger, cfg.Strategies...)

	return &Formatter{
		dispatcher: dispatcher,
		formats:    cfg.Formats,
		hooks:      append([]FormatHook(nil), cfg.Hooks...),
	}, nil
}
