package moneyfmt

import "errors"

// ErrMissingPlaceholder indicates a format template without a {{ key }} token.
var ErrMissingPlaceholder = errors.New("moneyfmt: format template has no placeholder")

// ErrPluginAbsent marks a probe or strategy whose third-party plugin is not on the page.
var ErrPluginAbsent = errors.New("moneyfmt: plugin not present")

// ErrUnknownCurrency indicates that no format templates exist for a currency.
var ErrUnknownCurrency = errors.New("moneyfmt: unknown currency")

// ErrUnknownFormat indicates a format name outside money_format/money_with_currency_format.
var ErrUnknownFormat = errors.New("moneyfmt: unknown format name")

// ErrBaseCurrencyUnknown is returned by conversions that need the shop currency when none is set.
var ErrBaseCurrencyUnknown = errors.New("moneyfmt: shop currency unknown")

// ErrMalformedRates indicates a stored rate table that could not be decoded.
var ErrMalformedRates = errors.New("moneyfmt: malformed rate table")

// ErrNoStrategies is returned when a formatter is configured without any strategy.
var ErrNoStrategies = errors.New("moneyfmt: no format strategies configured")
