// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package sqlsummaryconnector // import "github.com/sqltrace/sqlsummary/connector/sqlsummaryconnector"

import "fmt"

// Config represents the connector config settings within the collector's
// config.yaml.
type Config struct {
	// SourceAttribute is the span/log attribute holding the raw SQL text to
	// sanitize. Defaults to "db.statement".
	SourceAttribute string `mapstructure:"source_attribute"`

	// SanitizedAttribute is the attribute the sanitized SQL is written to.
	// Defaults to "db.statement.sanitized".
	SanitizedAttribute string `mapstructure:"sanitized_attribute"`

	// SummaryAttribute is the attribute the bounded summary is written to.
	// Defaults to "db.statement.summary".
	SummaryAttribute string `mapstructure:"summary_attribute"`

	// CacheCapacity configures pkg/sqlsummary's process-wide result cache.
	// 0 (the default) disables the cache.
	CacheCapacity int `mapstructure:"cache_capacity"`
}

const (
	defaultSourceAttribute    = "db.statement"
	defaultSanitizedAttribute = "db.statement.sanitized"
	defaultSummaryAttribute   = "db.statement.summary"
)

// Validate checks the connector configuration is valid.
func (cfg *Config) Validate() error {
	if cfg.SourceAttribute == "" {
		return fmt.Errorf("source_attribute must not be empty")
	}
	if cfg.SanitizedAttribute == "" {
		return fmt.Errorf("sanitized_attribute must not be empty")
	}
	if cfg.SummaryAttribute == "" {
		return fmt.Errorf("summary_attribute must not be empty")
	}
	if cfg.CacheCapacity < 0 {
		return fmt.Errorf("cache_capacity must be >= 0, got %d", cfg.CacheCapacity)
	}
	return nil
}
