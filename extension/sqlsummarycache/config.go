// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package sqlsummarycache // import "github.com/sqltrace/sqlsummary/extension/sqlsummarycache"

import (
	"fmt"
	"time"
)

// Config defines configuration for the SQL summary cache extension.
type Config struct {
	// CacheCapacity is the maximum number of distinct raw SQL statements
	// the process-wide cache will hold results for. 0 (the default) disables the cache,
	// matching pkg/sqlsummary's own default.
	CacheCapacity int `mapstructure:"cache_capacity"`

	// LogInterval controls how often the extension logs a cache size
	// snapshot while running. 0 disables periodic logging.
	LogInterval time.Duration `mapstructure:"log_interval"`
}

// Validate checks if the extension configuration is valid.
func (cfg *Config) Validate() error {
	if cfg.CacheCapacity < 0 {
		return fmt.Errorf("cache_capacity must be >= 0, got %d", cfg.CacheCapacity)
	}
	if cfg.LogInterval < 0 {
		return fmt.Errorf("log_interval must be >= 0, got %s", cfg.LogInterval)
	}
	return nil
}
