// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package sqlsummarycache // import "github.com/sqltrace/sqlsummary/extension/sqlsummarycache"

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/collector/component"
	"go.uber.org/zap"

	"github.com/sqltrace/sqlsummary/pkg/sqlsummary"
)

// Extension owns the lifecycle of pkg/sqlsummary's process-wide result
// cache for the lifetime of the collector pipeline that configured it.
type Extension struct {
	config   *Config
	settings component.TelemetrySettings

	stopLogging chan struct{}
	wg          sync.WaitGroup
}

// NewExtension creates a new SQL summary cache extension.
func NewExtension(cfg *Config, settings component.TelemetrySettings) *Extension {
	return &Extension{config: cfg, settings: settings}
}

// Start applies the configured cache capacity and, if LogInterval is set,
// begins periodically logging a size/capacity snapshot.
func (e *Extension) Start(_ context.Context, _ component.Host) error {
	sqlsummary.SetCacheCapacity(e.config.CacheCapacity)
	e.settings.Logger.Info("sqlsummary cache extension started",
		zap.Int("cache_capacity", e.config.CacheCapacity))

	if e.config.LogInterval <= 0 {
		return nil
	}

	e.stopLogging = make(chan struct{})
	e.wg.Add(1)
	go e.logLoop(e.config.LogInterval)
	return nil
}

func (e *Extension) logLoop(interval time.Duration) {
	defer e.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			stats := sqlsummary.Stats()
			e.settings.Logger.Debug("sqlsummary cache snapshot",
				zap.Int("size", stats.Size),
				zap.Int("capacity", stats.Capacity))
		case <-e.stopLogging:
			return
		}
	}
}

// Shutdown disables the cache and stops the logging loop, so the
// process-wide cache does not outlive the extension that enabled it.
func (e *Extension) Shutdown(_ context.Context) error {
	if e.stopLogging != nil {
		close(e.stopLogging)
		e.wg.Wait()
	}
	sqlsummary.SetCacheCapacity(0)
	e.settings.Logger.Info("sqlsummary cache extension shutdown")
	return nil
}
