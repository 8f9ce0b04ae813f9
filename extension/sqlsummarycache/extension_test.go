// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package sqlsummarycache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/collector/component/componenttest"
	"go.uber.org/goleak"

	"github.com/sqltrace/sqlsummary/pkg/sqlsummary"
)

func TestExtensionStartAppliesCacheCapacity(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := &Config{CacheCapacity: 7}
	ext := NewExtension(cfg, componenttest.NewNopTelemetrySettings())

	require.NoError(t, ext.Start(context.Background(), componenttest.NewNopHost()))
	assert.Equal(t, 7, sqlsummary.Stats().Capacity)

	require.NoError(t, ext.Shutdown(context.Background()))
	assert.Equal(t, 0, sqlsummary.Stats().Capacity)
}

func TestExtensionLogLoopStopsOnShutdown(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := &Config{CacheCapacity: 4, LogInterval: 10 * time.Millisecond}
	ext := NewExtension(cfg, componenttest.NewNopTelemetrySettings())

	require.NoError(t, ext.Start(context.Background(), componenttest.NewNopHost()))
	time.Sleep(30 * time.Millisecond) // let the log loop tick at least once
	require.NoError(t, ext.Shutdown(context.Background()))
}

func TestExtensionWithoutLogIntervalStartsNoBackgroundLoop(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := &Config{CacheCapacity: 4}
	ext := NewExtension(cfg, componenttest.NewNopTelemetrySettings())

	require.NoError(t, ext.Start(context.Background(), componenttest.NewNopHost()))
	assert.Nil(t, ext.stopLogging)
	require.NoError(t, ext.Shutdown(context.Background()))
}
