// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package sqlsummarycache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqltrace/sqlsummary/extension/sqlsummarycache/internal/metadata"
)

func TestNewFactory(t *testing.T) {
	factory := NewFactory()

	assert.NotNil(t, factory)
	assert.Equal(t, metadata.Type, factory.Type().String())
}

func TestCreateDefaultConfig(t *testing.T) {
	cfg := createDefaultConfig()

	require.NotNil(t, cfg)
	c, ok := cfg.(*Config)
	require.True(t, ok)
	assert.Equal(t, 0, c.CacheCapacity)
	assert.NoError(t, c.Validate())
}

func TestConfigValidateRejectsNegativeCapacity(t *testing.T) {
	cfg := &Config{CacheCapacity: -1}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidateRejectsNegativeLogInterval(t *testing.T) {
	cfg := &Config{LogInterval: -1}
	assert.Error(t, cfg.Validate())
}
