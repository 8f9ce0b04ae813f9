// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package sqlsummaryconnector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqltrace/sqlsummary/connector/sqlsummaryconnector/internal/metadata"
)

func TestNewFactory(t *testing.T) {
	factory := NewFactory()

	assert.NotNil(t, factory)
	assert.Equal(t, metadata.Type, factory.Type())
}

func TestCreateDefaultConfig(t *testing.T) {
	cfg := createDefaultConfig()

	require.NotNil(t, cfg)
	c, ok := cfg.(*Config)
	require.True(t, ok)

	assert.Equal(t, defaultSourceAttribute, c.SourceAttribute)
	assert.Equal(t, defaultSanitizedAttribute, c.SanitizedAttribute)
	assert.Equal(t, defaultSummaryAttribute, c.SummaryAttribute)
	assert.NoError(t, c.Validate())
}

func TestConfigValidateRejectsEmptyAttributeNames(t *testing.T) {
	base := Config{
		SourceAttribute:    "db.statement",
		SanitizedAttribute: "db.statement.sanitized",
		SummaryAttribute:   "db.statement.summary",
	}

	noSource := base
	noSource.SourceAttribute = ""
	assert.Error(t, noSource.Validate())

	noSanitized := base
	noSanitized.SanitizedAttribute = ""
	assert.Error(t, noSanitized.Validate())

	noSummary := base
	noSummary.SummaryAttribute = ""
	assert.Error(t, noSummary.Validate())
}

func TestConfigValidateRejectsNegativeCapacity(t *testing.T) {
	cfg := &Config{
		SourceAttribute:    "db.statement",
		SanitizedAttribute: "db.statement.sanitized",
		SummaryAttribute:   "db.statement.summary",
		CacheCapacity:      -1,
	}
	assert.Error(t, cfg.Validate())
}
