// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package sqlsummarycache // import "github.com/sqltrace/sqlsummary/extension/sqlsummarycache"

import (
	"context"

	"go.opentelemetry.io/collector/component"
	"go.opentelemetry.io/collector/extension"

	"github.com/sqltrace/sqlsummary/extension/sqlsummarycache/internal/metadata"
)

// NewFactory creates a factory for the SQL summary cache extension.
func NewFactory() extension.Factory {
	return extension.NewFactory(
		component.MustNewType(metadata.Type),
		createDefaultConfig,
		createExtension,
		metadata.ExtensionStability,
	)
}

func createDefaultConfig() component.Config {
	return &Config{CacheCapacity: 0}
}

func createExtension(
	_ context.Context,
	params extension.Settings,
	cfg component.Config,
) (extension.Extension, error) {
	return NewExtension(cfg.(*Config), params.TelemetrySettings), nil
}
