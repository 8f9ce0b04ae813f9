// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

//go:generate mdatagen metadata.yaml

package sqlsummaryconnector // import "github.com/sqltrace/sqlsummary/connector/sqlsummaryconnector"

import (
	"context"

	"go.opentelemetry.io/collector/component"
	"go.opentelemetry.io/collector/connector"
	"go.opentelemetry.io/collector/connector/xconnector"
	"go.opentelemetry.io/collector/consumer"

	"github.com/sqltrace/sqlsummary/connector/sqlsummaryconnector/internal/metadata"
)

// NewFactory returns a connector.Factory for sqlsummaryconnector, wired into
// both the traces and logs pipeline types since either may carry a SQL
// statement attribute worth sanitizing.
func NewFactory() connector.Factory {
	return xconnector.NewFactory(
		metadata.Type,
		createDefaultConfig,
		xconnector.WithTracesToTraces(createTracesToTraces, metadata.TracesToTracesStability),
		xconnector.WithLogsToLogs(createLogsToLogs, metadata.LogsToLogsStability),
	)
}

// createDefaultConfig creates the default configuration.
func createDefaultConfig() component.Config {
	return &Config{
		SourceAttribute:    defaultSourceAttribute,
		SanitizedAttribute: defaultSanitizedAttribute,
		SummaryAttribute:   defaultSummaryAttribute,
	}
}

func createTracesToTraces(
	_ context.Context,
	set connector.Settings,
	cfg component.Config,
	nextConsumer consumer.Traces,
) (connector.Traces, error) {
	c := cfg.(*Config)
	return &sqlSummaryConnector{
		config:         c,
		logger:         set.Logger,
		tracesConsumer: nextConsumer,
	}, nil
}

func createLogsToLogs(
	_ context.Context,
	set connector.Settings,
	cfg component.Config,
	nextConsumer consumer.Logs,
) (connector.Logs, error) {
	c := cfg.(*Config)
	return &sqlSummaryConnector{
		config:       c,
		logger:       set.Logger,
		logsConsumer: nextConsumer,
	}, nil
}
