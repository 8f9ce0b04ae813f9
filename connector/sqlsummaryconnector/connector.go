// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package sqlsummaryconnector // import "github.com/sqltrace/sqlsummary/connector/sqlsummaryconnector"

import (
	"context"

	"go.opentelemetry.io/collector/component"
	"go.opentelemetry.io/collector/consumer"
	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.opentelemetry.io/collector/pdata/plog"
	"go.opentelemetry.io/collector/pdata/ptrace"
	"go.uber.org/zap"

	"github.com/sqltrace/sqlsummary/pkg/sqlsummary"
)

// sqlSummaryConnector sanitizes and summarizes a SQL statement attribute on
// every span or log record it sees, then forwards the mutated data to the
// next consumer in the pipeline. Exactly one of tracesConsumer/logsConsumer
// is set, depending on which pipeline type the factory wired it into.
type sqlSummaryConnector struct {
	config *Config
	logger *zap.Logger

	tracesConsumer consumer.Traces
	logsConsumer   consumer.Logs
}

// Capabilities reports that this connector mutates the data it forwards, by
// adding the sanitized SQL and summary attributes in place.
func (c *sqlSummaryConnector) Capabilities() consumer.Capabilities {
	return consumer.Capabilities{MutatesData: true}
}

func (c *sqlSummaryConnector) Start(_ context.Context, _ component.Host) error {
	sqlsummary.SetCacheCapacity(c.config.CacheCapacity)
	c.logger.Info("sqlsummary connector started",
		zap.String("source_attribute", c.config.SourceAttribute),
		zap.Int("cache_capacity", c.config.CacheCapacity))
	return nil
}

func (c *sqlSummaryConnector) Shutdown(_ context.Context) error {
	c.logger.Info("sqlsummary connector shutdown")
	return nil
}

// annotate reads config.SourceAttribute off attrs and, if present, writes
// the sanitized SQL and summary back as new attributes.
func (c *sqlSummaryConnector) annotate(attrs pcommon.Map) {
	val, ok := attrs.Get(c.config.SourceAttribute)
	if !ok {
		return
	}

	info := sqlsummary.Sanitize(val.Str())
	attrs.PutStr(c.config.SanitizedAttribute, info.SanitizedSQL)
	attrs.PutStr(c.config.SummaryAttribute, info.Summary)
}

// ConsumeTraces annotates every span's SourceAttribute and forwards the
// mutated traces to the next consumer.
func (c *sqlSummaryConnector) ConsumeTraces(ctx context.Context, td ptrace.Traces) error {
	resourceSpans := td.ResourceSpans()
	for i := 0; i < resourceSpans.Len(); i++ {
		scopeSpans := resourceSpans.At(i).ScopeSpans()
		for j := 0; j < scopeSpans.Len(); j++ {
			spans := scopeSpans.At(j).Spans()
			for k := 0; k < spans.Len(); k++ {
				c.annotate(spans.At(k).Attributes())
			}
		}
	}
	return c.tracesConsumer.ConsumeTraces(ctx, td)
}

// ConsumeLogs annotates every log record's SourceAttribute and forwards the
// mutated logs to the next consumer.
func (c *sqlSummaryConnector) ConsumeLogs(ctx context.Context, ld plog.Logs) error {
	resourceLogs := ld.ResourceLogs()
	for i := 0; i < resourceLogs.Len(); i++ {
		scopeLogs := resourceLogs.At(i).ScopeLogs()
		for j := 0; j < scopeLogs.Len(); j++ {
			records := scopeLogs.At(j).LogRecords()
			for k := 0; k < records.Len(); k++ {
				c.annotate(records.At(k).Attributes())
			}
		}
	}
	return c.logsConsumer.ConsumeLogs(ctx, ld)
}
