// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package metadata

import (
	"go.opentelemetry.io/collector/component"
)

const (
	Type = "sqlsummarycache"
)

var (
	ExtensionStability = component.StabilityLevelDevelopment
)
