// Package consumer exercises the manifest convention from the caller side.
package consumer

import (
	"freeform"
	"provider"
)

func throughManifest() {
	m := provider.Classify{}.ScopedManifest()
	b := m.Threshold.Bind(4)
	defer b.End()
	_ = provider.Grade(10)
}

func advertisedDirect() {
	b := provider.Threshold.Bind(4)
	defer b.End()
}

func unadvertised() {
	b := provider.Verbosity.Bind(2) // want `scoped class "Verbosity" is not advertised by any manifest of package provider`
	defer b.End()
}

func noConvention() {
	b := freeform.Counter.Bind(1)
	defer b.End()
}
