// Package provider declares scoped classes and advertises one of them // want package:"declares manifests"
// through a manifest.
package provider

import scoped "github.com/goliatone/go-scoped"

// Threshold is advertised by ClassifyManifest.
var Threshold = scoped.NewClass[int]("provider.threshold") // want Threshold:"advertised"

// Verbosity is deliberately not advertised by any manifest.
var Verbosity = scoped.NewClass[int]("provider.verbosity")

// Classify is the manifest subject for the Grade function.
type Classify struct{}

// ClassifyManifest advertises the classes Grade consults.
type ClassifyManifest struct {
	Threshold *scoped.Class[int]
}

// ScopedManifest implements the scoped manifest convention.
func (Classify) ScopedManifest() ClassifyManifest {
	return ClassifyManifest{Threshold: Threshold}
}

// Grade consults Threshold; home-package use is always allowed.
func Grade(n int) string {
	if limit := Threshold.Get(); limit != nil && n >= *limit {
		return "flagged"
	}
	_ = Verbosity.Get()
	return "normal"
}
