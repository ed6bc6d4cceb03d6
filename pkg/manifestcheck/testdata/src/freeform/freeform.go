// Package freeform declares a scoped class without any manifest; the
// convention is not in force for it.
package freeform

import scoped "github.com/goliatone/go-scoped"

// Counter may be used directly from anywhere.
var Counter = scoped.NewClass[int]("freeform.counter")
