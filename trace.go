package scoped

import (
	"encoding/json"

	"github.com/petermattis/goid"

	"github.com/goliatone/go-scoped/internal/deepcopy"
)

// Trace captures the calling goroutine's live stack for a class, ordered
// bottom to top, for logging or diagnostics. Values are deep-copied so the
// trace stays valid after the bindings end.
type Trace struct {
	Class     string         `json:"class"`
	Goroutine int64          `json:"goroutine"`
	Bindings  []BindingTrace `json:"bindings"`
}

// BindingTrace details one binding's contribution to a trace. Position 0
// is the bottom (earliest established) binding.
type BindingTrace struct {
	Position int  `json:"position"`
	Value    any  `json:"value,omitempty"`
	Top      bool `json:"top,omitempty"`
}

// Trace snapshots the class's current stack on the calling goroutine.
func (c *Class[T]) Trace() Trace {
	trace := Trace{Class: c.Label(), Goroutine: goid.Get()}
	for b := c.Bottom(); b != nil; b = b.Prev() {
		trace.Bindings = append(trace.Bindings, BindingTrace{
			Position: len(trace.Bindings),
			Value:    deepcopy.Clone(any(b.value)),
			Top:      b.Prev() == nil,
		})
	}
	return trace
}

// ToJSON serialises the trace into JSON for logging or transport helpers.
func (t Trace) ToJSON() ([]byte, error) {
	type alias Trace
	return json.Marshal(alias(t))
}

// TraceFromJSON deserialises a JSON payload that was previously generated
// via ToJSON.
func TraceFromJSON(payload []byte) (Trace, error) {
	type alias Trace
	var trace alias
	if err := json.Unmarshal(payload, &trace); err != nil {
		return Trace{}, err
	}
	return Trace(trace), nil
}
