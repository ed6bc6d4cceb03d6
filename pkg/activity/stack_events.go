package activity

import "time"

// StackEventInput describes the common fields for stack lifecycle events.
type StackEventInput struct {
	Class      string
	Goroutine  int64
	Depth      int
	Value      any
	ActorID    string
	TenantID   string
	Channel    string
	Metadata   map[string]any
	OccurredAt time.Time
}

// BuildBindEvent constructs a normalized event for a value being bound.
func BuildBindEvent(input StackEventInput) Event {
	return BuildStackEvent("scoped.bind", input)
}

// BuildReleaseEvent constructs a normalized event for a binding ending.
func BuildReleaseEvent(input StackEventInput) Event {
	return BuildStackEvent("scoped.release", input)
}

// BuildShieldEvent constructs a normalized event for a stack being hidden.
func BuildShieldEvent(input StackEventInput) Event {
	return BuildStackEvent("scoped.shield", input)
}

// BuildRestoreEvent constructs a normalized event for a shield restoring.
func BuildRestoreEvent(input StackEventInput) Event {
	return BuildStackEvent("scoped.restore", input)
}

// BuildStackEvent constructs a normalized event with the given verb.
func BuildStackEvent(verb string, input StackEventInput) Event {
	return NormalizeEvent(Event{
		Verb:       verb,
		Class:      input.Class,
		Goroutine:  input.Goroutine,
		Depth:      input.Depth,
		Value:      input.Value,
		ActorID:    input.ActorID,
		TenantID:   input.TenantID,
		Channel:    input.Channel,
		Metadata:   input.Metadata,
		OccurredAt: input.OccurredAt,
	})
}
