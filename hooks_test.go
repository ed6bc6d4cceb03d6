package scoped

import (
	"testing"

	"github.com/goliatone/go-scoped/pkg/activity"
)

func TestStackLoggerReceivesOperations(t *testing.T) {
	var events []StackLogEvent
	c := NewClass[int]("test.logger",
		WithStackLogger(StackLoggerFunc(func(event StackLogEvent) {
			events = append(events, event)
		})),
	)

	b := c.Bind(1)
	c.Shielded(func() {})
	b.End()

	wantOps := []string{"bind", "shield", "restore", "release"}
	if len(events) != len(wantOps) {
		t.Fatalf("logged %d events, want %d", len(events), len(wantOps))
	}
	for i, want := range wantOps {
		if events[i].Op != want {
			t.Fatalf("event %d op = %q, want %q", i, events[i].Op, want)
		}
		if events[i].Class != "test.logger" {
			t.Fatalf("event %d class = %q", i, events[i].Class)
		}
	}
	if events[0].Depth != 1 {
		t.Fatalf("bind event depth = %d, want 1", events[0].Depth)
	}
	if events[3].Depth != 0 {
		t.Fatalf("release event depth = %d, want 0", events[3].Depth)
	}
}

func TestActivityEmitterAuditsBindings(t *testing.T) {
	capture := &activity.CaptureHook{}
	emitter := activity.NewEmitter(activity.Hooks{capture}, activity.Config{Enabled: true})
	c := NewClass[map[string]int]("test.audit", WithActivityEmitter(emitter))

	b := c.Bind(map[string]int{"limit": 4})
	(*b.Value())["limit"] = 9
	b.End()

	if len(capture.Events) != 2 {
		t.Fatalf("captured %d events, want 2", len(capture.Events))
	}

	bind := capture.Events[0]
	if bind.Verb != "scoped.bind" || bind.Class != "test.audit" {
		t.Fatalf("unexpected bind event: %+v", bind)
	}
	if bind.ID == "" || bind.OccurredAt.IsZero() {
		t.Fatalf("bind event not normalized: %+v", bind)
	}
	if bind.Channel != "scoped" {
		t.Fatalf("default channel not applied: %q", bind.Channel)
	}

	// The emitted payload must be detached from the live binding.
	payload, ok := bind.Value.(map[string]int)
	if !ok || payload["limit"] != 4 {
		t.Fatalf("bind event value aliases the binding: %v", bind.Value)
	}

	if capture.Events[1].Verb != "scoped.release" {
		t.Fatalf("second event verb = %q", capture.Events[1].Verb)
	}
}
