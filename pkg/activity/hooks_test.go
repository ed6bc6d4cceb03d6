package activity

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNormalizeEventFillsDefaults(t *testing.T) {
	event := NormalizeEvent(Event{
		Verb:     "  scoped.bind ",
		Class:    " demo.threshold ",
		Metadata: map[string]any{"depth": 1},
	})

	if event.Verb != "scoped.bind" || event.Class != "demo.threshold" {
		t.Fatalf("whitespace not trimmed: %+v", event)
	}
	if event.ID == "" {
		t.Fatalf("event id not assigned")
	}
	if event.OccurredAt.IsZero() {
		t.Fatalf("timestamp not assigned")
	}
}

func TestNormalizeEventClonesMetadata(t *testing.T) {
	metadata := map[string]any{"key": "original"}
	event := NormalizeEvent(Event{Verb: "scoped.bind", Class: "c", Metadata: metadata})

	metadata["key"] = "mutated"
	if event.Metadata["key"] != "original" {
		t.Fatalf("metadata not cloned")
	}
}

func TestHooksNotifySkipsIncompleteEvents(t *testing.T) {
	capture := &CaptureHook{}
	hooks := Hooks{capture}

	if err := hooks.Notify(context.Background(), Event{Verb: "scoped.bind"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(capture.Events) != 0 {
		t.Fatalf("event without class should be dropped")
	}
}

func TestHooksNotifyJoinsErrors(t *testing.T) {
	failing := errors.New("sink down")
	hooks := Hooks{
		&CaptureHook{Err: failing},
		&CaptureHook{},
		nil,
	}

	err := hooks.Notify(context.Background(), Event{Verb: "scoped.bind", Class: "c"})
	if !errors.Is(err, failing) {
		t.Fatalf("expected joined error to include sink failure, got %v", err)
	}
}

func TestEmitterAppliesDefaultChannel(t *testing.T) {
	capture := &CaptureHook{}
	emitter := NewEmitter(Hooks{capture}, Config{Enabled: true, Channel: " audit "})

	err := emitter.Emit(context.Background(), Event{Verb: "scoped.bind", Class: "c", OccurredAt: time.Now()})
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if len(capture.Events) != 1 || capture.Events[0].Channel != "audit" {
		t.Fatalf("default channel not applied: %+v", capture.Events)
	}
}

func TestEmitterDisabled(t *testing.T) {
	capture := &CaptureHook{}

	emitter := NewEmitter(Hooks{capture}, Config{Enabled: false})
	if emitter.Enabled() {
		t.Fatalf("emitter should be disabled")
	}
	if err := emitter.Emit(context.Background(), Event{Verb: "scoped.bind", Class: "c"}); err != nil {
		t.Fatalf("disabled emit must be a no-op, got %v", err)
	}
	if len(capture.Events) != 0 {
		t.Fatalf("disabled emitter forwarded events")
	}

	var nilEmitter *Emitter
	if nilEmitter.Enabled() {
		t.Fatalf("nil emitter should report disabled")
	}
}

func TestBuildStackEvents(t *testing.T) {
	input := StackEventInput{Class: "demo", Goroutine: 7, Depth: 2, Value: 4}

	cases := []struct {
		build func(StackEventInput) Event
		verb  string
	}{
		{BuildBindEvent, "scoped.bind"},
		{BuildReleaseEvent, "scoped.release"},
		{BuildShieldEvent, "scoped.shield"},
		{BuildRestoreEvent, "scoped.restore"},
	}
	for _, tc := range cases {
		event := tc.build(input)
		if event.Verb != tc.verb {
			t.Fatalf("verb = %q, want %q", event.Verb, tc.verb)
		}
		if event.Class != "demo" || event.Goroutine != 7 || event.Depth != 2 {
			t.Fatalf("input fields lost: %+v", event)
		}
		if event.ID == "" {
			t.Fatalf("builder skipped normalization")
		}
	}
}
