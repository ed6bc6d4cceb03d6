package deepcopy

import (
	"testing"
	"time"
)

type payload struct {
	Name   string
	Limits map[string]int
	Tags   []string
	Next   *payload
}

func TestCloneDetachesNestedState(t *testing.T) {
	original := payload{
		Name:   "root",
		Limits: map[string]int{"max": 4},
		Tags:   []string{"a", "b"},
		Next:   &payload{Name: "child"},
	}

	clone := Clone(original)

	original.Limits["max"] = 99
	original.Tags[0] = "mutated"
	original.Next.Name = "mutated"

	if clone.Limits["max"] != 4 {
		t.Fatalf("map shared with original")
	}
	if clone.Tags[0] != "a" {
		t.Fatalf("slice shared with original")
	}
	if clone.Next.Name != "child" {
		t.Fatalf("pointer target shared with original")
	}
}

func TestCloneScalarsAndNil(t *testing.T) {
	if got := Clone(42); got != 42 {
		t.Fatalf("int clone = %d", got)
	}
	if got := Clone("text"); got != "text" {
		t.Fatalf("string clone = %q", got)
	}

	var nilMap map[string]int
	if got := Clone(nilMap); got != nil {
		t.Fatalf("nil map clone = %v", got)
	}
	var nilPtr *payload
	if got := Clone(nilPtr); got != nil {
		t.Fatalf("nil pointer clone = %v", got)
	}
}

func TestClonePreservesUnexportedFields(t *testing.T) {
	// time.Time carries only unexported fields; a naive field-by-field
	// clone would zero it.
	now := time.Now()
	if got := Clone(now); !got.Equal(now) {
		t.Fatalf("time clone = %v, want %v", got, now)
	}
}

func TestCloneInterfaceValues(t *testing.T) {
	var v any = map[string]any{"k": []int{1, 2}}
	clone := Clone(v)

	original := v.(map[string]any)
	original["k"].([]int)[0] = 99

	if clone.(map[string]any)["k"].([]int)[0] != 1 {
		t.Fatalf("interface payload shared with original")
	}
}
