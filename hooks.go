package scoped

import (
	"context"

	"github.com/goliatone/go-scoped/internal/deepcopy"
	"github.com/goliatone/go-scoped/pkg/activity"
)

// emitStackEvent forwards one stack operation to the configured activity
// emitter. The bound value is deep-copied before it leaves the engine so
// hooks can never alias or mutate live bindings. Emission failures are the
// hooks' problem; the stack operation has already happened.
func emitStackEvent(emitter *activity.Emitter, class, op string, gid int64, depth int, value any) {
	if !emitter.Enabled() {
		return
	}
	var snapshot any
	if value != nil {
		snapshot = deepcopy.Clone(value)
	}
	_ = emitter.Emit(context.Background(), activity.BuildStackEvent("scoped."+op, activity.StackEventInput{
		Class:     class,
		Goroutine: gid,
		Depth:     depth,
		Value:     snapshot,
	}))
}
