package scoped

import (
	"sync"

	"github.com/petermattis/goid"

	"github.com/goliatone/go-scoped/pkg/activity"
)

// Class identifies one logical binding stack per goroutine. Two Class values
// are always distinct keys, even when their value types coincide, so
// declaring several classes over the same type partitions independent
// stacks the way tag types would.
//
// A Class is typically a package-level variable created once with NewClass.
// All methods are safe to call from any goroutine; each goroutine only ever
// sees its own stack.
type Class[T any] struct {
	name     string
	label    string
	metadata map[string]any
	logger   StackLogger
	emitter  *activity.Emitter

	// states maps goroutine id to that goroutine's stack. Entries are
	// created lazily on first use and removed once the stack is empty and
	// no shield is outstanding, so finished goroutines leave nothing
	// behind. Only the owning goroutine ever touches an entry's contents.
	states sync.Map
}

// stackState is the registry for one (class, goroutine) pair. head is the
// top (most recently established) binding, tail the bottom (earliest).
// head == nil iff tail == nil.
type stackState[T any] struct {
	head    *Binding[T]
	tail    *Binding[T]
	shields int
}

// ClassOption configures metadata on Class creation.
type ClassOption func(*classConfig)

type classConfig struct {
	label    string
	metadata map[string]any
	logger   StackLogger
	emitter  *activity.Emitter
}

// WithClassLabel sets a human-friendly label on the class.
func WithClassLabel(label string) ClassOption {
	return func(cfg *classConfig) {
		cfg.label = label
	}
}

// WithClassMetadata attaches arbitrary metadata to the class. The map is
// copied so the resulting Class remains immutable even if the caller
// mutates their reference.
func WithClassMetadata(metadata map[string]any) ClassOption {
	return func(cfg *classConfig) {
		if len(metadata) == 0 {
			return
		}
		cfg.metadata = copyMetadata(metadata)
	}
}

// WithStackLogger attaches a logger that receives every stack operation on
// the class.
func WithStackLogger(logger StackLogger) ClassOption {
	return func(cfg *classConfig) {
		if logger == nil {
			cfg.logger = noopStackLogger{}
			return
		}
		cfg.logger = logger
	}
}

// WithActivityEmitter wires an activity emitter that audits bind, release,
// shield, and restore operations on the class.
func WithActivityEmitter(emitter *activity.Emitter) ClassOption {
	return func(cfg *classConfig) {
		cfg.emitter = emitter
	}
}

// NewClass builds a Class with the supplied configuration. Named classes
// are registered with the package catalog for discoverability tooling.
func NewClass[T any](name string, opts ...ClassOption) *Class[T] {
	cfg := classConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	c := &Class[T]{
		name:     name,
		label:    cfg.label,
		metadata: copyMetadata(cfg.metadata),
		logger:   cfg.logger,
		emitter:  cfg.emitter,
	}
	if c.logger == nil {
		c.logger = noopStackLogger{}
	}
	registerClass[T](c)
	return c
}

// Name returns the class name supplied at creation.
func (c *Class[T]) Name() string {
	return c.name
}

// Label returns the human-friendly label, or the name when no label is set.
func (c *Class[T]) Label() string {
	if c.label != "" {
		return c.label
	}
	return c.name
}

// Metadata returns a copy of the class metadata.
func (c *Class[T]) Metadata() map[string]any {
	return copyMetadata(c.metadata)
}

// state returns the calling goroutine's stack state, creating it when
// create is set. The second result is the goroutine id.
func (c *Class[T]) state(create bool) (*stackState[T], int64) {
	gid := goid.Get()
	if v, ok := c.states.Load(gid); ok {
		return v.(*stackState[T]), gid
	}
	if !create {
		return nil, gid
	}
	st := &stackState[T]{}
	actual, _ := c.states.LoadOrStore(gid, st)
	return actual.(*stackState[T]), gid
}

// release drops the goroutine's registry entry once nothing references it.
func (c *Class[T]) release(st *stackState[T], gid int64) {
	if st.head == nil && st.tail == nil && st.shields == 0 {
		c.states.Delete(gid)
	}
}

// Top returns the most recently established, still-active binding on the
// calling goroutine's stack, or nil when nothing is bound. O(1).
func (c *Class[T]) Top() *Binding[T] {
	st, _ := c.state(false)
	if st == nil {
		return nil
	}
	return st.head
}

// Bottom returns the earliest established, still-active binding on the
// calling goroutine's stack, or nil when nothing is bound. O(1).
func (c *Class[T]) Bottom() *Binding[T] {
	st, _ := c.state(false)
	if st == nil {
		return nil
	}
	return st.tail
}

// Get returns a pointer to the value of the top binding, or nil when
// nothing is bound. Nothing bound is a normal state, not a failure.
func (c *Class[T]) Get() *T {
	if top := c.Top(); top != nil {
		return &top.value
	}
	return nil
}

// Len reports the number of active bindings on the calling goroutine's
// stack. O(n).
func (c *Class[T]) Len() int {
	n := 0
	for b := c.Top(); b != nil; b = b.Next() {
		n++
	}
	return n
}

// Values returns the active bound values ordered bottom to top. The slice
// is a snapshot; mutating it does not affect the stack.
func (c *Class[T]) Values() []T {
	bottom := c.Bottom()
	if bottom == nil {
		return nil
	}
	var out []T
	for b := bottom; b != nil; b = b.Prev() {
		out = append(out, b.value)
	}
	return out
}

// Do binds value around fn, guaranteeing the binding ends when fn returns,
// normally or by panic.
func (c *Class[T]) Do(value T, fn func()) {
	b := c.Bind(value)
	defer b.End()
	fn()
}

// observed reports whether stack operations need logging or emission.
func (c *Class[T]) observed() bool {
	if c.emitter.Enabled() {
		return true
	}
	_, noop := c.logger.(noopStackLogger)
	return !noop
}

func (c *Class[T]) record(op string, gid int64, value any) {
	if !c.observed() {
		return
	}
	depth := 0
	if st, _ := c.state(false); st != nil {
		for b := st.head; b != nil; b = b.next {
			depth++
		}
	}
	c.logger.LogStackOp(StackLogEvent{
		Class:     c.Label(),
		Op:        op,
		Goroutine: gid,
		Depth:     depth,
	})
	emitStackEvent(c.emitter, c.name, op, gid, depth, value)
}

func copyMetadata(origin map[string]any) map[string]any {
	if len(origin) == 0 {
		return nil
	}
	out := make(map[string]any, len(origin))
	for key, value := range origin {
		out[key] = value
	}
	return out
}
