package scoped

import (
	"github.com/petermattis/goid"

	"github.com/goliatone/go-scoped/internal/deepcopy"
)

// Binding is a live association between a Class and one owned value,
// scoped to the stretch of code between Bind and End. It doubles as the
// intrusive node of its goroutine's stack: next walks toward the bottom
// (older) end, prev toward the top (newer) end.
//
// A Binding is only ever produced by Bind, Do, or Clone, and must only be
// manipulated on the goroutine that created it.
type Binding[T any] struct {
	value T

	class    *Class[T]
	gid      int64
	next     *Binding[T]
	prev     *Binding[T]
	attached bool
}

// BindOption configures insertion of a new binding.
type BindOption[T any] func(*bindConfig[T])

type bindConfig[T any] struct {
	anchor *Binding[T]
}

// Above anchors the new binding immediately above anchor instead of at the
// top of the stack. When anchor is nil, detached, or owned by a different
// goroutine or class, the binding is inserted at the top instead; the
// fallback is deliberate so a stale anchor can never corrupt the stack.
func Above[T any](anchor *Binding[T]) BindOption[T] {
	return func(cfg *bindConfig[T]) {
		cfg.anchor = anchor
	}
}

// Bind establishes value on the calling goroutine's stack for the class
// and returns the live binding. The binding stays discoverable through
// Top, Get, and traversal until End is called. Callers are expected to end
// it from the same goroutine, usually via defer.
func (c *Class[T]) Bind(value T, opts ...BindOption[T]) *Binding[T] {
	cfg := bindConfig[T]{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	st, gid := c.state(true)
	b := &Binding[T]{value: value, class: c, gid: gid}
	c.insert(st, b, cfg.anchor)
	assertStack(st)
	c.record(opBind, gid, b.value)
	return b
}

// insert places node above anchor, or at the top when anchor is nil or not
// usable. node must not already be attached.
func (c *Class[T]) insert(st *stackState[T], node, anchor *Binding[T]) {
	if anchor != nil && (!anchor.attached || anchor.gid != node.gid || anchor.class != c) {
		anchor = nil
	}
	if anchor == nil {
		anchor = st.head
	}
	node.next = anchor
	if anchor != nil {
		node.prev = anchor.prev
	} else {
		node.prev = st.tail
	}
	if node.prev != nil {
		node.prev.next = node
	} else {
		st.head = node
	}
	if node.next != nil {
		node.next.prev = node
	} else {
		st.tail = node
	}
	node.attached = true
}

// End detaches the binding from its stack. The binding need not be the
// current top; neighbors are relinked around it, so destruction order is
// free to differ from construction order. End is idempotent.
//
// End panics when called from a goroutine other than the one that created
// the binding: the stack it belongs to is invisible there, and detaching
// it would race with the owner.
func (b *Binding[T]) End() {
	if b == nil || !b.attached {
		return
	}
	if goid.Get() != b.gid {
		panic(ErrForeignGoroutine)
	}
	st, gid := b.class.state(false)
	if st == nil {
		// Registry entry already gone; just sever the links.
		b.next, b.prev, b.attached = nil, nil, false
		return
	}
	if b.prev != nil {
		b.prev.next = b.next
	} else if st.head == b {
		st.head = b.next
	}
	if b.next != nil {
		b.next.prev = b.prev
	} else if st.tail == b {
		st.tail = b.prev
	}
	b.next, b.prev, b.attached = nil, nil, false
	assertStack(st)
	b.class.record(opRelease, gid, b.value)
	b.class.release(st, gid)
}

// Clone inserts a new binding carrying a deep copy of b's value, anchored
// immediately above b, and returns it. Anchoring next to the source rather
// than at the absolute top is what preserves the relative order of
// bindings when copies land in containers. Cloning a detached binding
// inserts at the top (the Above fallback).
//
// Clone followed by End on the source relocates the value without
// reordering any other binding.
func (b *Binding[T]) Clone() *Binding[T] {
	if b == nil {
		return nil
	}
	return b.class.Bind(deepcopy.Clone(b.value), Above(b))
}

// Value returns a pointer to the bound value. The pointer stays valid for
// the binding's lifetime, and mutations through it are visible to every
// lookup that reaches this binding.
func (b *Binding[T]) Value() *T {
	return &b.value
}

// Next returns the adjacent binding toward the bottom (older) end, or nil.
func (b *Binding[T]) Next() *Binding[T] {
	if b == nil {
		return nil
	}
	return b.next
}

// Prev returns the adjacent binding toward the top (newer) end, or nil.
func (b *Binding[T]) Prev() *Binding[T] {
	if b == nil {
		return nil
	}
	return b.prev
}

// Attached reports whether the binding currently sits on its stack.
func (b *Binding[T]) Attached() bool {
	return b != nil && b.attached
}
