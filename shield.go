package scoped

import "github.com/petermattis/goid"

// Shield hides a class's stack from lookups on the calling goroutine for a
// nested region. While a shield is active, Top, Bottom, and Get behave as
// if nothing were bound, even though the hidden bindings remain fully
// attached in memory; Restore brings them back exactly as they were.
//
// Shields nest by ordinary scoping: each one captures the stack visible at
// its own creation, which already reflects any enclosing shield. Bindings
// established inside a shield must end before the shield restores, and a
// binding hidden by an active shield must outlive it.
type Shield[T any] struct {
	class    *Class[T]
	gid      int64
	head     *Binding[T]
	tail     *Binding[T]
	restored bool
}

// NewShield captures the calling goroutine's stack for the class and
// empties it. Prefer Shielded unless the shielded region cannot be
// expressed as a closure.
func (c *Class[T]) NewShield() *Shield[T] {
	st, gid := c.state(true)
	s := &Shield[T]{class: c, gid: gid, head: st.head, tail: st.tail}
	st.head, st.tail = nil, nil
	st.shields++
	c.record(opShield, gid, nil)
	return s
}

// Restore writes the captured stack back. Idempotent. Panics when called
// from a goroutine other than the one that created the shield.
func (s *Shield[T]) Restore() {
	if s == nil || s.restored {
		return
	}
	if goid.Get() != s.gid {
		panic(ErrForeignGoroutine)
	}
	st, gid := s.class.state(true)
	assertEmptyOnRestore(st)
	st.head, st.tail = s.head, s.tail
	st.shields--
	s.restored = true
	assertStack(st)
	s.class.record(opRestore, gid, nil)
	s.class.release(st, gid)
}

// Shielded runs fn with the class's stack hidden, restoring it when fn
// returns, normally or by panic.
func (c *Class[T]) Shielded(fn func()) {
	s := c.NewShield()
	defer s.Restore()
	fn()
}
