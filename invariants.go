package scoped

// Structural validation of stack invariants. The checks are programming
// error traps, not control flow: they are compiled out unless the
// scopeddebug build tag is set, keeping release binaries at zero overhead.

// assertStack panics with ErrCorruptStack when st violates a structural
// invariant: mismatched head/tail emptiness, dangling end pointers, or a
// node whose neighbors do not link back to it.
func assertStack[T any](st *stackState[T]) {
	if !debugChecks {
		return
	}
	if (st.head == nil) != (st.tail == nil) {
		panic(ErrCorruptStack)
	}
	if st.head == nil {
		return
	}
	if st.head.prev != nil || st.tail.next != nil {
		panic(ErrCorruptStack)
	}
	var last *Binding[T]
	for n := st.head; n != nil; n = n.next {
		if !n.attached {
			panic(ErrCorruptStack)
		}
		if n.prev != nil && n.prev.next != n {
			panic(ErrCorruptStack)
		}
		if n.next != nil && n.next.prev != n {
			panic(ErrCorruptStack)
		}
		last = n
	}
	if last != st.tail {
		panic(ErrCorruptStack)
	}
}

// assertEmptyOnRestore panics when a shield restores over a stack that
// still holds bindings, i.e. bindings established inside the shielded
// region were not ended before the shield exit.
func assertEmptyOnRestore[T any](st *stackState[T]) {
	if !debugChecks {
		return
	}
	if st.head != nil || st.tail != nil {
		panic(ErrCorruptStack)
	}
}
