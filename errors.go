package scoped

import "errors"

// ErrForeignGoroutine is the panic value raised when a binding or shield is
// manipulated from a goroutine other than the one that created it. Stacks
// are goroutine-local; touching another goroutine's stack is a caller bug,
// not a recoverable condition.
var ErrForeignGoroutine = errors.New("scoped: binding manipulated outside its owning goroutine")

// ErrCorruptStack is the panic value raised by the structural validation
// layer when a stack invariant no longer holds, typically after links were
// severed by hand. Validation only runs under the scopeddebug build tag.
var ErrCorruptStack = errors.New("scoped: stack invariant violated")
