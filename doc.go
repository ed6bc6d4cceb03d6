// Package scoped implements goroutine-scoped value binding: code establishes
// a value "in effect" for the duration of a lexical block, and arbitrarily
// nested calls discover the most recently established value (or walk every
// established value) without the value being passed as an argument. It is a
// disciplined, type-safe replacement for singletons, package-level mutable
// configuration, and ad-hoc thread-local hacks.
//
// A Class[T] identifies one logical stack per goroutine. Binding a value
// pushes it onto the calling goroutine's stack for that class; ending the
// binding removes it from wherever it currently sits, so lifetimes do not
// have to nest like a call stack:
//
//	var Threshold = scoped.NewClass[int]("threshold")
//
//	func classify(n int) string {
//		if limit := Threshold.Get(); limit != nil && n >= *limit {
//			return "flagged"
//		}
//		return "normal"
//	}
//
//	func handle() {
//		b := Threshold.Bind(4)
//		defer b.End()
//		classify(10) // "flagged": the binding is in effect here
//	}
//
// Stacks are strictly per goroutine. A binding established on one goroutine
// is invisible on every other; that isolation is the mechanism's substitute
// for synchronized shared configuration. The value a binding carries may be
// shared across goroutines by the caller, in which case guarding access to
// its contents is the caller's business; the engine never locks around
// Value.
//
// A Shield temporarily hides a class's stack from lookups for a nested
// region and restores it afterwards, without disturbing the hidden
// bindings. Manifests (see Declarer and ManifestOf) give module owners a
// compile-time way to advertise which classes an API consults; the
// companion analyzer in pkg/manifestcheck enforces the convention.
package scoped
