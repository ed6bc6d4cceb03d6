//go:build scopeddebug

package scoped

const debugChecks = true
