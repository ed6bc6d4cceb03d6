//go:build !scopeddebug

package scoped

const debugChecks = false
