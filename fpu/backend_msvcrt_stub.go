//go:build !windows

package fpu

// The VC runtime fallback only exists on Windows hosts.
var msvcrtStrategy *strategy
