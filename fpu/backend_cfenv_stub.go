//go:build !cgo

package fpu

// Without cgo there is no way to reach fegetround/fesetround.
var cfenvStrategy *strategy
