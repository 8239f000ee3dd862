// This package provides control of the floating-point unit's rounding
// mode, together with a small set of helper functions that follow strict
// IEEE 754 semantics. It is meant as a building block for verified
// numeric code (interval arithmetic, directed-rounding bounds) where a
// computation must be bracketed between a round-toward-minus-infinity
// run and a round-toward-plus-infinity run.
//
// Rounding control is bound lazily, on first use, to whichever native
// facility is available on the host: the C99 floating-point environment
// (fegetround/fesetround from the math runtime) is tried first, then the
// Microsoft VC runtime's _controlfp. If no facility can be bound the
// package stays loaded and a warning is logged once; [Available] reports
// whether directed rounding actually works, and the scoped executors
// return an error in the degraded state. The control codes written to the
// register are processor-specific; the recognized families are PowerPC,
// SPARC and the x86 default encoding.
//
// The scoped executors [RoundingDown] and [RoundingUp] run a computation
// with the mode temporarily switched and restore the previously active
// mode on every exit path, including a panic escaping the computation.
// The helpers ([Min], [Max], [Power], [IntRepr], [Nudge]) do not touch
// the rounding mode at all. Nudge derives its step from the input's
// binary exponent; for the smallest subnormals that step underflows
// and the input comes back unchanged.
//
// Limitations
//
// The rounding mode lives in a control register that is global to the
// whole process. The scoped executors save and restore it around a
// single call, but nothing isolates concurrent callers from each other:
// one goroutine's restore can interleave with another goroutine's set.
// Running the executors from several goroutines at once is not safe, and
// no locked or goroutine-confined variant is provided.
package fpu
