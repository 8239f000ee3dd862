package fpu

// WithRoundingMode runs f with the process-wide rounding mode set to
// mode, and restores the previously active mode on every exit path,
// including a panic escaping f. The error only ever concerns the
// backend; f's result is returned as-is.
//
// The rounding-mode register is shared by the whole process: concurrent
// calls from several goroutines race on it. See the package
// documentation.
func WithRoundingMode[T any](c *Control, mode uint32, f func() T) (T, error) {
	var zero T
	if !c.Available() {
		return zero, ErrUnavailable
	}
	saved, err := c.backend.Rounding()
	if err != nil {
		return zero, err
	}
	if err := c.backend.SetRounding(mode); err != nil {
		return zero, err
	}
	// The restore must run even when f panics. Its argument was read
	// from the register above, so the backend accepts it.
	defer c.backend.SetRounding(saved)
	return f(), nil
}

// RoundingDown runs f with the FPU rounding toward -infinity.
func RoundingDown[T any](c *Control, f func() T) (T, error) {
	if !c.Available() {
		var zero T
		return zero, ErrUnavailable
	}
	return WithRoundingMode(c, c.profile.downCode, f)
}

// RoundingUp runs f with the FPU rounding toward +infinity.
func RoundingUp[T any](c *Control, f func() T) (T, error) {
	if !c.Available() {
		var zero T
		return zero, ErrUnavailable
	}
	return WithRoundingMode(c, c.profile.upCode, f)
}

// Down runs f on the process-wide Control with rounding toward
// -infinity.
func Down[T any](f func() T) (T, error) {
	return RoundingDown(Default(), f)
}

// Up runs f on the process-wide Control with rounding toward +infinity.
func Up[T any](f func() T) (T, error) {
	return RoundingUp(Default(), f)
}
