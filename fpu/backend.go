package fpu

// Strategy order is fixed: the C99 floating-point environment first,
// then the VC runtime fallback. Each variable is non-nil only on builds
// where the facility can exist at all; whether it actually works on the
// running host is decided by its init probe.
func strategies() []strategy {
	var ss []strategy
	if cfenvStrategy != nil {
		ss = append(ss, *cfenvStrategy)
	}
	if msvcrtStrategy != nil {
		ss = append(ss, *msvcrtStrategy)
	}
	return ss
}
