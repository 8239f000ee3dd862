package fpu

import (
	"runtime"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/golang/glog"
)

// Errors surfaced by this package. Callers match them with errors.Is.
var (
	// ErrUnavailable is returned by the scoped executors when no native
	// rounding-control facility could be bound.
	ErrUnavailable = errors.New("rounding control unavailable")

	// ErrEmptyReduction is returned by Min and Max on an empty sequence.
	ErrEmptyReduction = errors.New("reduction over empty sequence")

	// ErrInvalidDirection is returned by Nudge when the direction is
	// neither +1 nor -1.
	ErrInvalidDirection = errors.New("direction must be +1 or -1")

	// ErrNoInverse is returned by Power for a negative exponent over a
	// ring without a multiplicative inverse.
	ErrNoInverse = errors.New("ring has no multiplicative inverse")
)

// archProfile holds the control codes for the "toward +infinity" and
// "toward -infinity" rounding directions. The encodings depend on the
// processor family's floating-point control register layout.
type archProfile struct {
	upCode   uint32
	downCode uint32
}

// profileFor returns the control codes for a processor family. The
// values must match the FE_UPWARD/FE_DOWNWARD constants of the
// platform's fenv.h.
func profileFor(goarch string) archProfile {
	switch goarch {
	case "ppc64", "ppc64le":
		return archProfile{upCode: 2, downCode: 3}
	case "sparc64":
		return archProfile{upCode: 0x80000000, downCode: 0xC0000000}
	default:
		return archProfile{upCode: 0x0800, downCode: 0x0400}
	}
}

// Backend reads and writes the process-wide rounding mode. The mode
// value is an opaque control-register encoding: the only meaningful
// arguments to SetRounding are values previously returned by Rounding
// and the directional codes bound into a Control.
type Backend interface {
	Rounding() (uint32, error)
	SetRounding(mode uint32) error
}

// A strategy attempts to bind one native rounding-control facility,
// returning the backend together with the directional codes it
// understands. An error means "try the next strategy".
type strategy struct {
	name string
	init func() (Backend, archProfile, error)
}

// Control binds a rounding backend to its directional control codes.
// The floating-point control register is hardware-global state shared
// by the whole process; a Control does not own it, it only makes the
// dependency on that shared state visible at call sites.
type Control struct {
	backend Backend
	profile archProfile
}

// NewControl wraps an explicit backend and directional code pair. Most
// callers want Default instead; this exists for tests and for hosts
// with a rounding facility this package does not know about.
func NewControl(b Backend, upCode, downCode uint32) *Control {
	return &Control{
		backend: b,
		profile: archProfile{upCode: upCode, downCode: downCode},
	}
}

// Available reports whether a rounding backend is bound to c.
func (c *Control) Available() bool {
	return c != nil && c.backend != nil
}

var (
	defaultOnce sync.Once
	defaultCtl  *Control
)

// Default returns the process-wide Control. On first call the backend
// strategies are tried in a fixed order and the first one that
// initializes wins. If all of them fail the returned Control is non-nil
// but unavailable, and a warning is logged once; the failure is never
// fatal.
func Default() *Control {
	defaultOnce.Do(func() {
		defaultCtl = initControl(strategies())
	})
	return defaultCtl
}

// Available reports whether the process-wide Control has a usable
// backend.
func Available() bool {
	return Default().Available()
}

func initControl(ss []strategy) *Control {
	var initErr error
	for _, s := range ss {
		b, p, err := s.init()
		if err != nil {
			initErr = errors.CombineErrors(initErr,
				errors.Wrapf(err, "backend %s", s.name))
			continue
		}
		return &Control{backend: b, profile: p}
	}
	if initErr != nil {
		glog.Warningf("fpu: rounding control unavailable: %v", initErr)
	} else {
		glog.Warning("fpu: rounding control unavailable: no backend for this platform")
	}
	return &Control{}
}

// hostProfile is the code table for the processor this binary runs on.
func hostProfile() archProfile {
	return profileFor(runtime.GOARCH)
}
