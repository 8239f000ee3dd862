//go:build cgo

package fpu

// The C99 floating-point environment from the host's math runtime.
// fesetround rejects codes it does not recognize, which the init probe
// relies on: a host whose fenv.h encodings differ from the code table
// fails the probe and the next strategy is tried instead.

/*
#cgo LDFLAGS: -lm
#include <fenv.h>

static int go_fegetround(void) { return fegetround(); }
static int go_fesetround(int mode) { return fesetround(mode); }
*/
import "C"

import (
	"github.com/cockroachdb/errors"
)

type cfenvBackend struct{}

func (cfenvBackend) Rounding() (uint32, error) {
	return uint32(C.go_fegetround()), nil
}

func (cfenvBackend) SetRounding(mode uint32) error {
	if C.go_fesetround(C.int(int32(mode))) != 0 {
		return errors.Newf("fesetround rejected mode %#x", mode)
	}
	return nil
}

func initCfenv() (Backend, archProfile, error) {
	b := cfenvBackend{}
	p := hostProfile()

	// Probe: switch to the upward code and back. A control register
	// that cannot round upward is useless to the scoped executors.
	saved, err := b.Rounding()
	if err != nil {
		return nil, archProfile{}, err
	}
	if err := b.SetRounding(p.upCode); err != nil {
		return nil, archProfile{}, errors.Wrap(err, "probing upward mode")
	}
	if err := b.SetRounding(saved); err != nil {
		return nil, archProfile{}, errors.Wrap(err, "restoring probed mode")
	}
	return b, p, nil
}

var cfenvStrategy = &strategy{name: "cfenv", init: initCfenv}
