package fpu

// The VC runtime controls the FPU through a single combined get/set
// function: it applies (value & mask) to the control word and returns
// the resulting word. The rounding policy lives in the bits under mask
// 0x300; every write here is restricted to that mask so the precision
// and exception-mask bits keep whatever values the runtime gave them.
const (
	msvcUpward    = 0x0200
	msvcDownward  = 0x0100
	msvcRoundMask = 0x0300
)

// controlfpBackend drives a _controlfp-style function supplied by the
// platform binding.
type controlfpBackend struct {
	call func(value, mask uint32) uint32
}

func (b controlfpBackend) Rounding() (uint32, error) {
	return b.call(0, 0) & msvcRoundMask, nil
}

func (b controlfpBackend) SetRounding(mode uint32) error {
	b.call(mode&msvcRoundMask, msvcRoundMask)
	return nil
}
