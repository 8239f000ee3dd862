//go:build windows

package fpu

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/sys/windows"
)

var (
	msvcrtDLL     = windows.NewLazySystemDLL("msvcrt.dll")
	procControlfp = msvcrtDLL.NewProc("_controlfp")
)

func callControlfp(value, mask uint32) uint32 {
	w, _, _ := procControlfp.Call(uintptr(value), uintptr(mask))
	return uint32(w)
}

func initMsvcrt() (Backend, archProfile, error) {
	if err := procControlfp.Find(); err != nil {
		return nil, archProfile{}, errors.Wrap(err, "resolving _controlfp")
	}
	return controlfpBackend{call: callControlfp}, archProfile{
		upCode:   msvcUpward,
		downCode: msvcDownward,
	}, nil
}

var msvcrtStrategy = &strategy{name: "msvcrt", init: initMsvcrt}
