//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package syscore

import (
	"golang.org/x/sys/unix"

	"github.com/open-control-systems/monoclock/components/core"
)

// PosixMonotonicSource reads CLOCK_MONOTONIC with clock_gettime(2).
type PosixMonotonicSource struct{}

// ReadRawTime returns the time elapsed since an unspecified point in the past.
func (*PosixMonotonicSource) ReadRawTime() (RawTime, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return RawTime{}, err
	}

	sec, nsec := ts.Unix()

	return RawTime{Sec: sec, Nsec: nsec}, nil
}

// Kind returns SourceKindMonotonic.
func (*PosixMonotonicSource) Kind() SourceKind {
	return SourceKindMonotonic
}

// NewDefaultSource returns the best available time source for the platform.
//
// Remarks:
//   - CLOCK_MONOTONIC is probed once, the wall clock is used if it isn't available.
func NewDefaultSource() RawSource {
	source := &PosixMonotonicSource{}

	if _, err := source.ReadRawTime(); err != nil {
		core.LogWrn.Printf("monotonic-source: clock_gettime unavailable,"+
			" using wall clock fallback: err=%v\n", err)

		return NewWallClockSource(nil)
	}

	return source
}
