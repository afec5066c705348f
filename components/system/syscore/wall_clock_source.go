package syscore

import (
	"github.com/juju/clock"
)

// WallClockSource reads the calendar clock.
//
// Remarks:
//   - Used only when the platform provides no monotonic primitive.
//   - Clock adjustments cause arbitrary forward jumps and regressions of the
//     raw reading; Clock hides the regressions but not the jumps.
type WallClockSource struct {
	clock clock.Clock
}

// NewWallClockSource is an initialization of WallClockSource.
//
// Parameters:
//   - clock - calendar clock, if nil clock.WallClock is used.
func NewWallClockSource(c clock.Clock) *WallClockSource {
	if c == nil {
		c = clock.WallClock
	}

	return &WallClockSource{
		clock: c,
	}
}

// ReadRawTime returns the time elapsed since the UNIX epoch.
func (s *WallClockSource) ReadRawTime() (RawTime, error) {
	now := s.clock.Now()

	return RawTime{
		Sec:  now.Unix(),
		Nsec: int64(now.Nanosecond()),
	}, nil
}

// Kind returns SourceKindWallClock.
func (*WallClockSource) Kind() SourceKind {
	return SourceKindWallClock
}
