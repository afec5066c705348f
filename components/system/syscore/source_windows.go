//go:build windows

package syscore

import (
	"golang.org/x/sys/windows"
)

// TickCountSource reads the number of milliseconds elapsed since boot with
// GetTickCount64.
//
// Remarks:
//   - Resolution is usually 10-16ms.
type TickCountSource struct{}

// ReadRawTime returns the time elapsed since the system was started.
func (*TickCountSource) ReadRawTime() (RawTime, error) {
	ms := int64(windows.GetTickCount64())

	return RawTime{
		Sec:  ms / 1000,
		Nsec: (ms % 1000) * 1000000,
	}, nil
}

// Kind returns SourceKindUptime.
func (*TickCountSource) Kind() SourceKind {
	return SourceKindUptime
}

// NewDefaultSource returns the best available time source for the platform.
func NewDefaultSource() RawSource {
	return &TickCountSource{}
}
