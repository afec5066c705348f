package syscore

import "fmt"

// SourceKind describes which kind of OS primitive backs a RawSource.
type SourceKind int

const (
	// SourceKindMonotonic is a dedicated monotonic clock API, e.g. CLOCK_MONOTONIC.
	SourceKindMonotonic SourceKind = iota

	// SourceKindUptime is a high-resolution counter of time elapsed since boot.
	SourceKindUptime

	// SourceKindWallClock is a calendar clock used as a last resort.
	//
	// Remarks:
	//  - The value can jump in both directions when the system time is adjusted.
	SourceKindWallClock
)

// String returns the human-readable kind name.
func (k SourceKind) String() string {
	switch k {
	case SourceKindMonotonic:
		return "monotonic"
	case SourceKindUptime:
		return "uptime"
	case SourceKindWallClock:
		return "wallclock"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Monotonic returns true if the OS guarantees the source never goes backwards.
func (k SourceKind) Monotonic() bool {
	return k == SourceKindMonotonic || k == SourceKindUptime
}

// RawTime is a time reading in the native epoch of the source.
type RawTime struct {
	// Sec is the number of whole seconds.
	Sec int64

	// Nsec is the sub-second part, in nanoseconds.
	Nsec int64
}

// Milliseconds converts the reading to whole milliseconds.
//
// Remarks:
//   - Sub-millisecond remainder is truncated, not rounded.
//   - Negative readings are clamped to 0.
func (t RawTime) Milliseconds() uint64 {
	ms := t.Sec*1000 + t.Nsec/1000000
	if ms < 0 {
		return 0
	}

	return uint64(ms)
}

// RawSource reads the best available time primitive of the platform.
type RawSource interface {
	// ReadRawTime returns the current reading of the source.
	ReadRawTime() (RawTime, error)

	// Kind returns the kind of the source.
	Kind() SourceKind
}
