package syscore

import (
	"fmt"
	"sync/atomic"

	"github.com/open-control-systems/monoclock/components/status"
)

// ClockStats contains counters collected by Clock.
type ClockStats struct {
	// Reads is the number of successful NowMs calls.
	Reads uint64

	// Synthesized is the number of readings produced as last+1 because the
	// source didn't move forward.
	Synthesized uint64
}

// Clock converts RawSource readings to strictly increasing milliseconds.
//
// Remarks:
//   - Clock is safe for concurrent use.
//   - After a burst of N calls within the same source tick, the reported time
//     may run up to N-1 ms ahead of the source.
type Clock struct {
	source RawSource

	last        atomic.Uint64
	reads       atomic.Uint64
	synthesized atomic.Uint64
}

// NewClock is an initialization of Clock.
func NewClock(source RawSource) *Clock {
	return &Clock{
		source: source,
	}
}

// NowMs returns the current monotonic time in milliseconds.
func (c *Clock) NowMs() (uint64, error) {
	raw, err := c.source.ReadRawTime()
	if err != nil {
		return 0, fmt.Errorf("%w: source=%s err=%v", status.StatusClockUnavailable,
			c.source.Kind(), err)
	}

	current := raw.Milliseconds()

	for {
		prev := c.last.Load()

		next := current
		if next <= prev {
			next = prev + 1
		}

		if c.last.CompareAndSwap(prev, next) {
			c.reads.Add(1)
			if next != current {
				c.synthesized.Add(1)
			}

			return next, nil
		}
	}
}

// SourceKind returns the kind of the underlying source.
func (c *Clock) SourceKind() SourceKind {
	return c.source.Kind()
}

// IsMonotonic returns true if the underlying source is guaranteed to be monotonic
// by the OS, false for the best-effort wall clock fallback.
func (c *Clock) IsMonotonic() bool {
	return c.source.Kind().Monotonic()
}

// Stats returns the counters collected so far.
func (c *Clock) Stats() ClockStats {
	return ClockStats{
		Reads:       c.reads.Load(),
		Synthesized: c.synthesized.Load(),
	}
}
