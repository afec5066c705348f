//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly && !windows

package syscore

import (
	"github.com/open-control-systems/monoclock/components/core"
)

// NewDefaultSource returns the best available time source for the platform.
//
// Remarks:
//   - No monotonic primitive is wired for this platform, the wall clock is used.
func NewDefaultSource() RawSource {
	core.LogWrn.Println("monotonic-source: no monotonic primitive, using wall clock fallback")

	return NewWallClockSource(nil)
}
