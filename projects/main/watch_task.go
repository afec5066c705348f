package main

import (
	"fmt"
	"io"

	"github.com/open-control-systems/monoclock/components/status"
	"github.com/open-control-systems/monoclock/components/system/syscore"
)

// watchTask prints one clock reading per run.
type watchTask struct {
	clock syscore.MonotonicClock
	w     io.Writer
	limit int
	count int
}

func newWatchTask(clock syscore.MonotonicClock, w io.Writer, limit int) *watchTask {
	return &watchTask{
		clock: clock,
		w:     w,
		limit: limit,
	}
}

// Run prints the reading, status.StatusDone is returned once the limit is reached.
func (t *watchTask) Run() error {
	ms, err := t.clock.NowMs()
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(t.w, ms); err != nil {
		return err
	}

	t.count++

	if t.limit > 0 && t.count >= t.limit {
		return status.StatusDone
	}

	return nil
}
