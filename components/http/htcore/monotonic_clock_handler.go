package htcore

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/open-control-systems/monoclock/components/status"
	"github.com/open-control-systems/monoclock/components/system/syscore"
)

// MonotonicClockReader reads the monotonic clock and its capabilities.
type MonotonicClockReader interface {
	syscore.MonotonicClock

	// SourceKind returns the kind of the underlying source.
	SourceKind() syscore.SourceKind
}

// MonotonicClockHandler serves the monotonic clock readings over HTTP.
type MonotonicClockHandler struct {
	clock MonotonicClockReader
}

// NewMonotonicClockHandler creates an HTTP handler for the monotonic clock readings.
func NewMonotonicClockHandler(clock MonotonicClockReader) *MonotonicClockHandler {
	return &MonotonicClockHandler{
		clock: clock,
	}
}

// ServeHTTP implements an HTTP endpoint logic.
func (h *MonotonicClockHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "error: unsupported method", http.StatusMethodNotAllowed)

		return
	}

	w.Header().Set("X-Clock-Source", h.clock.SourceKind().String())

	ms, err := h.clock.NowMs()
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, status.StatusClockUnavailable) {
			code = http.StatusServiceUnavailable
		}

		http.Error(w, fmt.Sprintf("failed to read monotonic time: %v", err), code)

		return
	}

	WriteText(w, strconv.FormatUint(ms, 10))
}
