package syscore

// MonotonicClock to read strictly increasing millisecond time.
type MonotonicClock interface {
	// NowMs returns the current monotonic time in milliseconds.
	//
	// Remarks:
	//  - Each successful call returns a value greater than any value returned before.
	//  - Implementation should return status.StatusClockUnavailable if the
	//    underlying time source can't be read.
	NowMs() (uint64, error)
}
