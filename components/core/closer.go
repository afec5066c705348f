package core

// Closer implementation should free all allocated resources.
type Closer interface {
	// Close the resource.
	Close() error
}

// FuncCloser is a function type that implements the Closer interface.
//
// Remarks:
//   - Useful to register Stop() methods in FanoutCloser.
type FuncCloser func() error

// Close calls the function itself to fulfill the Closer interface.
func (f FuncCloser) Close() error {
	return f()
}
