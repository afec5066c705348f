package core

// ErrorHandler handles errors.
type ErrorHandler interface {
	// HandleError handles error.
	HandleError(err error)
}

// LogErrorHandler logs errors with LogErr.
type LogErrorHandler struct {
	// Name is a component name used as the log message prefix.
	Name string
}

// HandleError logs the error.
func (h *LogErrorHandler) HandleError(err error) {
	LogErr.Printf("%s: %v\n", h.Name, err)
}
