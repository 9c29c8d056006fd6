package syssched

// ErrorHandler handles errors returned by a task.
type ErrorHandler interface {
	// HandleError handles error.
	HandleError(err error)
}
