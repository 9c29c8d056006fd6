package core

// FuncCloser adapts a function to the Closer interface.
type FuncCloser func() error

// Close calls the function itself.
func (f FuncCloser) Close() error {
	return f()
}
