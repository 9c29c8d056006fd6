package core

// Closer releases resources owned by a component: candidate lists, DB handles,
// network connections.
type Closer interface {
	// Close releases the resource.
	Close() error
}
