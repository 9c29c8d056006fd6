package stcore

// Blob is an opaque piece of data stored in DB.
type Blob struct {
	Data []byte
}
