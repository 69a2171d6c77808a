package cef

// Serializer converts an event into an output representation R.
type Serializer[R any] interface {
	Serialize(e *Event) (R, error)
}

// StdSerializer renders events as CEF text lines using Compose.
type StdSerializer struct{}

var _ Serializer[string] = StdSerializer{}

// Serialize implements Serializer.
func (StdSerializer) Serialize(e *Event) (string, error) {
	return Compose(e)
}
