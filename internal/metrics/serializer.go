// Package metrics exposes Prometheus instrumentation for CEF serialization.
package metrics

import (
	"errors"
	"time"

	"github.com/telhawk-systems/telhawk-cef/pkg/cef"
)

// Serializer records metrics around another string serializer.
type Serializer struct {
	inner cef.Serializer[string]
}

var _ cef.Serializer[string] = (*Serializer)(nil)

// NewSerializer wraps inner. A nil inner uses cef.StdSerializer.
func NewSerializer(inner cef.Serializer[string]) *Serializer {
	if inner == nil {
		inner = cef.StdSerializer{}
	}
	return &Serializer{inner: inner}
}

// Serialize implements cef.Serializer.
func (s *Serializer) Serialize(e *cef.Event) (string, error) {
	start := time.Now()
	line, err := s.inner.Serialize(e)
	SerializeDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		EventsSerialized.WithLabelValues(StatusError).Inc()
		SerializeErrors.WithLabelValues(FieldOf(err)).Inc()
		return "", err
	}

	EventsSerialized.WithLabelValues(StatusOK).Inc()
	EventBytes.Add(float64(len(line)))
	return line, nil
}

// FieldOf returns the field named by a *cef.ValidationError in err's chain,
// or "unknown".
func FieldOf(err error) string {
	var ve *cef.ValidationError
	if errors.As(err, &ve) {
		return ve.Field
	}
	return "unknown"
}
