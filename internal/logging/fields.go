package logging

import (
	"log/slog"

	"github.com/telhawk-systems/telhawk-cef/pkg/cef"
)

// Common field names for consistent logging across commands.
const (
	FieldRunID    = "run_id"
	FieldEventID  = "event_id"
	FieldSeverity = "severity"
	FieldLevel    = "severity_level"
	FieldDevice   = "device"
	FieldFile     = "file"
	FieldCount    = "count"
	FieldError    = "error"
)

// EventID returns a slog attribute for a CEF signature ID.
func EventID(id string) slog.Attr {
	return slog.String(FieldEventID, id)
}

// Severity returns a slog attribute for an integer severity.
func Severity(severity int) slog.Attr {
	return slog.Int(FieldSeverity, severity)
}

// Device returns a slog group describing a CEF device.
func Device(d cef.Device) slog.Attr {
	return slog.Group(FieldDevice,
		slog.String("vendor", d.Vendor()),
		slog.String("product", d.Product()),
		slog.String("version", d.Version()),
	)
}

// Event returns the attributes that identify an event in log lines.
func Event(e *cef.Event) []any {
	return []any{
		EventID(e.ID()),
		Severity(e.Severity()),
		slog.String(FieldLevel, e.SeverityLevel()),
	}
}

// File returns a slog attribute for an input file path.
func File(path string) slog.Attr {
	return slog.String(FieldFile, path)
}

// Count returns a slog attribute for a number of items.
func Count(n int) slog.Attr {
	return slog.Int(FieldCount, n)
}

// Error returns a slog attribute for an error.
func Error(err error) slog.Attr {
	return slog.String(FieldError, err.Error())
}
