package cef

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	fieldDelimiter = "|"
	pairDelimiter  = " "
)

// Compose renders e as a CEF line without a trailing newline. The line always
// ends with the pipe that opens the extension block, even when the block is
// empty. A prefix field containing CR or LF, or an extension key containing
// whitespace, fails with a wrapped *ValidationError and no output.
func Compose(e *Event) (string, error) {
	if e == nil {
		return "", &ValidationError{Field: "event", Reason: "is required"}
	}

	prefix := [...]struct{ name, value string }{
		{"device.vendor", e.device.vendor},
		{"device.product", e.device.product},
		{"device.version", e.device.version},
		{"id", e.id},
		{"name", e.name},
	}

	var b strings.Builder
	b.WriteString(e.FormatIdentifier())
	for _, f := range prefix {
		escaped, err := escapeField(f.name, f.value)
		if err != nil {
			return "", fmt.Errorf("compose %s: %w", e.id, err)
		}
		b.WriteString(fieldDelimiter)
		b.WriteString(escaped)
	}
	b.WriteString(fieldDelimiter)
	b.WriteString(strconv.Itoa(e.severity))
	b.WriteString(fieldDelimiter)

	if err := writeExtension(&b, e.extension); err != nil {
		return "", fmt.Errorf("compose %s: %w", e.id, err)
	}
	return b.String(), nil
}

// writeExtension renders the present entries as space-separated key=value
// pairs in insertion order.
func writeExtension(b *strings.Builder, x Extension) error {
	first := true
	for _, f := range x.fields {
		if !f.present {
			continue
		}
		key, err := EscapeExtensionKey(f.key)
		if err != nil {
			return err
		}
		value, _ := EscapeExtensionValue(f.value)

		if !first {
			b.WriteString(pairDelimiter)
		}
		first = false
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(value)
	}
	return nil
}
