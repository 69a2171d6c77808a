package cef

import (
	"fmt"
	"strings"
	"unicode"
)

// Each replacer rewrites the string in a single left-to-right pass, so a
// backslash it inserts is never escaped again.
var (
	fieldEscaper = strings.NewReplacer(`\`, `\\`, `|`, `\|`)
	keyEscaper   = strings.NewReplacer(`=`, `\=`)

	// Backslash is escaped in extension values as well as in prefix fields.
	valueEscaper = strings.NewReplacer(`\`, `\\`, `=`, `\=`, "\r", `\r`, "\n", `\n`)
)

// EscapeField escapes a prefix field (vendor, product, device version, id,
// name). Pipes and backslashes are prefixed with a backslash. Prefix fields
// are single-line, so a value containing CR or LF is rejected.
func EscapeField(value string) (string, error) {
	return escapeField("field", value)
}

// EscapeExtensionKey escapes `=` in an extension key. Keys must be a single
// token, so a key containing any whitespace is rejected.
func EscapeExtensionKey(key string) (string, error) {
	if strings.IndexFunc(key, unicode.IsSpace) >= 0 {
		return "", &ValidationError{
			Field:  "extension key",
			Reason: fmt.Sprintf("%q contains whitespace", key),
		}
	}
	return keyEscaper.Replace(key), nil
}

// EscapeExtensionValue escapes an extension value: `\` becomes `\\`, `=`
// becomes `\=`, and CR and LF become the two-character sequences `\r` and
// `\n`. Every input is accepted; the error is always nil.
func EscapeExtensionValue(value string) (string, error) {
	return valueEscaper.Replace(value), nil
}

func escapeField(name, value string) (string, error) {
	if strings.ContainsAny(value, "\r\n") {
		return "", &ValidationError{
			Field:  name,
			Reason: fmt.Sprintf("%q contains a line break", value),
		}
	}
	return fieldEscaper.Replace(value), nil
}
