package cef

import (
	"iter"
	"slices"
)

type field struct {
	key     string
	value   string
	present bool
}

// Extension is the ordered key/value block that follows the prefix fields.
// Entries keep their insertion order, which is also their rendering order.
// The zero value is the empty extension. An Extension is read-only; build one
// with ExtensionBuilder.
type Extension struct {
	fields []field
}

// EmptyExtension returns the extension with no entries. It equals the zero value.
func EmptyExtension() Extension {
	return Extension{}
}

// Len returns the number of entries, including entries that will be skipped
// at render time because their key or value is absent.
func (x Extension) Len() int {
	return len(x.fields)
}

// All yields the renderable entries in insertion order.
func (x Extension) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, f := range x.fields {
			if !f.present {
				continue
			}
			if !yield(f.key, f.value) {
				return
			}
		}
	}
}

// Get returns the value stored under key. The boolean is false when the key
// was never added or its value is absent.
func (x Extension) Get(key string) (string, bool) {
	for _, f := range x.fields {
		if f.key == key {
			return f.value, f.present
		}
	}
	return "", false
}

// ExtensionBuilder accumulates extension entries. Adding never fails: entries
// with an empty key or a nil value are kept but skipped when the event is
// rendered. Adding a key that already exists replaces its value in place.
//
// A builder is not safe for concurrent use; the Extension it builds is.
type ExtensionBuilder struct {
	fields []field
	index  map[string]int
}

// NewExtensionBuilder returns an empty builder.
func NewExtensionBuilder() *ExtensionBuilder {
	return &ExtensionBuilder{index: make(map[string]int)}
}

// Add sets key to value.
func (b *ExtensionBuilder) Add(key, value string) *ExtensionBuilder {
	b.put(field{key: key, value: value, present: key != ""})
	return b
}

// AddOptional sets key to *value. A nil value records the key as absent.
func (b *ExtensionBuilder) AddOptional(key string, value *string) *ExtensionBuilder {
	if value == nil {
		b.put(field{key: key})
		return b
	}
	return b.Add(key, *value)
}

// Build returns an Extension holding a copy of the entries added so far.
// Later calls on the builder do not affect it.
func (b *ExtensionBuilder) Build() Extension {
	if len(b.fields) == 0 {
		return EmptyExtension()
	}
	return Extension{fields: slices.Clone(b.fields)}
}

func (b *ExtensionBuilder) put(f field) {
	if b.index == nil {
		b.index = make(map[string]int)
	}
	if i, ok := b.index[f.key]; ok {
		b.fields[i] = f
		return
	}
	b.index[f.key] = len(b.fields)
	b.fields = append(b.fields, f)
}
