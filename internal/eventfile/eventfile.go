// Package eventfile decodes YAML event descriptions into validated CEF events.
//
// A file holds one or more YAML documents of the form:
//
//	events:
//	  - id: some_event
//	    name: This event has been occurred
//	    severity: 10
//	    device: {vendor: iPlatform, product: USO, version: "1"}
//	    extension:
//	      ip: 10.91.161.67
//	      source: my_server
//
// Extension entries keep their order in the file. A null extension value
// (`key: ~` or `key:`) is kept as an absent entry and skipped on render.
package eventfile

import (
	"errors"
	"fmt"
	"io"

	"github.com/telhawk-systems/telhawk-cef/pkg/cef"
	"gopkg.in/yaml.v3"
)

const nullTag = "!!null"

// Defaults fill fields an event description leaves out.
type Defaults struct {
	Version int
	Device  *cef.Device
}

type document struct {
	Events []eventDesc `yaml:"events"`
}

type eventDesc struct {
	Version   *int        `yaml:"version"`
	Device    *deviceDesc `yaml:"device"`
	ID        string      `yaml:"id"`
	Name      string      `yaml:"name"`
	Severity  *int        `yaml:"severity"`
	Extension yaml.Node   `yaml:"extension"`
}

type deviceDesc struct {
	Vendor  string `yaml:"vendor"`
	Product string `yaml:"product"`
	Version string `yaml:"version"`
}

// Decode reads every document from r and returns the events in file order.
// Decoding stops at the first invalid event; the error names its position.
func Decode(r io.Reader, defaults Defaults) ([]*cef.Event, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var events []*cef.Event
	for doc := 0; ; doc++ {
		var d document
		if err := dec.Decode(&d); err != nil {
			if errors.Is(err, io.EOF) {
				return events, nil
			}
			return nil, fmt.Errorf("document %d: %w", doc, err)
		}

		for i, desc := range d.Events {
			event, err := desc.build(defaults)
			if err != nil {
				return nil, fmt.Errorf("document %d, event %d: %w", doc, i, err)
			}
			events = append(events, event)
		}
	}
}

func (s eventDesc) build(defaults Defaults) (*cef.Event, error) {
	cfg := cef.Config{
		Version: defaults.Version,
		Device:  defaults.Device,
		ID:      s.ID,
		Name:    s.Name,
	}
	if s.Version != nil {
		cfg.Version = *s.Version
	}
	if s.Device != nil {
		device, err := cef.NewDevice(s.Device.Vendor, s.Device.Product, s.Device.Version)
		if err != nil {
			return nil, fmt.Errorf("device: %w", err)
		}
		cfg.Device = &device
	}
	if s.Severity == nil {
		return nil, &cef.ValidationError{Field: "severity", Reason: "is required"}
	}
	cfg.Severity = *s.Severity

	ext, err := decodeExtension(&s.Extension)
	if err != nil {
		return nil, err
	}
	cfg.Extension = ext

	return cef.New(cfg)
}

// decodeExtension walks the mapping node pair by pair to keep file order.
func decodeExtension(node *yaml.Node) (cef.Extension, error) {
	if node.Kind == 0 || node.Tag == nullTag {
		return cef.EmptyExtension(), nil
	}
	if node.Kind != yaml.MappingNode {
		return cef.Extension{}, fmt.Errorf("extension: line %d: expected a mapping", node.Line)
	}

	b := cef.NewExtensionBuilder()
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return cef.Extension{}, fmt.Errorf("extension: line %d: keys and values must be scalars", key.Line)
		}

		k := key.Value
		if key.Tag == nullTag {
			k = ""
		}
		if value.Tag == nullTag {
			b.AddOptional(k, nil)
			continue
		}
		b.Add(k, value.Value)
	}
	return b.Build(), nil
}
