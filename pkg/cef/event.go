package cef

import "strconv"

const formatPrefix = "CEF"

// Severity bounds, inclusive.
const (
	MinSeverity = 0
	MaxSeverity = 10
)

// Config carries the raw fields of an event. Version defaults to 0 and
// Extension to the empty extension.
type Config struct {
	// Version of the CEF format. Consumers use it to interpret the fields
	// that follow. Must be >= 0.
	Version int

	// Device identifies the sending product. Required.
	Device *Device

	// ID is the Device Event Class ID (signature ID): a unique identifier
	// per event type. Required.
	ID string

	// Name describes the event, e.g. "Port scan". Required.
	Name string

	// Severity reflects the importance of the event, 0 to 10.
	Severity int

	// Extension holds optional key/value pairs.
	Extension Extension
}

type eventFields struct {
	Version  int           `cef:"version" validate:"gte=0"`
	Device   *deviceFields `cef:"device" validate:"required"`
	ID       string        `cef:"id" validate:"notblank"`
	Name     string        `cef:"name" validate:"notblank"`
	Severity int           `cef:"severity" validate:"gte=0,lte=10"`
}

// Event is a validated, immutable CEF event.
type Event struct {
	version   int
	device    Device
	id        string
	name      string
	severity  int
	extension Extension
}

// New validates cfg and returns the event it describes. On failure the error
// is a *ValidationError for the first violated invariant, checked in the
// order version, device, device.vendor, device.product, device.version, id,
// name, severity.
func New(cfg Config) (*Event, error) {
	fields := eventFields{
		Version:  cfg.Version,
		ID:       cfg.ID,
		Name:     cfg.Name,
		Severity: cfg.Severity,
	}
	if cfg.Device != nil {
		fields.Device = cfg.Device.fields()
	}

	if err := check(fields); err != nil {
		return nil, err
	}

	return &Event{
		version:   cfg.Version,
		device:    *cfg.Device,
		id:        cfg.ID,
		name:      cfg.Name,
		severity:  cfg.Severity,
		extension: cfg.Extension,
	}, nil
}

// FormatIdentifier returns the leading field of the line, e.g. "CEF:0".
func (e *Event) FormatIdentifier() string {
	return formatPrefix + ":" + strconv.Itoa(e.version)
}

func (e *Event) Version() int          { return e.version }
func (e *Event) Device() Device        { return e.device }
func (e *Event) ID() string            { return e.id }
func (e *Event) Name() string          { return e.name }
func (e *Event) Severity() int         { return e.severity }
func (e *Event) Extension() Extension  { return e.extension }
func (e *Event) SeverityLevel() string { return SeverityLevel(e.severity) }
