package cef

// Device identifies the product that emits events. Devices are plain values:
// two devices with the same vendor, product and version compare equal with ==.
//
// No two products should share a vendor and product pair. Nothing enforces
// this; producers are expected to pick unique names.
type Device struct {
	vendor  string
	product string
	version string
}

type deviceFields struct {
	Vendor  string `cef:"vendor" validate:"notblank"`
	Product string `cef:"product" validate:"notblank"`
	Version string `cef:"version" validate:"notblank"`
}

// NewDevice returns a Device, or a *ValidationError naming the first blank
// field in the order vendor, product, version.
func NewDevice(vendor, product, version string) (Device, error) {
	if err := check(deviceFields{Vendor: vendor, Product: product, Version: version}); err != nil {
		return Device{}, err
	}
	return Device{vendor: vendor, product: product, version: version}, nil
}

// MustDevice is like NewDevice but panics on invalid input.
// Intended for package-level device declarations.
func MustDevice(vendor, product, version string) Device {
	d, err := NewDevice(vendor, product, version)
	if err != nil {
		panic("cef: " + err.Error())
	}
	return d
}

func (d Device) Vendor() string  { return d.vendor }
func (d Device) Product() string { return d.product }
func (d Device) Version() string { return d.version }

func (d Device) fields() *deviceFields {
	return &deviceFields{Vendor: d.vendor, Product: d.product, Version: d.version}
}
