package cef_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telhawk-systems/telhawk-cef/pkg/cef"
)

func platformDevice(t *testing.T) *cef.Device {
	t.Helper()
	d, err := cef.NewDevice("iPlatform", "USO", "1")
	require.NoError(t, err)
	return &d
}

func TestNewDevice(t *testing.T) {
	testCases := []struct {
		name      string
		vendor    string
		product   string
		version   string
		wantField string
	}{
		{name: "valid", vendor: "iPlatform", product: "USO", version: "1"},
		{name: "empty vendor", vendor: "", product: "USO", version: "1", wantField: "vendor"},
		{name: "blank product", vendor: "iPlatform", product: " \t", version: "1", wantField: "product"},
		{name: "empty version", vendor: "iPlatform", product: "USO", version: "", wantField: "version"},
		{name: "all blank reports vendor first", vendor: " ", product: "", version: "\n", wantField: "vendor"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := cef.NewDevice(tc.vendor, tc.product, tc.version)
			if tc.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, tc.vendor, d.Vendor())
				assert.Equal(t, tc.product, d.Product())
				assert.Equal(t, tc.version, d.Version())
				return
			}

			var ve *cef.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.wantField, ve.Field)
			assert.Equal(t, "is required", ve.Reason)
			assert.ErrorIs(t, err, cef.ErrInvalidEvent)
			assert.Equal(t, cef.Device{}, d)
		})
	}
}

func TestDevice_ValueEquality(t *testing.T) {
	a := cef.MustDevice("iPlatform", "USO", "1")
	b := cef.MustDevice("iPlatform", "USO", "1")
	c := cef.MustDevice("iPlatform", "USO", "2")

	assert.True(t, a == b)
	assert.False(t, a == c)

	seen := map[cef.Device]int{a: 1}
	assert.Equal(t, 1, seen[b])
}

func TestMustDevice_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "cef: product is required", func() {
		cef.MustDevice("iPlatform", "", "1")
	})
}

func TestNew_Valid(t *testing.T) {
	device := platformDevice(t)
	ext := cef.NewExtensionBuilder().Add("ip", "10.91.161.67").Build()

	event, err := cef.New(cef.Config{
		Version:   1,
		Device:    device,
		ID:        "some_event",
		Name:      "This event has been occurred",
		Severity:  7,
		Extension: ext,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, event.Version())
	assert.Equal(t, *device, event.Device())
	assert.Equal(t, "some_event", event.ID())
	assert.Equal(t, "This event has been occurred", event.Name())
	assert.Equal(t, 7, event.Severity())
	assert.Equal(t, cef.LevelHigh, event.SeverityLevel())
	assert.Equal(t, 1, event.Extension().Len())
}

func TestNew_DefaultsApplied(t *testing.T) {
	event, err := cef.New(cef.Config{
		Device: platformDevice(t),
		ID:     "some_event",
		Name:   "Some event",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, event.Version())
	assert.Equal(t, 0, event.Severity())
	assert.Equal(t, cef.EmptyExtension(), event.Extension())
	assert.Equal(t, 0, event.Extension().Len())
}

func TestNew_Invariants(t *testing.T) {
	device := platformDevice(t)
	zeroDevice := &cef.Device{}

	valid := func(mutate func(*cef.Config)) cef.Config {
		cfg := cef.Config{Device: device, ID: "some_event", Name: "Some event", Severity: 5}
		mutate(&cfg)
		return cfg
	}

	testCases := []struct {
		name       string
		cfg        cef.Config
		wantField  string
		wantReason string
	}{
		{
			name:       "negative version",
			cfg:        valid(func(c *cef.Config) { c.Version = -1 }),
			wantField:  "version",
			wantReason: "must be >= 0, got -1",
		},
		{
			name:       "missing device",
			cfg:        valid(func(c *cef.Config) { c.Device = nil }),
			wantField:  "device",
			wantReason: "is required",
		},
		{
			name:       "zero device",
			cfg:        valid(func(c *cef.Config) { c.Device = zeroDevice }),
			wantField:  "device.vendor",
			wantReason: "is required",
		},
		{
			name:       "empty id",
			cfg:        valid(func(c *cef.Config) { c.ID = "" }),
			wantField:  "id",
			wantReason: "is required",
		},
		{
			name:       "whitespace id",
			cfg:        valid(func(c *cef.Config) { c.ID = " \t " }),
			wantField:  "id",
			wantReason: "is required",
		},
		{
			name:       "blank name",
			cfg:        valid(func(c *cef.Config) { c.Name = "   " }),
			wantField:  "name",
			wantReason: "is required",
		},
		{
			name:       "severity below range",
			cfg:        valid(func(c *cef.Config) { c.Severity = -1 }),
			wantField:  "severity",
			wantReason: "must be >= 0, got -1",
		},
		{
			name:       "severity above range",
			cfg:        valid(func(c *cef.Config) { c.Severity = 11 }),
			wantField:  "severity",
			wantReason: "must be <= 10, got 11",
		},
		{
			name: "version reported before everything else",
			cfg: valid(func(c *cef.Config) {
				c.Version = -3
				c.Device = nil
				c.ID = ""
				c.Severity = 42
			}),
			wantField:  "version",
			wantReason: "must be >= 0, got -3",
		},
		{
			name: "device reported before id and name",
			cfg: valid(func(c *cef.Config) {
				c.Device = nil
				c.ID = ""
				c.Name = ""
			}),
			wantField:  "device",
			wantReason: "is required",
		},
		{
			name: "name reported before severity",
			cfg: valid(func(c *cef.Config) {
				c.Name = ""
				c.Severity = 99
			}),
			wantField:  "name",
			wantReason: "is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			event, err := cef.New(tc.cfg)
			require.Error(t, err)
			assert.Nil(t, event)

			var ve *cef.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.wantField, ve.Field)
			assert.Equal(t, tc.wantReason, ve.Reason)
			assert.True(t, errors.Is(err, cef.ErrInvalidEvent))

			// Same input, same error.
			_, again := cef.New(tc.cfg)
			assert.Equal(t, err.Error(), again.Error())
		})
	}
}

func TestNew_SeverityRange(t *testing.T) {
	device := platformDevice(t)

	for severity := -5; severity <= 15; severity++ {
		t.Run(fmt.Sprintf("severity %d", severity), func(t *testing.T) {
			_, err := cef.New(cef.Config{Device: device, ID: "id", Name: "name", Severity: severity})
			if severity >= cef.MinSeverity && severity <= cef.MaxSeverity {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, cef.ErrInvalidEvent)
			}
		})
	}
}

func TestEvent_FormatIdentifier(t *testing.T) {
	device := platformDevice(t)

	for _, version := range []int{0, 1, 25} {
		event, err := cef.New(cef.Config{Version: version, Device: device, ID: "id", Name: "name"})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("CEF:%d", version), event.FormatIdentifier())
	}
}

func TestSeverityLevel(t *testing.T) {
	testCases := []struct {
		severity int
		expected string
	}{
		{-1, cef.LevelUnknown},
		{0, cef.LevelLow},
		{3, cef.LevelLow},
		{4, cef.LevelMedium},
		{6, cef.LevelMedium},
		{7, cef.LevelHigh},
		{8, cef.LevelHigh},
		{9, cef.LevelVeryHigh},
		{10, cef.LevelVeryHigh},
		{11, cef.LevelUnknown},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, cef.SeverityLevel(tc.severity), "severity %d", tc.severity)
	}
}

func TestNew_ConcurrentUse(t *testing.T) {
	device := platformDevice(t)
	ext := cef.NewExtensionBuilder().Add("src", "10.0.0.1").Add("msg", "a=b").Build()

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			event, err := cef.New(cef.Config{
				Device:    device,
				ID:        fmt.Sprintf("event_%d", i),
				Name:      "Concurrent",
				Severity:  i % 11,
				Extension: ext,
			})
			if err != nil {
				errs <- err
				return
			}
			line, err := cef.Compose(event)
			if err != nil {
				errs <- err
				return
			}
			want := fmt.Sprintf("CEF:0|iPlatform|USO|1|event_%d|Concurrent|%d|src=10.0.0.1 msg=a\\=b", i, i%11)
			if line != want {
				errs <- fmt.Errorf("got %q, want %q", line, want)
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
