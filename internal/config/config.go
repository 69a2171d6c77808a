// Package config loads cefgen configuration from defaults, an optional YAML
// file and CEF_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/telhawk-systems/telhawk-cef/pkg/cef"
)

// MaxSampleCount bounds the number of generated events per run.
const MaxSampleCount = 100000

type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	CEF     CEFConfig     `mapstructure:"cef"`
	Sample  SampleConfig  `mapstructure:"sample"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CEFConfig holds defaults applied to events that leave a field out.
type CEFConfig struct {
	Version int          `mapstructure:"version"`
	Device  DeviceConfig `mapstructure:"device"`
}

type DeviceConfig struct {
	Vendor  string `mapstructure:"vendor"`
	Product string `mapstructure:"product"`
	Version string `mapstructure:"version"`
}

type SampleConfig struct {
	Count int   `mapstructure:"count"`
	Seed  int64 `mapstructure:"seed"`
}

type MetricsConfig struct {
	// Textfile is the path of a node_exporter textfile written after each
	// run. Empty disables it.
	Textfile string `mapstructure:"textfile"`
}

// Device validates the configured default device.
func (d DeviceConfig) Device() (cef.Device, error) {
	device, err := cef.NewDevice(d.Vendor, d.Product, d.Version)
	if err != nil {
		return cef.Device{}, fmt.Errorf("cef.device: %w", err)
	}
	return device, nil
}

// Load reads configuration. With an empty configPath it looks for
// cefgen.yaml in the working directory and /etc/telhawk/cef; a missing file
// is not an error in that case.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("cefgen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/telhawk/cef")
	}

	// Environment variables override (CEF_LOGGING_LEVEL, CEF_CEF_DEVICE_VENDOR, etc.)
	v.SetEnvPrefix("CEF")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found; use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	// Defaults always decode.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Validate checks values that cannot be expressed as defaults.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("logging.format must be json or text, got %q", c.Logging.Format)
	}
	if c.CEF.Version < 0 {
		return fmt.Errorf("cef.version must be >= 0, got %d", c.CEF.Version)
	}
	if c.Sample.Count < 1 || c.Sample.Count > MaxSampleCount {
		return fmt.Errorf("sample.count must be between 1 and %d, got %d", MaxSampleCount, c.Sample.Count)
	}
	if _, err := c.CEF.Device.Device(); err != nil {
		return err
	}
	return nil
}

// setDefaults sets all default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("cef.version", 0)
	v.SetDefault("cef.device.vendor", "TelHawk")
	v.SetDefault("cef.device.product", "cefgen")
	v.SetDefault("cef.device.version", "0.1.0")

	v.SetDefault("sample.count", 10)
	v.SetDefault("sample.seed", 0)

	v.SetDefault("metrics.textfile", "")
}
