// Package config loads the driver's runtime configuration: the USB
// VID/PID pair, the four bulk endpoint addresses, the bulk transfer chunk
// size, the default request deadline, and the log level (spec.md via its
// expansion's Configuration section). Loading follows a YAML file
// (gopkg.in/yaml.v3) overridden by environment variables loaded with
// github.com/joho/godotenv, the way orbas1-Synnergy loads its node
// configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/gousb"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/go-bnr/bnr/transport"
)

// Valid ranges for the fields Valid checks. RequestDeadline has no upper
// bound beyond being positive: a bench rig or simulator may legitimately
// need a much longer read deadline than a production unit.
const (
	RequestDeadlineMin = 100 * time.Millisecond
)

// Config carries every value the rest of the driver used to hardcode as a
// package constant, so a deployment can retarget the whole stack --
// production hardware, a bench rig, or a simulator exposing the same
// four-endpoint shape under different addresses -- without a rebuild.
type Config struct {
	// VendorID/ProductID default to the BNR's own values
	// (transport.DefaultVendorID/DefaultProductID); overridable for bench
	// rigs and simulators that enumerate under a different pair.
	VendorID  uint16 `yaml:"vendor_id"`
	ProductID uint16 `yaml:"product_id"`

	// CallEndpoint/ResponseEndpoint/CallbackCallEndpoint/
	// CallbackResponseEndpoint feed directly into transport.Config's
	// like-named fields; zero keeps that package's own protocol defaults
	// (OUT#2/IN#1/IN#3/OUT#4).
	CallEndpoint             int `yaml:"call_endpoint"`
	ResponseEndpoint         int `yaml:"response_endpoint"`
	CallbackCallEndpoint     int `yaml:"callback_call_endpoint"`
	CallbackResponseEndpoint int `yaml:"callback_response_endpoint"`

	// ChunkSize documents the bulk transfer chunk size a deployment
	// expects the device to use. It is validation-only: transport.ChunkSize
	// is the protocol's own fixed framing unit (spec.md §4.4's
	// short-read-terminates-the-frame rule depends on both ends agreeing
	// on it), so this field is never fed back into transport -- Valid
	// instead rejects a config that disagrees with the wire constant,
	// catching a stale or miscopied deployment file before it causes a
	// silent framing mismatch.
	ChunkSize int `yaml:"chunk_size"`

	// RequestDeadline feeds control.Controller.Deadline; zero keeps
	// transport.DefaultDeadline.
	RequestDeadline time.Duration `yaml:"request_deadline"`

	// LogLevel names a logrus level (spec.md's ambient logging stack);
	// zero value defaults to "info".
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with every field at the value the rest of
// the driver already assumes when left unconfigured.
func DefaultConfig() Config {
	return Config{
		VendorID:        uint16(transport.DefaultVendorID),
		ProductID:       uint16(transport.DefaultProductID),
		ChunkSize:       transport.ChunkSize,
		RequestDeadline: transport.DefaultDeadline,
		LogLevel:        "info",
	}
}

// Valid applies the default to each unset field in place and range-checks
// the rest, following the same in-place-default-then-validate shape the
// teacher's IEC 60870-5-104 Config.Valid uses.
func (c *Config) Valid() error {
	if c == nil {
		return errors.New("config: invalid pointer")
	}

	if c.VendorID == 0 {
		c.VendorID = uint16(transport.DefaultVendorID)
	}
	if c.ProductID == 0 {
		c.ProductID = uint16(transport.DefaultProductID)
	}

	for _, ep := range []struct {
		name string
		v    int
	}{
		{"CallEndpoint", c.CallEndpoint},
		{"ResponseEndpoint", c.ResponseEndpoint},
		{"CallbackCallEndpoint", c.CallbackCallEndpoint},
		{"CallbackResponseEndpoint", c.CallbackResponseEndpoint},
	} {
		if ep.v < 0 || ep.v > 0xff {
			return fmt.Errorf("config: %s %d not a valid USB endpoint address", ep.name, ep.v)
		}
	}

	if c.ChunkSize == 0 {
		c.ChunkSize = transport.ChunkSize
	} else if c.ChunkSize != transport.ChunkSize {
		return fmt.Errorf("config: ChunkSize %d does not match the protocol's fixed framing unit %d", c.ChunkSize, transport.ChunkSize)
	}

	if c.RequestDeadline == 0 {
		c.RequestDeadline = transport.DefaultDeadline
	} else if c.RequestDeadline < RequestDeadlineMin {
		return fmt.Errorf("config: RequestDeadline %s below minimum %s", c.RequestDeadline, RequestDeadlineMin)
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	return nil
}

// Transport projects the USB and endpoint fields into a transport.Config.
func (c Config) Transport() transport.Config {
	return transport.Config{
		VendorID:                 gousb.ID(c.VendorID),
		ProductID:                gousb.ID(c.ProductID),
		CallEndpoint:             c.CallEndpoint,
		ResponseEndpoint:         c.ResponseEndpoint,
		CallbackCallEndpoint:     c.CallbackCallEndpoint,
		CallbackResponseEndpoint: c.CallbackResponseEndpoint,
	}
}

// Load reads a YAML config file at path, then applies any matching
// BNR_-prefixed environment variables on top -- first from a .env file at
// envPath if present (godotenv.Load tolerates a missing file by returning
// an error this function ignores, matching orbas1-Synnergy's own loading
// convention), then from the process environment, which always wins.
func Load(path, envPath string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	_ = godotenv.Load(envPath)
	applyEnv(&cfg)

	if err := cfg.Valid(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("BNR_VENDOR_ID"); ok {
		if n, err := strconv.ParseUint(v, 0, 16); err == nil {
			cfg.VendorID = uint16(n)
		}
	}
	if v, ok := os.LookupEnv("BNR_PRODUCT_ID"); ok {
		if n, err := strconv.ParseUint(v, 0, 16); err == nil {
			cfg.ProductID = uint16(n)
		}
	}
	if v, ok := os.LookupEnv("BNR_CALL_ENDPOINT"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.CallEndpoint = n
		}
	}
	if v, ok := os.LookupEnv("BNR_RESPONSE_ENDPOINT"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ResponseEndpoint = n
		}
	}
	if v, ok := os.LookupEnv("BNR_CALLBACK_CALL_ENDPOINT"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.CallbackCallEndpoint = n
		}
	}
	if v, ok := os.LookupEnv("BNR_CALLBACK_RESPONSE_ENDPOINT"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.CallbackResponseEndpoint = n
		}
	}
	if v, ok := os.LookupEnv("BNR_REQUEST_DEADLINE"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestDeadline = d
		}
	}
	if v, ok := os.LookupEnv("BNR_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
}
