package blinkytape

import (
	"github.com/blinkinlabs/go-blinkytape/protocol"
	"github.com/blinkinlabs/go-blinkytape/serialport"
)

// Config holds the session configuration.
type Config struct {
	// LEDCount is the number of addressable pixels on the strip
	LEDCount int

	// Buffered selects the buffering mode. When true, pixel data accumulates
	// in memory until Show; when false, every pixel is written and drained
	// immediately (slower).
	Buffered bool

	// LegacyCapacityCheck restores the capacity comparison of the original
	// Python library, which only ever rejects strips configured to nine
	// pixels or fewer. See SendPixel.
	LegacyCapacityCheck bool

	// Logger is used for logging operations (optional)
	Logger Logger

	// Dialer opens the transport; defaults to the serialport package
	Dialer Dialer

	// Lister discovers candidate ports; defaults to the serialport package
	Lister Lister
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		LEDCount: protocol.DefaultLEDCount,
		Buffered: true,
		Dialer: func(port string, baudRate int) (Transport, error) {
			return serialport.Dial(port, baudRate)
		},
		Lister: serialport.List,
	}
}

// Option is a functional option for configuring a Tape session.
type Option func(*Config)

// WithLEDCount sets the number of addressable pixels.
// Default is protocol.DefaultLEDCount (60).
//
// Example:
//
//	tape, err := blinkytape.Open("", blinkytape.WithLEDCount(120))
func WithLEDCount(count int) Option {
	return func(c *Config) {
		if count > 0 {
			c.LEDCount = count
		}
	}
}

// WithBuffered enables or disables buffered mode. Default is true.
//
// Example:
//
//	tape, err := blinkytape.Open("/dev/ttyACM0", blinkytape.WithBuffered(false))
func WithBuffered(buffered bool) Option {
	return func(c *Config) {
		c.Buffered = buffered
	}
}

// WithLegacyCapacityCheck enables byte-compatibility with the capacity check
// of the original Python library. Default is false (the corrected check).
func WithLegacyCapacityCheck(legacy bool) Option {
	return func(c *Config) {
		c.LegacyCapacityCheck = legacy
	}
}

// WithLogger sets a logger for session operations.
//
// Example:
//
//	tape, err := blinkytape.Open("", blinkytape.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithDialer overrides how the transport is opened. Mostly useful for tests
// and non-serial transports.
func WithDialer(dialer Dialer) Option {
	return func(c *Config) {
		if dialer != nil {
			c.Dialer = dialer
		}
	}
}

// WithLister overrides how candidate ports are discovered.
func WithLister(lister Lister) Option {
	return func(c *Config) {
		if lister != nil {
			c.Lister = lister
		}
	}
}
