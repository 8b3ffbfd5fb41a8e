// Package esptool drives the external esptool utility to flash, read and
// verify firmware on ESP01, ESP8266 and ESP32 chips. The serial bootloader
// protocol, flash identification and checksumming all live inside esptool;
// this package builds its command lines, runs it and interprets success or
// failure.
package esptool

import (
	"time"

	"github.com/pkg/errors"
)

const (
	// DefaultBaud is the serial speed used when none is configured.
	DefaultBaud = 115200

	// DefaultPath is the esptool executable looked up on PATH.
	DefaultPath = "esptool.py"

	defaultRetries       = 3
	defaultRetryInterval = 2 * time.Second
)

// Config specifies a flashing session: which serial port and chip to talk
// to, where to find esptool and how persistent to be about transient serial
// failures.
type Config struct {
	Port string // serial port, e.g. COM3 or /dev/ttyUSB0
	Baud int    // defaults to DefaultBaud
	Chip Chip   // defaults to ESP32

	// FlashSize overrides the chip's default flash size ("1MB".."16MB").
	FlashSize string

	// Path to the esptool executable, defaults to DefaultPath.
	Path string

	// ExtraArgs are passed verbatim to every esptool invocation, before
	// the subcommand.
	ExtraArgs []string

	// Retries is the retry budget for transient serial failures. Zero
	// means the default of 3; a negative value disables retrying.
	Retries int

	// RetryInterval is the pause between retries, defaults to 2s.
	RetryInterval time.Duration

	// NoProgress disables esptool progress reporting during flash
	// reads and writes.
	NoProgress bool
}

// Tool is an esptool session bound to one serial port and chip profile.
// All operations are synchronous and run one external process at a time.
type Tool struct {
	port      string
	baud      int
	chip      Chip
	flashSize string
	capacity  int64
	path      string
	extraArgs []string

	retries       int
	retryInterval time.Duration
	progress      bool

	execCmd execFunc // swappable for tests
}

// New validates the configuration and returns a session ready to run
// esptool commands. It does not touch the device.
func New(cfg Config) (*Tool, error) {
	if cfg.Port == "" {
		return nil, errors.New("serial port is required")
	}

	t := &Tool{
		port:          cfg.Port,
		baud:          cfg.Baud,
		chip:          cfg.Chip,
		flashSize:     cfg.FlashSize,
		path:          cfg.Path,
		extraArgs:     cfg.ExtraArgs,
		retries:       cfg.Retries,
		retryInterval: cfg.RetryInterval,
		progress:      !cfg.NoProgress,
		execCmd:       runExecCmd,
	}
	if t.baud == 0 {
		t.baud = DefaultBaud
	}
	if t.chip.Name == "" {
		t.chip = ESP32
	}
	if t.flashSize == "" {
		t.flashSize = t.chip.FlashSize
	}
	if t.path == "" {
		t.path = DefaultPath
	}
	if t.retries == 0 {
		t.retries = defaultRetries
	} else if t.retries < 0 {
		t.retries = 0
	}
	if t.retryInterval == 0 {
		t.retryInterval = defaultRetryInterval
	}

	capacity, err := FlashSizeBytes(t.flashSize)
	if err != nil {
		return nil, err
	}
	t.capacity = capacity

	return t, nil
}

// Chip returns the session's chip profile.
func (t *Tool) Chip() Chip { return t.chip }

// Capacity returns the declared flash capacity in bytes.
func (t *Tool) Capacity() int64 { return t.capacity }

// checkBounds enforces the one invariant of this package: a flash region
// must fit within the declared capacity.
func (t *Tool) checkBounds(addr, size int64, path string) error {
	if addr < 0 || size < 0 || addr+size > t.capacity {
		return &CapacityError{Path: path, Address: addr, Size: size, Capacity: t.capacity}
	}
	return nil
}
