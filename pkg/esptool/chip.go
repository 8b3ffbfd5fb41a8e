package esptool

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Region describes a fixed address/size area of flash reserved for a
// firmware component.
type Region struct {
	Offset uint32
	Size   uint32
}

// Chip holds the per-family flashing parameters. The values mirror what
// esptool expects on its command line for each chip.
type Chip struct {
	Name      string
	FlashMode string
	FlashFreq string
	FlashSize string // default, can be overridden per session

	// Default addresses for multi-image writes.
	BootloaderAddr     uint32
	PartitionTableAddr uint32
	AppAddr            uint32
	SpiffsAddr         uint32

	// Named partition layout, only populated for chips with a fixed
	// well-known table (ESP32).
	Partitions map[string]Region
}

var (
	// ESP01 modules ship with 1MB of flash.
	ESP01 = Chip{
		Name:           "esp01",
		FlashMode:      "dio",
		FlashFreq:      "40m",
		FlashSize:      "1MB",
		BootloaderAddr: 0x00000,
		AppAddr:        0x10000,
		SpiffsAddr:     0x7b000,
	}

	ESP8266 = Chip{
		Name:           "esp8266",
		FlashMode:      "dout",
		FlashFreq:      "40m",
		FlashSize:      "4MB",
		BootloaderAddr: 0x00000,
		AppAddr:        0x10000,
		SpiffsAddr:     0x200000,
	}

	ESP32 = Chip{
		Name:               "esp32",
		FlashMode:          "dio",
		FlashFreq:          "40m",
		FlashSize:          "4MB",
		BootloaderAddr:     0x1000,
		PartitionTableAddr: 0x8000,
		AppAddr:            0x10000,
		SpiffsAddr:         0x200000,
		Partitions: map[string]Region{
			"bootloader":      {Offset: 0x1000, Size: 0x6000},
			"partition_table": {Offset: 0x8000, Size: 0x1000},
			"nvs":             {Offset: 0x9000, Size: 0x6000},
			"otadata":         {Offset: 0xd000, Size: 0x2000},
			"app":             {Offset: 0x10000, Size: 0x100000},
			"spiffs":          {Offset: 0x180000, Size: 0x200000},
		},
	}
)

var chips = map[string]Chip{
	"esp01":   ESP01,
	"esp8266": ESP8266,
	"esp32":   ESP32,
}

// ChipByName resolves a chip family by its name, case-insensitively.
func ChipByName(name string) (Chip, error) {
	c, ok := chips[strings.ToLower(name)]
	if !ok {
		return Chip{}, errors.Errorf("unknown chip %q: supported chips are esp01, esp8266, esp32", name)
	}
	return c, nil
}

var flashSizes = map[string]int64{
	"1MB":  0x100000,
	"2MB":  0x200000,
	"4MB":  0x400000,
	"8MB":  0x800000,
	"16MB": 0x1000000,
}

// FlashSizeBytes converts an esptool flash size string such as "4MB" to its
// capacity in bytes.
func FlashSizeBytes(size string) (int64, error) {
	n, ok := flashSizes[strings.ToUpper(size)]
	if !ok {
		return 0, errors.Errorf("unknown flash size %q: supported sizes are 1MB, 2MB, 4MB, 8MB, 16MB", size)
	}
	return n, nil
}

// Partition looks up a named partition in the chip's fixed layout.
func (c Chip) Partition(name string) (Region, error) {
	r, ok := c.Partitions[name]
	if !ok {
		return Region{}, &UnknownPartitionError{Chip: c.Name, Name: name, Known: c.PartitionNames()}
	}
	return r, nil
}

// PartitionNames returns the chip's known partition names, sorted.
func (c Chip) PartitionNames() []string {
	names := make([]string, 0, len(c.Partitions))
	for name := range c.Partitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
