package esptool

import (
	"strings"
	"testing"
)

func TestCapacityErrorMessage(t *testing.T) {
	err := &CapacityError{Path: "fw.bin", Address: 0x1000, Size: 0x500000, Capacity: 0x400000}
	msg := err.Error()
	for _, want := range []string{"fw.bin", "0x500000", "0x400000", "exceeds"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message should contain %q, got: %s", want, msg)
		}
	}

	bare := &CapacityError{Address: 0, Size: 0x200000, Capacity: 0x100000}
	if !strings.Contains(bare.Error(), "region") {
		t.Errorf("pathless message should describe the region, got: %s", bare.Error())
	}
}

func TestVerifyMismatchErrorMessage(t *testing.T) {
	err := &VerifyMismatchError{Path: "fw.bin", Offset: 0x42}
	msg := err.Error()
	if !strings.Contains(msg, "fw.bin") || !strings.Contains(msg, "0x42") {
		t.Errorf("error message should name the file and offset, got: %s", msg)
	}
}

func TestToolNotFoundErrorMessage(t *testing.T) {
	err := &ToolNotFoundError{Path: "esptool.py"}
	if !strings.Contains(err.Error(), "esptool.py") {
		t.Errorf("error message should name the executable, got: %s", err.Error())
	}
}

func TestUnknownPartitionErrorMessage(t *testing.T) {
	err := &UnknownPartitionError{Chip: "esp32", Name: "kernel", Known: []string{"app", "nvs"}}
	msg := err.Error()
	if !strings.Contains(msg, "kernel") || !strings.Contains(msg, "app, nvs") {
		t.Errorf("error message should name the partition and alternatives, got: %s", msg)
	}

	empty := &UnknownPartitionError{Chip: "esp8266", Name: "app"}
	if !strings.Contains(empty.Error(), "esp8266") {
		t.Errorf("error for a chip without a table should name the chip, got: %s", empty.Error())
	}
}
