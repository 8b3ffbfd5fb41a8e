package esptool

import (
	"strings"
	"testing"
)

func TestNewRequiresPort(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected an error when no port is configured")
	}
}

func TestNewDefaults(t *testing.T) {
	tool, err := New(Config{Port: "COM3"})
	if err != nil {
		t.Fatal(err)
	}
	if tool.baud != DefaultBaud {
		t.Errorf("baud = %d, want %d", tool.baud, DefaultBaud)
	}
	if tool.path != DefaultPath {
		t.Errorf("path = %q, want %q", tool.path, DefaultPath)
	}
	if tool.chip.Name != "esp32" {
		t.Errorf("chip = %q, want esp32", tool.chip.Name)
	}
	if tool.flashSize != "4MB" || tool.capacity != 0x400000 {
		t.Errorf("flash size = %q (0x%x)", tool.flashSize, tool.capacity)
	}
	if tool.retries != defaultRetries {
		t.Errorf("retries = %d, want %d", tool.retries, defaultRetries)
	}
	if !tool.progress {
		t.Error("progress should be enabled by default")
	}
}

func TestNewFlashSizeOverride(t *testing.T) {
	tool, err := New(Config{Port: "COM3", Chip: ESP8266, FlashSize: "16MB"})
	if err != nil {
		t.Fatal(err)
	}
	if tool.Capacity() != 0x1000000 {
		t.Errorf("capacity = 0x%x, want 0x1000000", tool.Capacity())
	}
}

func TestNewRejectsBadFlashSize(t *testing.T) {
	_, err := New(Config{Port: "COM3", FlashSize: "3MB"})
	if err == nil {
		t.Fatal("expected an error for an unsupported flash size")
	}
	if !strings.Contains(err.Error(), "3MB") {
		t.Errorf("error should name the rejected size, got %v", err)
	}
}

func TestCheckBounds(t *testing.T) {
	tool, err := New(Config{Port: "COM3", FlashSize: "1MB"})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		addr    int64
		size    int64
		wantErr bool
	}{
		{"whole flash", 0, 0x100000, false},
		{"interior region", 0x1000, 0x6000, false},
		{"one byte over", 0, 0x100001, true},
		{"tail overflow", 0x100000 - 8, 64, true},
		{"negative address", -1, 16, true},
		{"negative size", 0, -16, true},
	}
	for _, tt := range tests {
		err := tool.checkBounds(tt.addr, tt.size, "")
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: checkBounds(0x%x, 0x%x) = %v, wantErr %v",
				tt.name, tt.addr, tt.size, err, tt.wantErr)
		}
	}
}
