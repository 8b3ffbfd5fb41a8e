package esptool

import (
	"os/exec"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func newTestTool(t *testing.T, cfg Config, fn execFunc) *Tool {
	t.Helper()
	if cfg.Port == "" {
		cfg.Port = "/dev/ttyUSB0"
	}
	if cfg.RetryInterval == 0 {
		cfg.RetryInterval = time.Millisecond
	}
	tool, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if fn != nil {
		tool.execCmd = fn
	}
	return tool
}

func TestRunRetriesTransientFailures(t *testing.T) {
	calls := 0
	tool := newTestTool(t, Config{}, func(name string, args ...string) ([]byte, []byte, error) {
		calls++
		if calls < 3 {
			return nil, []byte("A fatal error occurred: Timeout waiting for packet header"), errors.New("exit status 2")
		}
		return []byte("Chip is ESP32-D0WDQ6"), nil, nil
	})

	out, err := tool.ChipID()
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 attempts, got %d", calls)
	}
	if out != "Chip is ESP32-D0WDQ6" {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestRunDoesNotRetryPermanentFailures(t *testing.T) {
	calls := 0
	tool := newTestTool(t, Config{}, func(name string, args ...string) ([]byte, []byte, error) {
		calls++
		return nil, []byte("A fatal error occurred: Invalid head of packet"), errors.New("exit status 2")
	})

	_, err := tool.ChipID()
	if err == nil {
		t.Fatal("expected an error")
	}
	if calls != 1 {
		t.Errorf("expected a single attempt, got %d", calls)
	}
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected *CommandError, got %T", err)
	}
	if cmdErr.Stderr == "" {
		t.Error("expected captured stderr in the error")
	}
}

func TestRunStopsAfterRetryBudget(t *testing.T) {
	calls := 0
	tool := newTestTool(t, Config{Retries: 2}, func(name string, args ...string) ([]byte, []byte, error) {
		calls++
		return nil, []byte("serial CONNECTION reset by device"), errors.New("exit status 2")
	})

	_, err := tool.ChipID()
	if err == nil {
		t.Fatal("expected an error")
	}
	// one initial attempt plus two retries
	if calls != 3 {
		t.Errorf("expected 3 attempts, got %d", calls)
	}
}

func TestRunDisabledRetries(t *testing.T) {
	calls := 0
	tool := newTestTool(t, Config{Retries: -1}, func(name string, args ...string) ([]byte, []byte, error) {
		calls++
		return nil, []byte("serial timeout"), errors.New("exit status 2")
	})

	if _, err := tool.ChipID(); err == nil {
		t.Fatal("expected an error")
	}
	if calls != 1 {
		t.Errorf("expected a single attempt, got %d", calls)
	}
}

func TestRunToolNotFound(t *testing.T) {
	calls := 0
	tool := newTestTool(t, Config{}, func(name string, args ...string) ([]byte, []byte, error) {
		calls++
		return nil, nil, &exec.Error{Name: name, Err: exec.ErrNotFound}
	})

	_, err := tool.ChipID()
	var notFound *ToolNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *ToolNotFoundError, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected a single attempt, got %d", calls)
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		stderr string
		want   bool
	}{
		{"A fatal error occurred: Timeout waiting for packet header", true},
		{"serial CONNECTION reset", true},
		{"Error: connection to the device was lost", true},
		// "connect" alone is not a match, only the full "connection"
		{"Failed to CONNECT to ESP8266: no answer", false},
		{"MD5 of file does not match data in flash", false},
		{"Invalid head of packet", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isTransient(tt.stderr); got != tt.want {
			t.Errorf("isTransient(%q) = %v, want %v", tt.stderr, got, tt.want)
		}
	}
}
