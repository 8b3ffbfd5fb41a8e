package esptool

import (
	"fmt"
	"strings"
)

// ToolNotFoundError indicates that the esptool executable could not be found.
type ToolNotFoundError struct {
	Path string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("esptool not found at %q: install it with \"pip install esptool\" or pass --esptool", e.Path)
}

// CommandError indicates that an esptool invocation exited with a failure
// after the retry budget was exhausted.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("esptool %s failed: %v", strings.Join(e.Args, " "), e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }

// CapacityError indicates that a requested flash region does not fit in the
// declared flash capacity.
type CapacityError struct {
	Path     string // source file, if the region comes from one
	Address  int64
	Size     int64
	Capacity int64
}

func (e *CapacityError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s (0x%x bytes at 0x%08x) exceeds flash capacity of 0x%x bytes",
			e.Path, e.Size, e.Address, e.Capacity)
	}
	return fmt.Sprintf("region 0x%x bytes at 0x%08x exceeds flash capacity of 0x%x bytes",
		e.Size, e.Address, e.Capacity)
}

// VerifyMismatchError indicates that the flash contents read back do not
// match the source firmware image.
type VerifyMismatchError struct {
	Path   string
	Offset int64
}

func (e *VerifyMismatchError) Error() string {
	return fmt.Sprintf("flash contents do not match %s: first difference at offset 0x%x", e.Path, e.Offset)
}

// UnknownPartitionError indicates a partition name outside the chip's fixed
// layout.
type UnknownPartitionError struct {
	Chip  string
	Name  string
	Known []string
}

func (e *UnknownPartitionError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("chip %s has no fixed partition table", e.Chip)
	}
	return fmt.Sprintf("unknown partition %q: available partitions are %s",
		e.Name, strings.Join(e.Known, ", "))
}
