package esptool

import (
	"fmt"
	"os"
	"regexp"
	"sort"

	"github.com/pkg/errors"
)

// ChipID queries the chip identification and returns esptool's output.
func (t *Tool) ChipID() (string, error) {
	return t.run("chip-id")
}

// FlashID queries the SPI flash manufacturer/device ID.
func (t *Tool) FlashID() (string, error) {
	return t.run("flash-id")
}

// ReadMAC queries the factory MAC address.
func (t *Tool) ReadMAC() (string, error) {
	return t.run("read-mac")
}

// EraseFlash erases the entire flash chip.
func (t *Tool) EraseFlash() error {
	_, err := t.run("erase-flash")
	return err
}

// ReadFlash reads size bytes starting at addr into outFile.
func (t *Tool) ReadFlash(addr, size int64, outFile string) error {
	return t.readFlash(addr, size, outFile, t.progress)
}

func (t *Tool) readFlash(addr, size int64, outFile string, progress bool) error {
	if err := t.checkBounds(addr, size, ""); err != nil {
		return err
	}
	var args []string
	if progress {
		args = append(args, "--progress")
	}
	args = append(args, "read-flash", hexAddr(addr), hexAddr(size), outFile)
	_, err := t.run(args...)
	return err
}

// WriteOptions carries the optional write-flash behaviors.
type WriteOptions struct {
	Verify   bool // ask esptool to verify after writing
	EraseAll bool // erase the whole chip before writing
}

// WriteFlash writes the firmware image at path to flash at addr. The file
// must exist and fit within the declared capacity; both are checked before
// esptool is invoked.
func (t *Tool) WriteFlash(path string, addr int64, opts WriteOptions) error {
	fi, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "firmware file %s", path)
	}
	if err := t.checkBounds(addr, fi.Size(), path); err != nil {
		return err
	}

	args := t.progressArgs()
	args = append(args, "write-flash")
	args = append(args, t.flashParams()...)
	if opts.Verify {
		args = append(args, "--verify")
	}
	if opts.EraseAll {
		args = append(args, "--erase-all")
	}
	args = append(args, hexAddr(addr), path)

	_, err = t.run(args...)
	return err
}

// Image pairs a firmware file with its flash address for multi-image
// writes.
type Image struct {
	Addr int64
	Path string
}

// WriteRegions writes several images in a single esptool invocation,
// ordered by address. Every file is validated before anything is written;
// a failure mid-write is not resumable and the whole write must be
// restarted.
func (t *Tool) WriteRegions(images []Image) error {
	if len(images) == 0 {
		return errors.New("no firmware images to write")
	}
	for _, img := range images {
		fi, err := os.Stat(img.Path)
		if err != nil {
			return errors.Wrapf(err, "firmware file %s", img.Path)
		}
		if err := t.checkBounds(img.Addr, fi.Size(), img.Path); err != nil {
			return err
		}
	}

	sorted := make([]Image, len(images))
	copy(sorted, images)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Addr < sorted[j].Addr })

	args := t.progressArgs()
	args = append(args, "write-flash")
	args = append(args, t.flashParams()...)
	for _, img := range sorted {
		args = append(args, hexAddr(img.Addr), img.Path)
	}

	_, err := t.run(args...)
	return err
}

// ReadPartition reads one of the chip's fixed named partitions into
// outFile.
func (t *Tool) ReadPartition(name, outFile string) error {
	region, err := t.chip.Partition(name)
	if err != nil {
		return err
	}
	return t.ReadFlash(int64(region.Offset), int64(region.Size), outFile)
}

var detectedSizeRe = regexp.MustCompile(`(?i)detected flash size:\s*(?P<size>\S+)`)

// DetectFlashSize runs flash-id and extracts the flash size esptool
// detected on the connected chip.
func (t *Tool) DetectFlashSize() (string, error) {
	out, err := t.run("flash-id")
	if err != nil {
		return "", err
	}
	m := findNamedSubmatches(detectedSizeRe, out)
	if m == nil {
		return "", errors.New("flash size not reported by esptool")
	}
	return m["size"], nil
}

// flashParams is the mode/frequency/size triple esptool needs for writes.
func (t *Tool) flashParams() []string {
	return []string{
		"--flash-mode", t.chip.FlashMode,
		"--flash-freq", t.chip.FlashFreq,
		"--flash-size", t.flashSize,
	}
}

// hexAddr renders an address or size the way the esptool command line
// expects it.
func hexAddr(v int64) string {
	return fmt.Sprintf("%08x", v)
}

// findNamedSubmatches returns a map from capture group name to matched
// text, or nil if the expression does not match.
func findNamedSubmatches(r *regexp.Regexp, s string) map[string]string {
	matches := r.FindStringSubmatch(s)
	if matches == nil {
		return nil
	}
	result := make(map[string]string)
	for i, name := range r.SubexpNames()[1:] {
		result[name] = matches[i+1]
	}
	return result
}
