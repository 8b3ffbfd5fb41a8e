package esptool

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Verify reads back as many bytes as the source image holds, starting at
// addr, and compares them byte for byte. The read-back goes through a
// temporary file which is removed on every exit path.
func (t *Tool) Verify(path string, addr int64) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "firmware file %s", path)
	}

	tmp, err := os.CreateTemp("", "espflash-verify-*.bin")
	if err != nil {
		return errors.Wrap(err, "creating verification file")
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	// The read-back is always quiet, whatever the session progress setting.
	logrus.Debugf("reading back 0x%x bytes at 0x%08x for verification", len(src), addr)
	if err := t.readFlash(addr, int64(len(src)), tmpPath, false); err != nil {
		return err
	}

	back, err := os.ReadFile(tmpPath)
	if err != nil {
		return errors.Wrap(err, "reading verification file")
	}

	if off := firstDiff(src, back); off >= 0 {
		return &VerifyMismatchError{Path: path, Offset: off}
	}
	return nil
}

// firstDiff returns the offset of the first differing byte, or -1 when the
// slices are identical. A length difference counts as a difference at the
// end of the shorter slice.
func firstDiff(a, b []byte) int64 {
	if bytes.Equal(a, b) {
		return -1
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return int64(i)
		}
	}
	return int64(n)
}
