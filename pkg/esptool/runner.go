package esptool

import (
	"bytes"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// execFunc runs an external command and returns its captured stdout and
// stderr. Tests substitute this to exercise the runner without a device.
type execFunc func(name string, args ...string) (stdout, stderr []byte, err error)

func runExecCmd(name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// baseArgs is the session preamble shared by every esptool invocation.
func (t *Tool) baseArgs() []string {
	args := []string{"--port", t.port, "--baud", strconv.Itoa(t.baud)}
	return append(args, t.extraArgs...)
}

// progressArgs holds the esptool progress flag for the long-running
// read/write subcommands.
func (t *Tool) progressArgs() []string {
	if t.progress {
		return []string{"--progress"}
	}
	return nil
}

// run executes one esptool subcommand, retrying when the captured error
// text looks like a transient serial failure (a "timeout" or "connection"
// message) and the retry budget allows. Everything else is terminal.
func (t *Tool) run(args ...string) (string, error) {
	argv := append(t.baseArgs(), args...)

	for attempt := 0; ; attempt++ {
		logrus.Debugf("running %s %s", t.path, strings.Join(argv, " "))

		stdout, stderr, err := t.execCmd(t.path, argv...)
		if err == nil {
			return string(stdout), nil
		}
		if errors.Is(err, exec.ErrNotFound) {
			return "", &ToolNotFoundError{Path: t.path}
		}

		if attempt < t.retries && isTransient(string(stderr)) {
			logrus.Warnf("transient esptool failure, retrying (%d/%d): %s",
				attempt+1, t.retries, firstLine(stderr))
			time.Sleep(t.retryInterval)
			continue
		}

		return "", &CommandError{Args: argv, Stderr: string(stderr), Err: err}
	}
}

// isTransient matches the two error signatures worth retrying: serial
// timeouts and failures to establish the bootloader connection.
func isTransient(stderr string) bool {
	s := strings.ToLower(stderr)
	return strings.Contains(s, "timeout") || strings.Contains(s, "connection")
}

func firstLine(b []byte) string {
	s := strings.TrimSpace(string(b))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}

// Version reports the version string of the esptool executable at path.
// Unlike the session commands it needs no serial port.
func Version(path string) (string, error) {
	if path == "" {
		path = DefaultPath
	}
	stdout, _, err := runExecCmd(path, "version")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", &ToolNotFoundError{Path: path}
		}
		return "", errors.Wrap(err, "esptool version")
	}
	return strings.TrimSpace(string(stdout)), nil
}
