package pipe

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"
)

const (
	windowsWritePath  = `\\.\pipe\ToSrvPipe`
	windowsReadPath   = `\\.\pipe\FromSrvPipe`
	windowsTerminator = "\r\n\x00"

	unixWritePrefix = "/tmp/audacity_script_pipe.to."
	unixReadPrefix  = "/tmp/audacity_script_pipe.from."
	unixTerminator  = "\n"
)

// Endpoints names the pair of pipes and the line terminator appended to
// every outgoing command.
type Endpoints struct {
	WritePath  string
	ReadPath   string
	Terminator string
}

// EndpointsFor returns the mod-script-pipe endpoints Audacity creates on the
// given platform for the given user id.
func EndpointsFor(goos string, uid int) Endpoints {
	if goos == "windows" {
		return Endpoints{
			WritePath:  windowsWritePath,
			ReadPath:   windowsReadPath,
			Terminator: windowsTerminator,
		}
	}
	id := strconv.Itoa(uid)
	return Endpoints{
		WritePath:  unixWritePrefix + id,
		ReadPath:   unixReadPrefix + id,
		Terminator: unixTerminator,
	}
}

// HostEndpoints returns the endpoints for the running process.
func HostEndpoints() Endpoints {
	return EndpointsFor(runtime.GOOS, os.Getuid())
}

// WithOverrides replaces the write and read paths with any non-empty values.
// The terminator is kept.
func (e Endpoints) WithOverrides(writePath, readPath string) Endpoints {
	if writePath != "" {
		e.WritePath = writePath
	}
	if readPath != "" {
		e.ReadPath = readPath
	}
	return e
}

// Check verifies both endpoints exist.
func (e Endpoints) Check() error {
	for _, path := range []string{e.WritePath, e.ReadPath} {
		if err := checkExists(path); err != nil {
			return err
		}
	}
	return nil
}

func checkExists(path string) error {
	if path == "" {
		return fmt.Errorf("empty endpoint path: %w", ErrPeerUnavailable)
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%q: %w", path, ErrPeerUnavailable)
		}
		return fmt.Errorf("stat %q: %w", path, err)
	}
	return nil
}
