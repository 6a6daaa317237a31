package session

import "errors"

var (
	// ErrCommandFailed indicates Audacity reported the command as failed.
	ErrCommandFailed = errors.New("command failed")
	// ErrLocked indicates another harness process holds the session lock.
	ErrLocked = errors.New("another docimages run is already driving Audacity")
	// ErrNotSetUp indicates Execute was called before Setup.
	ErrNotSetUp = errors.New("session not set up")
)
