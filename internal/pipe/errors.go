package pipe

import "errors"

var (
	// ErrPeerUnavailable indicates a pipe endpoint does not exist, which
	// means Audacity is not running or mod-script-pipe is not enabled.
	ErrPeerUnavailable = errors.New("pipe endpoint does not exist. Ensure Audacity is running with mod-script-pipe")

	// ErrTimeout indicates a bounded wait for a response expired.
	ErrTimeout = errors.New("timed out waiting for response")

	// ErrPeerClosed indicates the read endpoint reached end of stream.
	ErrPeerClosed = errors.New("peer closed the response pipe")

	// ErrClosed indicates the transport was closed locally.
	ErrClosed = errors.New("transport closed")
)
