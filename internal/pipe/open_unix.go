//go:build !windows

package pipe

import "os"

// The command FIFO is opened read-write so the open never waits for a reader.
const writeFlags = os.O_RDWR | os.O_CREATE | os.O_TRUNC
