//go:build windows

package pipe

import "os"

const writeFlags = os.O_WRONLY
