//go:build unix

package preflight

import "golang.org/x/sys/unix"

func readAccess(path string) error {
	return unix.Access(path, unix.R_OK)
}

func readWriteAccess(path string) error {
	return unix.Access(path, unix.R_OK|unix.W_OK)
}

func dirAccess(path string) error {
	return unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK)
}
