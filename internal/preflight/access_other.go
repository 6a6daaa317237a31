//go:build !unix

package preflight

import "os"

// Without access(2), readability is probed by opening the path. Named pipes
// are not opened since that would claim the connection.
func readAccess(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	return f.Close()
}

func readWriteAccess(string) error {
	return nil
}

func dirAccess(path string) error {
	f, err := os.CreateTemp(path, ".docimages-check-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}
