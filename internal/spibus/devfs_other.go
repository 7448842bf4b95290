//go:build !linux

// internal/spibus/devfs_other.go
package spibus

import "errors"

// Devfs is only implemented on Linux, where the spidev kernel module
// exposes SPI buses as character devices.
type Devfs struct{}

func (Devfs) Open(path string) (Conn, error) {
	return nil, errors.New("spibus: devfs is not supported on this platform")
}
