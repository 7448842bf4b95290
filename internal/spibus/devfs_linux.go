//go:build linux

// internal/spibus/devfs_linux.go
package spibus

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// spidev ioctl requests, from <linux/spi/spidev.h>.
const (
	spiIOCRdMode        = 0x80016B01
	spiIOCWrMode        = 0x40016B01
	spiIOCRdLSBFirst    = 0x80016B02
	spiIOCWrLSBFirst    = 0x40016B02
	spiIOCRdBitsPerWord = 0x80016B03
	spiIOCWrBitsPerWord = 0x40016B03
	spiIOCRdMaxSpeedHz  = 0x80046B04
	spiIOCWrMaxSpeedHz  = 0x40046B04
)

// Devfs opens SPI devices through the Linux spidev module. Device
// paths are usually in the /dev/spidev<bus>.<chip> format. The spidev
// kernel module must be loaded.
type Devfs struct{}

func (Devfs) Open(path string) (Conn, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	return &devfsConn{f: f}, nil
}

type devfsConn struct {
	f *os.File
}

func (c *devfsConn) ReadParam(p Param) (uint32, error) {
	// The clock rate is a 32-bit parameter; the other three are 8-bit.
	if p == ParamMaxSpeedHz {
		var v uint32
		if err := c.ioctl(spiIOCRdMaxSpeedHz, unsafe.Pointer(&v)); err != nil {
			return 0, err
		}
		return v, nil
	}
	var v uint8
	if err := c.ioctl(rdRequest(p), unsafe.Pointer(&v)); err != nil {
		return 0, err
	}
	return uint32(v), nil
}

func (c *devfsConn) WriteParam(p Param, v uint32) error {
	if p == ParamMaxSpeedHz {
		return c.ioctl(spiIOCWrMaxSpeedHz, unsafe.Pointer(&v))
	}
	b := uint8(v)
	return c.ioctl(wrRequest(p), unsafe.Pointer(&b))
}

func (c *devfsConn) Read(p []byte) (int, error) { return c.f.Read(p) }

func (c *devfsConn) Close() error { return c.f.Close() }

func rdRequest(p Param) uintptr {
	switch p {
	case ParamBitOrder:
		return spiIOCRdLSBFirst
	case ParamBitsPerWord:
		return spiIOCRdBitsPerWord
	default:
		return spiIOCRdMode
	}
}

func wrRequest(p Param) uintptr {
	switch p {
	case ParamBitOrder:
		return spiIOCWrLSBFirst
	case ParamBitsPerWord:
		return spiIOCWrBitsPerWord
	default:
		return spiIOCWrMode
	}
}

func (c *devfsConn) ioctl(req uintptr, arg unsafe.Pointer) error {
	if _, _, errno := unix.Syscall(
		unix.SYS_IOCTL, c.f.Fd(), req, uintptr(arg),
	); errno != 0 {
		return errno
	}
	return nil
}
