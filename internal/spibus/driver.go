// internal/spibus/driver.go
package spibus

// Param identifies one of the four configurable bus parameters.
// Declaration order is the fixed query/apply order.
type Param uint8

const (
	ParamMode Param = iota
	ParamBitOrder
	ParamBitsPerWord
	ParamMaxSpeedHz
)

func (p Param) String() string {
	switch p {
	case ParamMode:
		return "mode"
	case ParamBitOrder:
		return "bit_order"
	case ParamBitsPerWord:
		return "bits_per_word"
	case ParamMaxSpeedHz:
		return "max_speed_hz"
	}
	return "unknown"
}

// params is the fixed parameter order for both reads and writes.
var params = [...]Param{ParamMode, ParamBitOrder, ParamBitsPerWord, ParamMaxSpeedHz}

// Opener opens a bus device by path.
type Opener interface {
	Open(path string) (Conn, error)
}

// Conn is an open bus device handle. ReadParam and WriteParam are the
// ioctl-style query/apply primitives; Read blocks until the device
// responds or the OS read returns an error or short count.
type Conn interface {
	ReadParam(p Param) (uint32, error)
	WriteParam(p Param, v uint32) error
	Read(buf []byte) (int, error)
	Close() error
}
