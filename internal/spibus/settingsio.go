// internal/spibus/settingsio.go
package spibus

import "fmt"

// ParamError reports which of the four bus parameters a settings read
// or write failed on, with the underlying cause.
type ParamError struct {
	Param Param
	Write bool
	Err   error
}

func (e *ParamError) Error() string {
	op := "read"
	if e.Write {
		op = "write"
	}
	return fmt.Sprintf("spibus: could not %s %s: %v", op, e.Param, e.Err)
}

func (e *ParamError) Unwrap() error { return e.Err }

// ReadSettings queries all four bus parameters in fixed order
// (mode, bit order, word size, clock rate).
// All-or-nothing: the first failing query aborts and no partial
// settings are returned.
func ReadSettings(c Conn) (Settings, error) {
	var s Settings
	for _, p := range params {
		v, err := c.ReadParam(p)
		if err != nil {
			return Settings{}, &ParamError{Param: p, Err: err}
		}
		switch p {
		case ParamMode:
			s.Mode = Mode(v)
		case ParamBitOrder:
			s.BitOrder = BitOrder(v)
		case ParamBitsPerWord:
			s.BitsPerWord = uint8(v)
		case ParamMaxSpeedHz:
			s.MaxSpeedHz = v
		}
	}
	return s, nil
}

// WriteSettings applies all four bus parameters in the same fixed order
// as ReadSettings. The first failing write aborts. Writes that already
// succeeded stay applied, so a non-nil error means the device may be
// left partially configured; callers escalate, they do not retry.
func WriteSettings(c Conn, s Settings) error {
	for _, p := range params {
		var v uint32
		switch p {
		case ParamMode:
			v = uint32(s.Mode)
		case ParamBitOrder:
			v = uint32(s.BitOrder)
		case ParamBitsPerWord:
			v = uint32(s.BitsPerWord)
		case ParamMaxSpeedHz:
			v = s.MaxSpeedHz
		}
		if err := c.WriteParam(p, v); err != nil {
			return &ParamError{Param: p, Write: true, Err: err}
		}
	}
	return nil
}
