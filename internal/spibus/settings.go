// internal/spibus/settings.go
package spibus

import "fmt"

// Mode is the SPI mode number. Clock polarity (CPOL) is the high order
// bit, clock phase (CPHA) is the low order bit.
type Mode uint8

const (
	Mode0 = Mode(0)
	Mode1 = Mode(1)
	Mode2 = Mode(2)
	Mode3 = Mode(3)
)

// BitOrder is the bit justification of words on the wire.
type BitOrder uint8

const (
	MSBFirst = BitOrder(0)
	LSBFirst = BitOrder(1)
)

func (o BitOrder) String() string {
	if o == LSBFirst {
		return "lsb-first"
	}
	return "msb-first"
}

// Settings is the minimal group of parameters required to configure an
// SPI bus. The four fields are queried and applied as a unit; partial
// application is surfaced as an error, never ignored.
type Settings struct {
	Mode        Mode
	BitOrder    BitOrder
	BitsPerWord uint8
	MaxSpeedHz  uint32
}

func (s Settings) String() string {
	return fmt.Sprintf(
		"mode=%d bit_order=%s bits_per_word=%d max_speed_hz=%d",
		s.Mode, s.BitOrder, s.BitsPerWord, s.MaxSpeedHz,
	)
}
