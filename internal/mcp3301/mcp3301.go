// internal/mcp3301/mcp3301.go

// Package mcp3301 decodes conversions from the Microchip MCP3301
// 13-bit differential ADC. Each conversion arrives as a two-byte frame
// on the SPI bus: byte 0 carries the sign flag and the top four
// magnitude bits, byte 1 the low eight bits. Refer to the MCP3301
// datasheet for the frame layout.
package mcp3301

import "io"

// FrameSize is the number of bytes in one conversion frame.
const FrameSize = 2

// ---- FRAME LAYOUT (byte 0) ----

const (
	magnitudeMask = 0x0F // bits [3:0]: magnitude bits 11..8
	signMask      = 0x10 // bit 4: sign flag
	signOffset    = 4096 // two's-complement offset for the 13-bit range
)

// Sentinel is reported in place of a reading when the bus does not
// deliver a full frame. The bit pattern 0x8001 is not a producible
// MCP3301 output, so it cannot be confused with a real conversion.
const Sentinel = int16(-0x7FFF)

// Decode converts one conversion frame into a signed reading in
// [-4096, 4095]. No rounding, no saturation: the value is already
// bounded by the bit width.
func Decode(b0, b1 byte) int16 {
	raw := int16(b0&magnitudeMask)<<8 | int16(b1)
	if b0&signMask != 0 {
		return raw - signOffset
	}
	return raw
}

// ReadSingle reads one conversion frame from r and decodes it. One
// read call per frame: anything other than exactly FrameSize bytes
// yields Sentinel. A transient bus hiccup is not fatal to a running
// session.
func ReadSingle(r io.Reader) int16 {
	var frame [FrameSize]byte
	n, err := r.Read(frame[:])
	if err != nil || n != FrameSize {
		return Sentinel
	}
	return Decode(frame[0], frame[1])
}
