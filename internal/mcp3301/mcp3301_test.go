// internal/mcp3301/mcp3301_test.go
package mcp3301

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		b0   byte
		b1   byte
		want int16
	}{
		{
			name: "zero",
			b0:   0x00,
			b1:   0x00,
			want: 0,
		},
		{
			name: "positive mid-scale",
			b0:   0x05,
			b1:   0xFF,
			want: 1535,
		},
		{
			name: "positive full-scale",
			b0:   0x0F,
			b1:   0xFF,
			want: 4095,
		},
		{
			name: "negative mid-scale",
			b0:   0x15,
			b1:   0x00,
			want: -2816,
		},
		{
			name: "negative one",
			b0:   0x1F,
			b1:   0xFF,
			want: -1,
		},
		{
			name: "negative full-scale",
			b0:   0x10,
			b1:   0x00,
			want: -4096,
		},
		{
			name: "upper bits of byte 0 ignored",
			b0:   0xE5,
			b1:   0xFF,
			want: 1535,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.b0, tt.b1))
		})
	}
}

func TestDecode_RangeAndPositiveIdentity(t *testing.T) {
	for b0 := 0; b0 < 0x20; b0++ {
		for b1 := 0; b1 < 0x100; b1++ {
			got := Decode(byte(b0), byte(b1))

			if got < -4096 || got > 4095 {
				t.Fatalf("Decode(%#02x, %#02x) = %d out of range", b0, b1, got)
			}

			// With the sign flag clear the reading is exactly the
			// 12-bit unsigned magnitude.
			if b0&signMask == 0 {
				magnitude := int16(b0&magnitudeMask)<<8 | int16(b1)
				if got != magnitude {
					t.Fatalf("Decode(%#02x, %#02x) = %d, want magnitude %d", b0, b1, got, magnitude)
				}
			}
		}
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("bus gone") }

func TestReadSingle(t *testing.T) {
	t.Run("full frame", func(t *testing.T) {
		r := bytes.NewReader([]byte{0x15, 0x00})
		assert.Equal(t, int16(-2816), ReadSingle(r))
	})

	t.Run("short read yields sentinel", func(t *testing.T) {
		r := bytes.NewReader([]byte{0x15})
		assert.Equal(t, Sentinel, ReadSingle(r))
	})

	t.Run("empty read yields sentinel", func(t *testing.T) {
		assert.Equal(t, Sentinel, ReadSingle(bytes.NewReader(nil)))
	})

	t.Run("read error yields sentinel", func(t *testing.T) {
		assert.Equal(t, Sentinel, ReadSingle(errReader{}))
	})
}

func TestSentinelOutsideDeviceRange(t *testing.T) {
	assert.Less(t, Sentinel, int16(-4096))
}
