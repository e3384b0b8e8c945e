package player

import (
	"encoding/binary"
	"fmt"
	"math"
)

// SampleFormat is the native representation of one output sample. The engine
// only deals in normalized float32; conversion happens once per sample at the
// backend boundary.
type SampleFormat int

const (
	Float32 SampleFormat = iota
	Int16
	Uint8
)

// ParseSampleFormat maps a config value (f32, s16, u8) to a SampleFormat.
func ParseSampleFormat(s string) (SampleFormat, error) {
	switch s {
	case "f32", "":
		return Float32, nil
	case "s16":
		return Int16, nil
	case "u8":
		return Uint8, nil
	}
	return 0, fmt.Errorf("unknown sample format %q", s)
}

func (f SampleFormat) String() string {
	switch f {
	case Int16:
		return "s16"
	case Uint8:
		return "u8"
	default:
		return "f32"
	}
}

// Size returns the encoded size of one sample in bytes.
func (f SampleFormat) Size() int {
	switch f {
	case Int16:
		return 2
	case Uint8:
		return 1
	default:
		return 4
	}
}

// Put encodes v little-endian into dst, which must hold at least Size bytes.
func (f SampleFormat) Put(dst []byte, v float32) {
	switch f {
	case Int16:
		binary.LittleEndian.PutUint16(dst, uint16(toInt16(v)))
	case Uint8:
		dst[0] = toUint8(v)
	default:
		binary.LittleEndian.PutUint32(dst, math.Float32bits(v))
	}
}

func clamp(v float32) float32 {
	return max(-1, min(1, v))
}

func toInt16(v float32) int16 {
	return int16(clamp(v) * math.MaxInt16)
}

// toUint8 maps [-1, 1] onto [0, 255] with silence at 128.
func toUint8(v float32) uint8 {
	return uint8(math.Round(float64(clamp(v))*127.5 + 127.5))
}
