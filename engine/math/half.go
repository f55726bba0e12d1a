package math

import "github.com/x448/float16"

// HalfToFloat32 decodes an IEEE 754 binary16 bit pattern, subnormals,
// infinities and NaN included.
func HalfToFloat32(bits uint16) float32 {
	return float16.Frombits(bits).Float32()
}

// Float32ToHalf encodes f as the nearest binary16 bit pattern (round to
// nearest even).
func Float32ToHalf(f float32) uint16 {
	return float16.Fromfloat32(f).Bits()
}
