// Package binary32 decomposes single precision IEEE-754 floating point
// numbers into their sign, exponent and mantissa bit fields and decodes
// each field into its real-number contribution.
//
// The binary32 layout is specified in IEEE 754-2019 and summarized at
// https://en.wikipedia.org/wiki/Single-precision_floating-point_format:
// bit 31 is the sign, bits 30-23 the biased exponent, bits 22-0 the
// mantissa (the significand without its implicit leading 1).
//
// The decoder applies the biased-exponent formula 2^(field-127)
// uniformly to all 256 exponent field values. Exponent fields 0
// (zero/subnormal) and 255 (infinity/NaN) are deliberately not
// special-cased, so values in those ranges do not decode to their
// IEEE-754 meaning. Extraction and recomposition remain total over the
// full 32-bit pattern space.
package binary32

import (
	"math"
)

const (
	// Bias is subtracted from the stored exponent field to obtain the
	// true signed exponent.
	Bias = 127
	// Radix is the base of the exponent term for binary formats.
	Radix = 2

	mantissaBits = 23
	exponentBits = 8

	exponentMask = 1<<exponentBits - 1
	mantissaMask = 1<<mantissaBits - 1
)

// Fields holds the three raw bit fields of a binary32 value.
type Fields struct {
	Sign     uint32 // bit 31: 0 or 1
	Exponent uint32 // bits 30-23: biased exponent in [0,255]
	Mantissa uint32 // bits 22-0: fraction in [0,2^23-1]
}

// Extract reinterprets f as its raw bit pattern and splits it into
// sign, exponent and mantissa fields. Every 32-bit pattern is valid
// input; NaN and infinity patterns extract like any other.
func Extract(f float32) Fields {
	bits := math.Float32bits(f)
	return Fields{
		Sign:     bits >> 31 & 1,
		Exponent: bits >> mantissaBits & exponentMask,
		Mantissa: bits & mantissaMask,
	}
}

// Bits reassembles the 32-bit pattern the fields were extracted from.
// For any f, Extract(f).Bits() == math.Float32bits(f).
func (f Fields) Bits() uint32 {
	return f.Sign<<31 | f.Exponent<<mantissaBits | f.Mantissa
}

// Decoded holds the real-number contribution of each bit field.
type Decoded struct {
	Sign     float32 // +1 or -1
	Exponent float32 // Radix^(field-Bias)
	Mantissa float32 // significand, in [1,2) for normalized inputs
}

// Decode maps each raw field to its real-number contribution.
//
// The exponent formula is applied uniformly; see the package comment
// for how exponent fields 0 and 255 behave.
func (f Fields) Decode() Decoded {
	sign := float32(1)
	if f.Sign != 0 {
		sign = -1
	}

	exponent := float32(math.Ldexp(1, int(f.Exponent)-Bias))

	// Implicit leading 1, then one weight per set fraction bit. Bit i
	// carries weight 2^(i-23).
	mantissa := float32(1)
	for i := 0; i < mantissaBits; i++ {
		if f.Mantissa&(1<<i) != 0 {
			mantissa += float32(math.Ldexp(1, i-mantissaBits))
		}
	}

	return Decoded{Sign: sign, Exponent: exponent, Mantissa: mantissa}
}

// Recompose multiplies the three contributions back into a single
// value. For normalized inputs this reproduces the extracted value
// exactly; for exponent fields 0 and 255 it reflects the uniform
// decode formula rather than IEEE-754 semantics.
func (d Decoded) Recompose() float32 {
	return d.Sign * d.Exponent * d.Mantissa
}
