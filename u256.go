package num

import (
	"fmt"
	"math"
	"math/big"
)

// U256 is an unsigned 256-bit integer made of four 64-bit limbs. Every bit
// pattern is a valid value, and the zero value is 0.
//
// The numeric value is lo + lm*2^64 + hm*2^128 + hi*2^192.
type U256 struct {
	hi, hm, lm, lo uint64
}

// U256FromRaw is the complement to U256.Raw(); it creates a U256 from four
// uint64s, most significant first.
func U256FromRaw(hi, hm, lm, lo uint64) U256 {
	return U256{hi: hi, hm: hm, lm: lm, lo: lo}
}

// U256FromBits creates a U256 from eight 32-bit groups, least significant
// first.
func U256FromBits(l0, l1, l2, l3, h0, h1, h2, h3 uint32) U256 {
	return U256{
		lo: uint64(l0) | uint64(l1)<<32,
		lm: uint64(l2) | uint64(l3)<<32,
		hm: uint64(h0) | uint64(h1)<<32,
		hi: uint64(h2) | uint64(h3)<<32,
	}
}

func U256From64(v uint64) U256 { return U256{lo: v} }
func U256From32(v uint32) U256 { return U256{lo: uint64(v)} }
func U256From16(v uint16) U256 { return U256{lo: uint64(v)} }
func U256From8(v uint8) U256   { return U256{lo: uint64(v)} }

// U256FromInt64 sign-extends v into all 256 bits, so negative values produce
// their two's complement representation.
func U256FromInt64(v int64) U256 {
	mask := uint64(v >> 63)
	return U256{hi: mask, hm: mask, lm: mask, lo: uint64(v)}
}

// U256FromInt32 sign-extends v into all 256 bits.
func U256FromInt32(v int32) U256 {
	return U256FromInt64(int64(v))
}

func U256From128(in U128) U256 {
	return U256{lm: in.hi, lo: in.lo}
}

// U256FromI128 sign-extends in into all 256 bits.
func U256FromI128(in I128) U256 {
	mask := uint64(int64(in.hi) >> 63)
	return U256{hi: mask, hm: mask, lm: in.hi, lo: in.lo}
}

// U256FromString creates a U256 from a string. Overflow truncates to MaxU256
// and sets accurate to 'false'. Only decimal strings are currently supported.
func U256FromString(s string) (out U256, accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, false, fmt.Errorf("num: u256 string %q invalid", s)
	}
	out, accurate = U256FromBigInt(b)
	return out, accurate, nil
}

// U256FromBigInt creates a U256 from a big.Int. Overflow truncates to MaxU256
// and sets accurate to 'false'. Negative numbers produce 0 and set accurate
// to 'false'.
func U256FromBigInt(v *big.Int) (out U256, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > 256 {
		return MaxU256, false
	}

	var words [4]uint64
	bigWords(v, words[:])
	return U256{hi: words[3], hm: words[2], lm: words[1], lo: words[0]}, true
}

func U256FromFloat32(f float32) (out U256, inRange bool) {
	return U256FromFloat64(float64(f))
}

// U256FromFloat64 creates a U256 from a float64. Any fractional portion will
// be truncated towards zero.
//
// Negative floats produce the two's complement of their magnitude, in the
// same way U256FromInt64 does for negative integers. Magnitudes larger than
// 2^255 (for negative values) or 2^256-1 (for positive values) are clamped
// and inRange is set to 'false'.
//
// NaN is treated as 0, inRange is set to false.
func U256FromFloat64(f float64) (out U256, inRange bool) {
	if f == 0 {
		return out, true

	} else if f != f { // (f != f) == NaN
		return out, false

	} else if f < 0 {
		if f < -halfU256Float {
			return U256{hi: signBit}, false
		}
		return u256FromPositiveFloat(-f).Neg(), true

	} else if f >= wrapU256Float {
		return MaxU256, false
	}

	return u256FromPositiveFloat(f), true
}

// u256FromPositiveFloat requires 0 < f < 2^256.
func u256FromPositiveFloat(f float64) U256 {
	if f < wrapUint64Float {
		return U256{lo: uint64(f)}
	}

	// f == frac * 2^exp, 0.5 <= frac < 1, and exp > 64 here, so the
	// 53-bit mantissa is an integer once scaled:
	frac, exp := math.Frexp(f)
	mant := uint64(frac * (1 << 53))
	return U256{lo: mant}.Lsh(uint(exp - 53))
}

func (u U256) IsZero() bool { return u == zeroU256 }

// Raw returns access to the U256 as four uint64s, most significant first. See
// U256FromRaw() for the counterpart.
func (u U256) Raw() (hi, hm, lm, lo uint64) { return u.hi, u.hm, u.lm, u.lo }

// Set overwrites all four limbs of u with those of v.
func (u *U256) Set(v U256) *U256 {
	*u = v
	return u
}

func (u *U256) SetU128(v U128) *U256 {
	u.hi, u.hm, u.lm, u.lo = 0, 0, v.hi, v.lo
	return u
}

func (u *U256) SetUint64(v uint64) *U256 {
	u.hi, u.hm, u.lm, u.lo = 0, 0, 0, v
	return u
}

func (u *U256) SetUint32(v uint32) *U256 {
	return u.SetUint64(uint64(v))
}

func (u *U256) SetInt64(v int64) *U256 {
	mask := uint64(v >> 63)
	u.hi, u.hm, u.lm, u.lo = mask, mask, mask, uint64(v)
	return u
}

func (u *U256) SetInt32(v int32) *U256 {
	return u.SetInt64(int64(v))
}
