package num

import (
	"math"
	"math/big"
)

// AsU128 truncates u to its low 128 bits. See IsU128() if you want to check
// before you convert.
func (u U256) AsU128() U128 { return U128{hi: u.lm, lo: u.lo} }

// IsU128 reports whether u can be represented as a U128.
func (u U256) IsU128() bool { return u.hi == 0 && u.hm == 0 }

// AsI128 converts u to an I128 using the low 127 bits of u for the magnitude,
// and the top bit of u (bit 255) for the sign. Bits 127 to 254 are discarded.
//
// This is not a plain truncation: the sign of the result always matches the
// sign u would have as a two's complement 256-bit value.
func (u U256) AsI128() I128 {
	return I128{
		hi: (u.lm & signMask) | (u.hi & signBit),
		lo: u.lo,
	}
}

// AsInt64 converts u to an int64 using the low 63 bits of u for the magnitude,
// and bit 255 for the sign, in the same way as AsI128.
func (u U256) AsInt64() int64 {
	return int64((u.lo & signMask) | (u.hi & signBit))
}

// AsInt32 truncates the result of AsInt64 to 32 bits.
func (u U256) AsInt32() int32 {
	return int32(u.AsInt64())
}

// AsUint64 truncates the U256 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U256) AsUint64() uint64 { return u.lo }

// IsUint64 reports whether u can be represented as a uint64.
func (u U256) IsUint64() bool { return u.hi == 0 && u.hm == 0 && u.lm == 0 }

func (u U256) AsUint32() uint32 { return uint32(u.lo) }

// IntoBigInt copies this U256 into a big.Int, allowing you to retain and
// recycle memory.
func (u U256) IntoBigInt(b *big.Int) {
	setBigWords(b, u.lo, u.lm, u.hm, u.hi)
}

// AsBigInt allocates a new big.Int and copies this U256 into it.
func (u U256) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u U256) AsBigFloat() (b *big.Float) {
	return new(big.Float).SetInt(u.AsBigInt())
}

// AsFloat64 returns the nearest float64 to u.
func (u U256) AsFloat64() float64 {
	if u.hi == 0 && u.hm == 0 && u.lm == 0 {
		return float64(u.lo)
	}

	// Normalise so the top set bit is bit 255, then round the top 64 bits.
	// Any set bit below those is folded into bit 0 so the conversion of the
	// 64-bit word rounds the same way the full value would.
	lz := u.LeadingZeros()
	norm := u.Lsh(lz)
	top := norm.hi
	if norm.hm|norm.lm|norm.lo != 0 {
		top |= 1
	}
	return math.Ldexp(float64(top), 192-int(lz))
}
