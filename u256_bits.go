package num

import (
	"math/bits"
)

func (u U256) And(n U256) U256 {
	u.hi = u.hi & n.hi
	u.hm = u.hm & n.hm
	u.lm = u.lm & n.lm
	u.lo = u.lo & n.lo
	return u
}

func (u U256) AndNot(n U256) U256 {
	u.hi = u.hi &^ n.hi
	u.hm = u.hm &^ n.hm
	u.lm = u.lm &^ n.lm
	u.lo = u.lo &^ n.lo
	return u
}

func (u U256) Not() U256 {
	u.hi = ^u.hi
	u.hm = ^u.hm
	u.lm = ^u.lm
	u.lo = ^u.lo
	return u
}

func (u U256) Or(n U256) U256 {
	u.hi = u.hi | n.hi
	u.hm = u.hm | n.hm
	u.lm = u.lm | n.lm
	u.lo = u.lo | n.lo
	return u
}

func (u U256) Xor(n U256) U256 {
	u.hi = u.hi ^ n.hi
	u.hm = u.hm ^ n.hm
	u.lm = u.lm ^ n.lm
	u.lo = u.lo ^ n.lo
	return u
}

// Rsh returns the logical right shift of u by n bits. n is reduced modulo 256
// first, so Rsh(256) returns u unchanged rather than 0.
func (u U256) Rsh(n uint) (v U256) {
	n &= 255

	// Shifting a uint64 by 64 yields 0 in Go, which lets the upper bound of
	// each range share the general case.
	if n == 0 {
		return u

	} else if n <= 64 {
		return U256{
			hi: u.hi >> n,
			hm: (u.hm >> n) | (u.hi << (64 - n)),
			lm: (u.lm >> n) | (u.hm << (64 - n)),
			lo: (u.lo >> n) | (u.lm << (64 - n)),
		}

	} else if n <= 128 {
		n -= 64
		return U256{
			hm: u.hi >> n,
			lm: (u.hm >> n) | (u.hi << (64 - n)),
			lo: (u.lm >> n) | (u.hm << (64 - n)),
		}

	} else if n <= 192 {
		n -= 128
		return U256{
			lm: u.hi >> n,
			lo: (u.hm >> n) | (u.hi << (64 - n)),
		}
	}

	return U256{lo: u.hi >> (n - 192)}
}

// Lsh returns u shifted left by n bits. Like Rsh, n is reduced modulo 256.
func (u U256) Lsh(n uint) (v U256) {
	n &= 255

	if n == 0 {
		return u

	} else if n <= 64 {
		return U256{
			hi: (u.hi << n) | (u.hm >> (64 - n)),
			hm: (u.hm << n) | (u.lm >> (64 - n)),
			lm: (u.lm << n) | (u.lo >> (64 - n)),
			lo: u.lo << n,
		}

	} else if n <= 128 {
		n -= 64
		return U256{
			hi: (u.hm << n) | (u.lm >> (64 - n)),
			hm: (u.lm << n) | (u.lo >> (64 - n)),
			lm: u.lo << n,
		}

	} else if n <= 192 {
		n -= 128
		return U256{
			hi: (u.lm << n) | (u.lo >> (64 - n)),
			hm: u.lo << n,
		}
	}

	return U256{hi: u.lo << (n - 192)}
}

// limb returns a pointer to the limb holding bit i, which must be in [0, 255].
func (u *U256) limb(i int) *uint64 {
	switch i >> 6 {
	case 0:
		return &u.lo
	case 1:
		return &u.lm
	case 2:
		return &u.hm
	default:
		return &u.hi
	}
}

// Bit returns the value of the i'th bit of u. Bits past 255 are always 0. It
// panics if i is negative.
func (u U256) Bit(i int) uint {
	if i < 0 {
		panic("num: u256 negative bit index")
	} else if i > 255 {
		return 0
	}
	return uint(*u.limb(i)>>uint(i&63)) & 1
}

// SetBit returns u with the i'th bit set to b, which must be 0 or 1. Bits
// past 255 are discarded. It panics if i is negative.
func (u U256) SetBit(i int, b uint) U256 {
	if i < 0 {
		panic("num: u256 negative bit index")
	} else if b > 1 {
		panic("num: u256 bit value must be 0 or 1")
	} else if i > 255 {
		return u
	}

	l := u.limb(i)
	mask := uint64(1) << uint(i&63)
	if b == 1 {
		*l |= mask
	} else {
		*l &^= mask
	}
	return u
}

// OnesCount returns the number of one bits ("population count") in u.
func (u U256) OnesCount() uint {
	count := bits.OnesCount64(u.lo)
	if u.lm != 0 {
		count += bits.OnesCount64(u.lm)
	}
	if u.hm != 0 {
		count += bits.OnesCount64(u.hm)
	}
	if u.hi != 0 {
		count += bits.OnesCount64(u.hi)
	}
	return uint(count)
}

// LeadingZeros returns the number of leading zero bits in u; the result is 256
// for u == 0.
func (u U256) LeadingZeros() uint {
	if u.hi != 0 {
		return uint(bits.LeadingZeros64(u.hi))
	} else if u.hm != 0 {
		return uint(bits.LeadingZeros64(u.hm)) + 64
	} else if u.lm != 0 {
		return uint(bits.LeadingZeros64(u.lm)) + 128
	}
	// bits.LeadingZeros64(0) == 64, which gives 256 for u == 0.
	return uint(bits.LeadingZeros64(u.lo)) + 192
}

// TrailingZeros returns the number of trailing zero bits in u; the result is
// 256 for u == 0.
func (u U256) TrailingZeros() uint {
	if u.lo != 0 {
		return uint(bits.TrailingZeros64(u.lo))
	} else if u.lm != 0 {
		return uint(bits.TrailingZeros64(u.lm)) + 64
	} else if u.hm != 0 {
		return uint(bits.TrailingZeros64(u.hm)) + 128
	}
	return uint(bits.TrailingZeros64(u.hi)) + 192
}

// BitLen returns the minimum number of bits required to represent u; the
// result is 0 for u == 0.
func (u U256) BitLen() uint {
	return 256 - u.LeadingZeros()
}
