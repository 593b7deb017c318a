package num

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

// U128 is the unsigned 128-bit building block for U256. Each U256 is made of
// two U128 halves when carries need to cross the 128-bit boundary.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{lo: v} }
func U128From32(v uint32) U128       { return U128{lo: uint64(v)} }
func U128From16(v uint16) U128       { return U128{lo: uint64(v)} }
func U128From8(v uint8) U128         { return U128{lo: uint64(v)} }

// U128FromString creates a U128 from a string. Overflow truncates to MaxU128
// and sets accurate to 'false'. Only decimal strings are currently supported.
func U128FromString(s string) (out U128, accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, false, fmt.Errorf("num: u128 string %q invalid", s)
	}
	out, accurate = U128FromBigInt(b)
	return out, accurate, nil
}

// U128FromBigInt creates a U128 from a big.Int. Overflow truncates to MaxU128
// and sets accurate to 'false'.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > 128 {
		return MaxU128, false
	}

	var words [2]uint64
	bigWords(v, words[:])
	return U128{hi: words[1], lo: words[0]}, true
}

func (u U128) IsZero() bool { return u == zeroU128 }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

func (u U128) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	return U256From128(u).String()
}

func (u U128) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

func (u U128) IntoBigInt(b *big.Int) {
	setBigWords(b, u.lo, u.hi)
}

func (u U128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsI128 performs a direct cast of a U128 to an I128, which will interpret it
// as a two's complement value.
func (u U128) AsI128() I128 { return I128{hi: u.hi, lo: u.lo} }

// AsUint64 truncates the U128 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U128) AsUint64() uint64 { return u.lo }

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool { return u.hi == 0 }

// addc returns u + n + carry, along with the carry out of bit 127. carry must
// be 0 or 1.
func (u U128) addc(n U128, carry uint64) (v U128, carryOut uint64) {
	v.lo, carry = bits.Add64(u.lo, n.lo, carry)
	v.hi, carryOut = bits.Add64(u.hi, n.hi, carry)
	return v, carryOut
}

// subb returns u - n - borrow, along with the borrow out of bit 127. borrow
// must be 0 or 1.
func (u U128) subb(n U128, borrow uint64) (v U128, borrowOut uint64) {
	v.lo, borrow = bits.Sub64(u.lo, n.lo, borrow)
	v.hi, borrowOut = bits.Sub64(u.hi, n.hi, borrow)
	return v, borrowOut
}

func (u U128) Add(n U128) (v U128) {
	v, _ = u.addc(n, 0)
	return v
}

func (u U128) Sub(n U128) (v U128) {
	v, _ = u.subb(n, 0)
	return v
}

func (u U128) Inc() (v U128) {
	v.lo = u.lo + 1
	v.hi = u.hi
	if u.lo > v.lo {
		v.hi++
	}
	return v
}

func (u U128) Dec() (v U128) {
	v.lo = u.lo - 1
	v.hi = u.hi
	if u.lo < v.lo {
		v.hi--
	}
	return v
}

// Cmp compares u to n and returns:
//
//	< 0 if u <  n
//	  0 if u == n
//	> 0 if u >  n
//
func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u U128) LessThan(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u U128) GreaterThan(n U128) bool      { return n.LessThan(u) }
func (u U128) LessOrEqualTo(n U128) bool    { return !n.LessThan(u) }
func (u U128) GreaterOrEqualTo(n U128) bool { return !u.LessThan(n) }

func (u U128) And(v U128) U128    { return U128{hi: u.hi & v.hi, lo: u.lo & v.lo} }
func (u U128) AndNot(v U128) U128 { return U128{hi: u.hi &^ v.hi, lo: u.lo &^ v.lo} }
func (u U128) Or(v U128) U128     { return U128{hi: u.hi | v.hi, lo: u.lo | v.lo} }
func (u U128) Xor(v U128) U128    { return U128{hi: u.hi ^ v.hi, lo: u.lo ^ v.lo} }
func (u U128) Not() U128          { return U128{hi: ^u.hi, lo: ^u.lo} }

// Lsh shifts u left by n bits. Shifting by 128 or more yields 0.
func (u U128) Lsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n >= 128 {
		return v
	} else if n > 64 {
		v.hi = u.lo << (n - 64)
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else {
		v.hi = u.lo
	}
	return v
}

// Rsh shifts u right by n bits. Shifting by 128 or more yields 0.
func (u U128) Rsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n >= 128 {
		return v
	} else if n > 64 {
		v.lo = u.hi >> (n - 64)
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else {
		v.lo = u.hi
	}
	return v
}

// LeadingZeros returns the number of leading zero bits in u; the result is 128
// for u == 0.
func (u U128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}

// TrailingZeros returns the number of trailing zero bits in u; the result is
// 128 for u == 0.
func (u U128) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	}
	return uint(bits.TrailingZeros64(u.lo))
}

func (u U128) OnesCount() uint {
	return uint(bits.OnesCount64(u.hi) + bits.OnesCount64(u.lo))
}

func (u U128) BitLen() uint { return 128 - u.LeadingZeros() }

func (u U128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *U128) UnmarshalText(bts []byte) (err error) {
	v, err := u128FromText(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

// UnmarshalJSON accepts a quoted or bare decimal. JSON null leaves u
// unchanged.
func (u *U128) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	bts, err = unquoteJSON("u128", bts)
	if err != nil {
		return err
	}
	v, err := u128FromText(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// u128FromText is the strict form of U128FromString used by the decoders:
// values that would be clamped are rejected instead.
func u128FromText(s string) (U128, error) {
	v, accurate, err := U128FromString(s)
	if err != nil {
		return v, err
	} else if !accurate {
		return U128{}, fmt.Errorf("num: u128 value %q out of range", s)
	}
	return v, nil
}
