package num

import (
	"fmt"
	"math/big"
)

// I128 is a two's complement signed 128-bit integer. It is the target of
// U256.AsI128 and the source of U256FromI128.
type I128 struct {
	hi uint64
	lo uint64
}

// I128FromRaw is the complement to I128.Raw(); it creates an I128 from two
// uint64s representing the hi and lo bits.
func I128FromRaw(hi, lo uint64) I128 {
	return I128{hi: hi, lo: lo}
}

func I128From64(v int64) I128 {
	return I128{hi: uint64(v >> 63), lo: uint64(v)}
}

func I128From32(v int32) I128 { return I128From64(int64(v)) }

var (
	minI128AsAbsU128 = U128{hi: signBit, lo: 0}
	maxI128AsU128    = U128{hi: signMask, lo: maxUint64}
)

// I128FromString creates a I128 from a string. Overflow truncates to
// MaxI128/MinI128 and sets accurate to 'false'. Only decimal strings are
// currently supported.
func I128FromString(s string) (out I128, accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, false, fmt.Errorf("num: i128 string %q invalid", s)
	}
	out, accurate = I128FromBigInt(b)
	return out, accurate, nil
}

// I128FromBigInt creates an I128 from a big.Int. Values outside the I128
// range clamp to MinI128/MaxI128 and set accurate to 'false'.
func I128FromBigInt(v *big.Int) (out I128, accurate bool) {
	neg := v.Sign() < 0

	var u U128
	accurate = true
	if v.BitLen() > 128 {
		u, accurate = MaxU128, false
	} else {
		var words [2]uint64
		bigWords(v, words[:])
		u = U128{hi: words[1], lo: words[0]}
	}

	if !neg {
		if u.GreaterThan(maxI128AsU128) {
			return MaxI128, false
		}
		return u.AsI128(), accurate
	}

	if u.GreaterThan(minI128AsAbsU128) {
		return MinI128, false
	}
	return u.AsI128().Neg(), accurate
}

func (i I128) IsZero() bool { return i == zeroI128 }

// Raw returns access to the I128 as a pair of uint64s. See I128FromRaw() for
// the counterpart.
func (i I128) Raw() (hi uint64, lo uint64) { return i.hi, i.lo }

func (i I128) String() string {
	return i.AsBigInt().String()
}

func (i I128) Format(s fmt.State, c rune) {
	i.AsBigInt().Format(s, c)
}

// IntoBigInt copies this I128 into a big.Int, allowing you to retain and
// recycle memory.
func (i I128) IntoBigInt(b *big.Int) {
	if i.hi&signBit == 0 {
		setBigWords(b, i.lo, i.hi)
		return
	}
	abs := i.Neg()
	setBigWords(b, abs.lo, abs.hi)
	b.Neg(b)
}

// AsBigInt allocates a new big.Int and copies this I128 into it.
func (i I128) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

// AsU128 performs a direct cast of an I128 to a U128. Negative numbers
// become values > math.MaxI128.
func (i I128) AsU128() U128 {
	return U128{lo: i.lo, hi: i.hi}
}

// IsU128 reports whether i can be represented in a U128.
func (i I128) IsU128() bool {
	return i.hi&signBit == 0
}

// AsInt64 truncates the I128 to fit in a int64. Values outside the range will
// over/underflow. See IsInt64() if you want to check before you convert.
func (i I128) AsInt64() int64 {
	return int64(i.lo)
}

// IsInt64 reports whether i can be represented as a int64.
func (i I128) IsInt64() bool {
	if i.hi&signBit != 0 {
		return i.hi == maxUint64 && i.lo >= signBit
	}
	return i.hi == 0 && i.lo <= maxInt64
}

func (i I128) Sign() int {
	if i == zeroI128 {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

// Neg returns -i. Negating MinI128 overflows back to MinI128.
func (i I128) Neg() (v I128) {
	v.hi = ^i.hi
	v.lo = ^i.lo + 1
	if v.lo == 0 { // carry out of the low word
		v.hi++
	}
	return v
}

// Cmp compares i to n and returns:
//
//	< 0 if i <  n
//	  0 if i == n
//	> 0 if i >  n
//
func (i I128) Cmp(n I128) int {
	if i == n {
		return 0
	} else if i.LessThan(n) {
		return -1
	}
	return 1
}

func (i I128) Equal(n I128) bool {
	return i.hi == n.hi && i.lo == n.lo
}

func (i I128) LessThan(n I128) bool {
	if i.hi&signBit == n.hi&signBit {
		return i.hi < n.hi || (i.hi == n.hi && i.lo < n.lo)
	}
	return i.hi&signBit != 0
}

func (i I128) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *I128) UnmarshalText(bts []byte) (err error) {
	v, err := i128FromText(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i I128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

// UnmarshalJSON accepts a quoted or bare decimal. JSON null leaves i
// unchanged.
func (i *I128) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	bts, err = unquoteJSON("i128", bts)
	if err != nil {
		return err
	}
	v, err := i128FromText(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// i128FromText is the strict form of I128FromString used by the decoders:
// values that would be clamped are rejected instead.
func i128FromText(s string) (I128, error) {
	v, accurate, err := I128FromString(s)
	if err != nil {
		return v, err
	} else if !accurate {
		return I128{}, fmt.Errorf("num: i128 value %q out of range", s)
	}
	return v, nil
}
