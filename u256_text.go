package num

import (
	"fmt"
)

const hexDigits = "0123456789abcdef"

// Text returns the string representation of u in the given radix, which must
// be 10 or 16. A radix of 0 is treated as 10. Hex output is lower-case with no
// prefix and no leading zeros.
func (u U256) Text(radix int) string {
	switch radix {
	case 0, 10:
		return u256toa10(u)
	case 16:
		return u.textHex()
	default:
		panic("num: u256 radix must be 10 or 16")
	}
}

func (u U256) textHex() string {
	if u.IsZero() {
		return "0"
	}

	// Start at the nibble holding the highest set bit. Nibbles never straddle
	// a limb boundary, so each one comes from a single limb.
	shift := int(252 - (u.LeadingZeros() &^ 3))
	out := make([]byte, 0, shift/4+1)
	for ; shift >= 0; shift -= 4 {
		nibble := (*u.limb(shift) >> uint(shift&63)) & 15
		out = append(out, hexDigits[nibble])
	}
	return string(out)
}

func (u U256) String() string {
	return u256toa10(u)
}

// Format supports the full big.Int verb set, at the cost of an allocation.
func (u U256) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

func (u U256) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *U256) UnmarshalText(bts []byte) (err error) {
	v, err := u256FromText(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U256) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

// UnmarshalJSON accepts a quoted or bare decimal. JSON null leaves u
// unchanged.
func (u *U256) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	bts, err = unquoteJSON("u256", bts)
	if err != nil {
		return err
	}
	v, err := u256FromText(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// u256FromText is the strict form of U256FromString used by the decoders:
// values that would be clamped are rejected instead.
func u256FromText(s string) (U256, error) {
	v, accurate, err := U256FromString(s)
	if err != nil {
		return v, err
	} else if !accurate {
		return U256{}, fmt.Errorf("num: u256 value %q out of range", s)
	}
	return v, nil
}
