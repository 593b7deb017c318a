package num

import (
	"fmt"
	"math/big"
)

type RandSource interface {
	Uint64() uint64
}

// RandU256 generates an unsigned 256-bit random integer from an external source.
func RandU256(source RandSource) (out U256) {
	return U256{hi: source.Uint64(), hm: source.Uint64(), lm: source.Uint64(), lo: source.Uint64()}
}

// DifferenceU256 subtracts the smaller of a and b from the larger.
func DifferenceU256(a, b U256) U256 {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

func LargerU256(a, b U256) U256 {
	if a.LessThan(b) {
		return b
	}
	return a
}

func SmallerU256(a, b U256) U256 {
	if b.LessThan(a) {
		return b
	}
	return a
}

// bigWords unpacks the magnitude of v into out as 64-bit words, least
// significant first. Words that don't fit in out are dropped; out must be
// zeroed by the caller.
func bigWords(v *big.Int, out []uint64) {
	words := v.Bits()

	switch intSize {
	case 64:
		for i := 0; i < len(words) && i < len(out); i++ {
			out[i] = uint64(words[i])
		}
	case 32:
		for i := 0; i < len(words) && i/2 < len(out); i++ {
			out[i/2] |= uint64(words[i]) << (32 * uint(i%2))
		}
	default:
		panic("num: unsupported bit size")
	}
}

// setBigWords sets b to the value made of limbs, least significant first,
// reusing b's storage where possible.
func setBigWords(b *big.Int, limbs ...uint64) {
	words := b.Bits()[:0]

	switch intSize {
	case 64:
		for _, l := range limbs {
			words = append(words, big.Word(l))
		}
	case 32:
		for _, l := range limbs {
			words = append(words, big.Word(l&0xFFFFFFFF), big.Word(l>>32))
		}
	default:
		panic("num: unsupported bit size")
	}

	b.SetBits(words)
}

// unquoteJSON strips the quotes from a JSON string; unquoted input (a bare
// JSON number) is passed through.
func unquoteJSON(kind string, bts []byte) ([]byte, error) {
	ln := len(bts)
	if ln == 0 {
		return nil, fmt.Errorf("num: %s invalid JSON %q", kind, string(bts))
	}
	if bts[0] == '"' {
		if ln < 2 || bts[ln-1] != '"' {
			return nil, fmt.Errorf("num: %s invalid JSON %q", kind, string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return bts, nil
}
