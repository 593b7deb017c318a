package num

import (
	"math/bits"
	"strconv"
)

const (
	// pow10Chunk is the largest power of ten that fits in a uint64.
	pow10Chunk       = 10000000000000000000
	pow10ChunkDigits = 19

	// maxU256Digits is len("115792089237316195423570985008687907853269984665640564039457584007913129639935")
	maxU256Digits = 78
)

// quoRem64 divides u by d, returning the quotient and the remainder. d must
// not be 0.
func (u U256) quoRem64(d uint64) (q U256, r uint64) {
	q.hi, r = bits.Div64(0, u.hi, d)
	q.hm, r = bits.Div64(r, u.hm, d)
	q.lm, r = bits.Div64(r, u.lm, d)
	q.lo, r = bits.Div64(r, u.lo, d)
	return q, r
}

// u256toa10 renders u in base 10. Each division by pow10Chunk peels off 19
// digits; every chunk but the most significant is zero-padded.
func u256toa10(u U256) string {
	if u.IsUint64() {
		return strconv.FormatUint(u.lo, 10)
	}

	var buf [maxU256Digits]byte
	pos := len(buf)

	for {
		q, r := u.quoRem64(pow10Chunk)
		if q.IsZero() {
			head := strconv.FormatUint(r, 10)
			pos -= len(head)
			copy(buf[pos:], head)
			break
		}
		for i := 0; i < pow10ChunkDigits; i++ {
			pos--
			buf[pos] = '0' + byte(r%10)
			r /= 10
		}
		u = q
	}

	return string(buf[pos:])
}
