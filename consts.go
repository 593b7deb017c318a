package num

import (
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1

	signBit  = 0x8000000000000000
	signMask = 0x7FFFFFFFFFFFFFFF

	wrapUint64Float = float64(maxUint64) + 1 // 1 << 64

	// (1<<256) and (1<<255); both are exact in a float64.
	wrapU256Float = float64(1 << 256)
	halfU256Float = float64(1 << 255)

	intSize = 32 << (^uint(0) >> 63)
)

var (
	MaxI128 = I128{hi: signMask, lo: maxUint64}
	MinI128 = I128{hi: signBit, lo: 0}
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}

	ZeroU256 = U256{}
	OneU256  = U256{lo: 1}
	MinU256  = U256{}
	MaxU256  = U256{hi: maxUint64, hm: maxUint64, lm: maxUint64, lo: maxUint64}

	zeroI128 I128
	zeroU128 U128
	zeroU256 U256

	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)

	maxBigU128, _ = new(big.Int).SetString("340282366920938463463374607431768211455", 10)
	maxBigU256, _ = new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10)

	// wrapBigU256 is 1 << 256, used to simulate over/underflow:
	wrapBigU256 = new(big.Int).Lsh(big1, 256)
)
