package num

import (
	"fmt"
	"math/big"
	"testing"
)

var (
	BenchBigIntResult *big.Int
	BenchBoolResult   bool
	BenchBytesResult  [32]byte
	BenchFloatResult  float64
	BenchIntResult    int
	BenchStringResult string
	BenchU128Result   U128
	BenchU256Result   U256
	BenchUintResult   uint

	BenchU2561 = U256FromRaw(0x0123456789abcdef, 0xfedcba9876543210, 0x0f1e2d3c4b5a6978, 0x8796a5b4c3d2e1f0)
	BenchU2562 = U256FromRaw(0, 0x1111111111111111, maxUint64, maxUint64)
)

func BenchmarkU256Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU256Result = BenchU2561.Add(BenchU2562)
	}
}

func BenchmarkU256Sub(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU256Result = BenchU2561.Sub(BenchU2562)
	}
}

func BenchmarkU256Neg(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU256Result = BenchU2561.Neg()
	}
}

func BenchmarkU256Cmp(b *testing.B) {
	b.Run("equal", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			BenchIntResult = BenchU2561.Cmp(BenchU2561)
		}
	})
	b.Run("lt", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			BenchBoolResult = BenchU2562.LessThan(BenchU2561)
		}
	})
}

func BenchmarkU256Rsh(b *testing.B) {
	for _, sh := range []uint{1, 64, 100, 128, 200, 255} {
		b.Run(fmt.Sprint(sh), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchU256Result = BenchU2561.Rsh(sh)
			}
		})
	}
}

func BenchmarkU256Lsh(b *testing.B) {
	for _, sh := range []uint{1, 64, 100, 128, 200, 255} {
		b.Run(fmt.Sprint(sh), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchU256Result = BenchU2561.Lsh(sh)
			}
		})
	}
}

func BenchmarkU256OnesCount(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUintResult = BenchU2561.OnesCount()
	}
}

func BenchmarkU256LeadingZeros(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUintResult = BenchU2562.LeadingZeros()
	}
}

func BenchmarkU256BytesBE(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchBytesResult = BenchU2561.BytesBE()
	}
}

func BenchmarkU256String(b *testing.B) {
	for _, u := range []U256{u256v(12345), BenchU2562, MaxU256} {
		b.Run(fmt.Sprintf("%d", u.BitLen()), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchStringResult = u.String()
			}
		})
	}
}

func BenchmarkU256Text16(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchStringResult = MaxU256.Text(16)
	}
}

func BenchmarkU256AsFloat64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloatResult = BenchU2561.AsFloat64()
	}
}

func BenchmarkU256FromFloat64(b *testing.B) {
	f := BenchU2561.AsFloat64()
	for i := 0; i < b.N; i++ {
		BenchU256Result, _ = U256FromFloat64(f)
	}
}

func BenchmarkU256AsBigInt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchBigIntResult = BenchU2561.AsBigInt()
	}
}

func BenchmarkU256IntoBigInt(b *testing.B) {
	var v big.Int
	for i := 0; i < b.N; i++ {
		BenchU2561.IntoBigInt(&v)
	}
}

func BenchmarkU128Add(b *testing.B) {
	u := U128From64(maxUint64)
	for i := 0; i < b.N; i++ {
		BenchU128Result = u.Add(u)
	}
}

func BenchmarkBigIntAdd(b *testing.B) {
	x, y := BenchU2561.AsBigInt(), BenchU2562.AsBigInt()
	for i := 0; i < b.N; i++ {
		var dest big.Int
		dest.Add(x, y)
		dest.And(&dest, maxBigU256)
	}
}

func BenchmarkBigIntString(b *testing.B) {
	x := MaxU256.AsBigInt()
	for i := 0; i < b.N; i++ {
		BenchStringResult = x.String()
	}
}
