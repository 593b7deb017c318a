package num

// halves splits u into its low and high 128-bit halves.
func (u U256) halves() (hi, lo U128) {
	return U128{hi: u.hi, lo: u.hm}, U128{hi: u.lm, lo: u.lo}
}

func u256FromHalves(hi, lo U128) U256 {
	return U256{hi: hi.hi, hm: hi.lo, lm: lo.hi, lo: lo.lo}
}

// Add returns u + n. Overflow wraps around modulo 2^256.
func (u U256) Add(n U256) U256 {
	uhi, ulo := u.halves()
	nhi, nlo := n.halves()

	lo, carry := ulo.addc(nlo, 0)
	hi, _ := uhi.addc(nhi, carry)
	return u256FromHalves(hi, lo)
}

// Sub returns u - n. Underflow wraps around modulo 2^256.
func (u U256) Sub(n U256) U256 {
	uhi, ulo := u.halves()
	nhi, nlo := n.halves()

	lo, borrow := ulo.subb(nlo, 0)
	hi, _ := uhi.subb(nhi, borrow)
	return u256FromHalves(hi, lo)
}

// Neg returns the two's complement of u, i.e. 2^256 - u. Neg(0) is 0.
func (u U256) Neg() U256 {
	return u.Not().Inc()
}

// Pos returns u unchanged; it exists to mirror Neg.
func (u U256) Pos() U256 { return u }

// Inc returns u + 1. The carry only moves up a limb while every limb below
// it has wrapped to zero.
func (u U256) Inc() (v U256) {
	v = u
	v.lo++
	if v.lo == 0 {
		v.lm++
		if v.lm == 0 {
			v.hm++
			if v.hm == 0 {
				v.hi++
			}
		}
	}
	return v
}

func (u U256) Dec() (out U256) {
	out = u
	out.lo = u.lo - 1
	if u.lo < out.lo {
		out.lm--
		if u.lm < out.lm {
			out.hm--
			if u.hm < out.hm {
				out.hi--
			}
		}
	}
	return out
}
