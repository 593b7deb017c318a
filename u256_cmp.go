package num

// LessThan is the only ordering primitive; every other relational method is
// derived from it and Equal so that they all agree on one total order.
func (u U256) LessThan(n U256) bool {
	if u.hi != n.hi {
		return u.hi < n.hi
	} else if u.hm != n.hm {
		return u.hm < n.hm
	} else if u.lm != n.lm {
		return u.lm < n.lm
	}
	return u.lo < n.lo
}

func (u U256) Equal(n U256) bool {
	return u.lo == n.lo && u.lm == n.lm && u.hm == n.hm && u.hi == n.hi
}

func (u U256) GreaterThan(n U256) bool      { return n.LessThan(u) }
func (u U256) LessOrEqualTo(n U256) bool    { return !n.LessThan(u) }
func (u U256) GreaterOrEqualTo(n U256) bool { return !u.LessThan(n) }

// Cmp compares u to n and returns:
//
//	-1 if u <  n
//	 0 if u == n
//	+1 if u >  n
func (u U256) Cmp(n U256) int {
	if u.Equal(n) {
		return 0
	} else if u.LessThan(n) {
		return -1
	}
	return 1
}

// Bool reports whether any bit of u is set.
func (u U256) Bool() bool {
	return u.lo|u.lm|u.hm|u.hi != 0
}
