package dsfmt

import (
	"math/big"
	"strings"
	"sync"
)

//go:generate go test -run TestJumpTable -update

// JumpExponent: one jump advances the recurrence by 2^JumpExponent block
// steps.
const JumpExponent = 128

var (
	jumpOnce sync.Once
	jumpRed  *reducer
	jumpPoly poly
)

// jumpTables returns the reducer for m(x) and x^(2^128) mod m(x), parsed
// from jump_table.go on first use.
func jumpTables() (*reducer, poly) {
	jumpOnce.Do(func() {
		jumpRed = newReducer(polyFromHex(annihilatorHex))
		jumpPoly = polyFromHex(jumpHex)
	})
	return jumpRed, jumpPoly
}

// jumpsPolynomial returns x^(jumps * 2^128) mod m(x). jumps must be
// positive.
func jumpsPolynomial(jumps int) poly {
	red, p := jumpTables()
	if jumps == 1 {
		return p
	}
	return red.pow(p, uint64(jumps))
}

// stepsPolynomial returns x^steps mod m(x) for arbitrary distances.
func stepsPolynomial(steps *big.Int) poly {
	red, _ := jumpTables()
	return red.powX(steps)
}

// polyFromHex parses a polynomial written highest coefficient first.
func polyFromHex(s string) poly {
	p := newPoly(4 * len(s))
	for i := 0; i < len(s); i++ {
		v := uint64(strings.IndexByte("0123456789abcdef", s[len(s)-1-i]))
		p[(4*i)>>6] |= v << (uint(4*i) & 63)
	}
	return p
}

// apply returns p(F)s: the sum of the states F^k s for every set
// coefficient k. With p = x^j mod m this equals s advanced j steps.
func (s *status) apply(p poly) status {
	var work status
	cur := *s
	origin := s.idx % N
	d := p.degree()
	for k := 0; k <= d; k++ {
		if p.coeff(k) == 1 {
			work.add(&cur, origin)
		}
		cur.step()
	}
	work.idx = s.idx
	return work
}
