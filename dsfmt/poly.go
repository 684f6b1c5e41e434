package dsfmt

import (
	"math/big"
	"math/bits"
)

// poly is a polynomial over GF(2); bit i of the packed words is the
// coefficient of x^i.
type poly []uint64

func newPoly(degree int) poly {
	return make(poly, degree/64+1)
}

func (p poly) degree() int {
	for w := len(p) - 1; w >= 0; w-- {
		if p[w] != 0 {
			return w*64 + 63 - bits.LeadingZeros64(p[w])
		}
	}
	return -1
}

func (p poly) coeff(i int) uint64 {
	if i>>6 >= len(p) {
		return 0
	}
	return p[i>>6] >> (uint(i) & 63) & 1
}

func (p poly) set(i int) {
	p[i>>6] |= 1 << (uint(i) & 63)
}

// xorShifted sets p ^= q * x^shift. p must be long enough.
func (p poly) xorShifted(q poly, shift int) {
	w, s := shift>>6, uint(shift)&63
	if s == 0 {
		for i, v := range q {
			if v != 0 {
				p[w+i] ^= v
			}
		}
		return
	}
	for i, v := range q {
		if v == 0 {
			continue
		}
		p[w+i] ^= v << s
		if w+i+1 < len(p) {
			p[w+i+1] ^= v >> (64 - s)
		}
	}
}

// mul returns p * q.
func (p poly) mul(q poly) poly {
	dp, dq := p.degree(), q.degree()
	if dp < 0 || dq < 0 {
		return newPoly(0)
	}
	out := newPoly(dp + dq)
	for i := 0; i <= dq; i++ {
		if q.coeff(i) == 1 {
			out.xorShifted(p[:dp/64+1], i)
		}
	}
	return out
}

// spread interleaves zero bits, which squares a polynomial over GF(2).
func spread(x uint32) uint64 {
	v := uint64(x)
	v = (v | v<<16) & 0x0000ffff0000ffff
	v = (v | v<<8) & 0x00ff00ff00ff00ff
	v = (v | v<<4) & 0x0f0f0f0f0f0f0f0f
	v = (v | v<<2) & 0x3333333333333333
	v = (v | v<<1) & 0x5555555555555555
	return v
}

// reducer computes remainders modulo a fixed polynomial m. It keeps m
// pre-shifted by every bit offset so each reduction step is a word-aligned
// xor.
type reducer struct {
	m       poly
	deg     int
	shifted [64]poly
}

func newReducer(m poly) *reducer {
	r := &reducer{deg: m.degree()}
	r.m = append(poly(nil), m[:r.deg/64+1]...)
	for s := 0; s < 64; s++ {
		q := newPoly(r.deg + s)
		q.xorShifted(r.m, s)
		r.shifted[s] = q
	}
	return r
}

// reduce replaces a by a mod m in place and returns it trimmed to the
// width of m.
func (r *reducer) reduce(a poly) poly {
	for i := a.degree(); i >= r.deg; i-- {
		if a[i>>6]>>(uint(i)&63)&1 == 0 {
			continue
		}
		off := i - r.deg
		src := r.shifted[off&63]
		w := off >> 6
		for k, v := range src {
			a[w+k] ^= v
		}
	}
	width := r.deg/64 + 1
	if len(a) < width {
		out := newPoly(r.deg)
		copy(out, a)
		return out
	}
	return a[:width]
}

// square returns a^2 mod m.
func (r *reducer) square(a poly) poly {
	out := make(poly, 2*len(a))
	for i, v := range a {
		out[2*i] = spread(uint32(v))
		out[2*i+1] = spread(uint32(v >> 32))
	}
	return r.reduce(out)
}

// mulX returns a*x mod m.
func (r *reducer) mulX(a poly) poly {
	out := make(poly, len(a)+1)
	out.xorShifted(a, 1)
	return r.reduce(out)
}

// mulMod returns a*b mod m.
func (r *reducer) mulMod(a, b poly) poly {
	return r.reduce(a.mul(b))
}

// pow returns p^e mod m.
func (r *reducer) pow(p poly, e uint64) poly {
	acc := newPoly(r.deg)
	acc.set(0)
	for i := bits.Len64(e) - 1; i >= 0; i-- {
		acc = r.square(acc)
		if e>>uint(i)&1 == 1 {
			acc = r.mulMod(acc, p)
		}
	}
	return acc
}

// powX returns x^e mod m.
func (r *reducer) powX(e *big.Int) poly {
	acc := newPoly(r.deg)
	acc.set(0)
	for i := e.BitLen() - 1; i >= 0; i-- {
		acc = r.square(acc)
		if e.Bit(i) == 1 {
			acc = r.mulX(acc)
		}
	}
	return acc
}
