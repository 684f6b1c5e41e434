package dsfmt

import (
	"errors"
	"flag"
	"fmt"
	"math/big"
	"math/bits"
	"os"
	"strings"
	"testing"

	"github.com/moontrade/bitgen"
)

var updateJumpTable = flag.Bool("update", false, "rewrite jump_table.go from a fresh derivation")

// stateBits bounds the linear complexity of any output bit sequence.
const stateBits = (N + 1) * 128

// annihilatorRounds is the number of random states folded into the
// derived annihilator. A factor is missed only if every round misses it.
const annihilatorRounds = 24

// seededStatus returns a valid state seeded from a fixed key.
func seededStatus(seed uint32) status {
	var s status
	key := make([]uint32, KeyWords)
	x := seed
	for i := range key {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		key[i] = x
	}
	s.initByArray(key)
	return s
}

// randomStatus fills every bit, exponent bits included. F is linear on such
// states too, and covering the whole space makes the recovered polynomial
// annihilate every state.
func randomStatus(src *bitgen.SplitMix) status {
	var s status
	words, _ := src.Uint64s(2 * (N + 1))
	for k := range s.blocks {
		s.blocks[k] = w128{words[2*k], words[2*k+1]}
	}
	s.idx = N
	return s
}

// deriveAnnihilator recovers the minimal polynomial m with m(F)v = 0 for
// every state v. It is the running product of the factors needed to
// annihilate a seeded state and a series of random states.
func deriveAnnihilator() (poly, error) {
	m := newPoly(0)
	m.set(0)
	src := bitgen.NewSplitMix(0x5eed0d5f317)
	for round := 0; round < annihilatorRounds; round++ {
		var v status
		if round == 0 {
			v = seededStatus(0x9e3779b9)
		} else {
			v = randomStatus(src)
		}
		if m.degree() > 0 {
			v = v.apply(m)
		}
		q, err := factorOut(v)
		if err != nil {
			return nil, err
		}
		if q.degree() > 0 {
			m = m.mul(q)
		}
	}
	return m, nil
}

// factorOut returns q with q(F)v = 0. Each round runs Berlekamp-Massey on
// one output bit, divides that factor out of v and moves on to the next bit
// until nothing is left.
func factorOut(v status) (poly, error) {
	const n = 2*stateBits + 64
	q := newPoly(0)
	q.set(0)
	for b := 0; b < 128 && !v.isZero(); b++ {
		f := berlekampMassey(outputBits(v, b, n), n)
		if f.degree() <= 0 {
			continue
		}
		q = q.mul(f)
		v = v.apply(f)
	}
	if !v.isZero() {
		return nil, errors.New("annihilator not found")
	}
	return q, nil
}

// outputBits steps a copy of s n times and records bit b of each produced
// block, reversed.
func outputBits(s status, b, n int) poly {
	rev := newPoly(n)
	half, shift := b>>6, uint(b)&63
	for k := 0; k < n; k++ {
		blk := s.step()
		if blk[half]>>shift&1 == 1 {
			rev.set(n - 1 - k)
		}
	}
	return rev
}

// berlekampMassey returns the minimal polynomial annihilating the first n
// bits of a sequence, as x^L C(1/x) for the shortest connection polynomial
// C. rev holds the sequence reversed: bit n-1-k of rev is term k.
func berlekampMassey(rev poly, n int) poly {
	c := newPoly(n + 64)
	b := newPoly(n + 64)
	t := newPoly(n + 64)
	c.set(0)
	b.set(0)
	l, m := 0, 1
	for k := 0; k < n; k++ {
		base := n - 1 - k
		var acc uint64
		for w := 0; w <= l>>6; w++ {
			if c[w] != 0 {
				acc ^= c[w] & extract(rev, base+64*w)
			}
		}
		if bits.OnesCount64(acc)&1 == 0 {
			m++
			continue
		}
		if 2*l <= k {
			copy(t, c)
			c.xorShifted(b[:l>>6+1], m)
			l = k + 1 - l
			b, t = t, b
			m = 1
		} else {
			c.xorShifted(b[:b.degree()>>6+1], m)
			m++
		}
	}

	out := newPoly(l)
	for i := 0; i <= l; i++ {
		if c.coeff(l-i) == 1 {
			out.set(i)
		}
	}
	return out
}

// extract reads 64 bits of p starting at bit pos.
func extract(p poly, pos int) uint64 {
	w, s := pos>>6, uint(pos)&63
	if w >= len(p) {
		return 0
	}
	v := p[w] >> s
	if s != 0 && w+1 < len(p) {
		v |= p[w+1] << (64 - s)
	}
	return v
}

func trimmed(p poly) poly {
	return p[:p.degree()/64+1]
}

func polyEqual(a, b poly) bool {
	a, b = trimmed(a), trimmed(b)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// polyHex writes p highest coefficient first, the inverse of polyFromHex.
func polyHex(p poly) string {
	p = trimmed(p)
	var b strings.Builder
	fmt.Fprintf(&b, "%x", p[len(p)-1])
	for w := len(p) - 2; w >= 0; w-- {
		fmt.Fprintf(&b, "%016x", p[w])
	}
	return b.String()
}

func hexConst(b *strings.Builder, name, doc, h string) {
	b.WriteString(doc)
	fmt.Fprintf(b, "const %s = \"\" +\n", name)
	for i := 0; i < len(h); i += 64 {
		end := i + 64
		if end > len(h) {
			end = len(h)
		}
		fmt.Fprintf(b, "\t%q", h[i:end])
		if end < len(h) {
			b.WriteString(" +")
		}
		b.WriteString("\n")
	}
}

func writeJumpTable(path string, m, jump poly) error {
	var b strings.Builder
	b.WriteString("// Code generated by go test -run TestJumpTable -update. DO NOT EDIT.\n\npackage dsfmt\n\n")
	b.WriteString("// annihilatorDegree is the degree of the minimal polynomial of the recurrence.\n")
	fmt.Fprintf(&b, "const annihilatorDegree = %d\n\n", m.degree())
	hexConst(&b, "annihilatorHex", "// annihilatorHex is the minimal polynomial m(x) of the recurrence, highest\n// coefficient first.\n", polyHex(m))
	b.WriteString("\n")
	hexConst(&b, "jumpHex", "// jumpHex is x^(2^JumpExponent) mod m(x), highest coefficient first.\n", polyHex(jump))
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func TestJumpTable(t *testing.T) {
	if testing.Short() && !*updateJumpTable {
		t.Skip("derivation runs Berlekamp-Massey over the full state")
	}
	m, err := deriveAnnihilator()
	if err != nil {
		t.Fatal(err)
	}
	jump := newReducer(m).powX(new(big.Int).Lsh(big.NewInt(1), JumpExponent))
	if *updateJumpTable {
		if err := writeJumpTable("jump_table.go", m, jump); err != nil {
			t.Fatal(err)
		}
		return
	}
	red, p := jumpTables()
	if !polyEqual(m, red.m) {
		t.Fatalf("derived annihilator of degree %d differs from the table (degree %d)", m.degree(), red.deg)
	}
	if !polyEqual(jump, p) {
		t.Fatal("derived jump polynomial differs from the table")
	}
}

func TestJumpTableConsistent(t *testing.T) {
	red, p := jumpTables()
	if red.deg != annihilatorDegree {
		t.Fatalf("table degree = %d, want %d", red.deg, annihilatorDegree)
	}
	want := red.powX(new(big.Int).Lsh(big.NewInt(1), JumpExponent))
	if !polyEqual(p, want) {
		t.Fatal("jumpHex is not x^(2^128) mod annihilatorHex")
	}
	if polyHex(p) != jumpHex || polyHex(red.m) != annihilatorHex {
		t.Fatal("polyHex does not invert polyFromHex")
	}
}

func TestPow(t *testing.T) {
	red, p := jumpTables()
	for _, e := range []uint64{0, 1, 2, 3, 7} {
		want := red.powX(new(big.Int).Lsh(new(big.Int).SetUint64(e), JumpExponent))
		if got := red.pow(p, e); !polyEqual(got, want) {
			t.Fatalf("J^%d mod m != x^(%d*2^128) mod m", e, e)
		}
	}
}

func TestBerlekampMassey(t *testing.T) {
	// s_k = s_{k-1} ^ s_{k-3} is annihilated by x^3 + x^2 + 1.
	const n = 40
	seq := []uint64{1, 0, 0}
	for k := 3; k < n; k++ {
		seq = append(seq, seq[k-1]^seq[k-3])
	}
	rev := newPoly(n)
	for k, v := range seq {
		if v == 1 {
			rev.set(n - 1 - k)
		}
	}
	got := berlekampMassey(rev, n)
	if got.degree() != 3 || got.coeff(3) != 1 || got.coeff(2) != 1 || got.coeff(1) != 0 || got.coeff(0) != 1 {
		t.Fatalf("berlekampMassey = %b", trimmed(got))
	}
}
