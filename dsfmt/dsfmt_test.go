package dsfmt

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/moontrade/bitgen"
)

func newTestEngine(t testing.TB, seed uint64) *Engine {
	t.Helper()
	e, err := NewEngine(bitgen.NewSplitMix(seed))
	if err != nil {
		t.Fatal(err)
	}
	return e
}

// genRandAll is the straight-line form of one pass over the blocks.
func genRandAll(s *status) {
	lung := s.blocks[N]
	var i int
	for i = 0; i < N-pos1; i++ {
		s.blocks[i] = doRecursion(s.blocks[i], s.blocks[i+pos1], &lung)
	}
	for ; i < N; i++ {
		s.blocks[i] = doRecursion(s.blocks[i], s.blocks[i+pos1-N], &lung)
	}
	s.blocks[N] = lung
}

// canonical rotates s so the next block to regenerate sits at index 0.
// States that differ only by rotation produce the same output.
func canonical(s status) status {
	var c status
	c.add(&s, 0)
	return c
}

func TestRefillMatchesFullPass(t *testing.T) {
	e := newTestEngine(t, 1)
	ref := e.st
	for pass := 0; pass < 3; pass++ {
		genRandAll(&ref)
		for i := 0; i < N64; i++ {
			got := e.NextRaw()
			want := ref.blocks[i/2][i%2]
			if got != want {
				t.Fatalf("pass %d draw %d = %#x, want %#x", pass, i, got, want)
			}
		}
	}
}

func TestOutputRanges(t *testing.T) {
	e := newTestEngine(t, 2)
	for i := 0; i < 5*N64; i++ {
		raw := e.NextRaw()
		if raw&^lowMask != highConst {
			t.Fatalf("raw draw %d = %#x is not in [1, 2)", i, raw)
		}
		d := e.NextDouble()
		if d < 0 || d >= 1 {
			t.Fatalf("NextDouble() = %v, want in [0, 1)", d)
		}
	}
}

func TestDrawDerivations(t *testing.T) {
	a := newTestEngine(t, 3)
	b := newTestEngine(t, 3)

	r1, r2 := b.NextRaw(), b.NextRaw()
	if got, want := a.NextUint64(), uint64(uint32(r1>>16))<<32|uint64(uint32(r2>>16)); got != want {
		t.Fatalf("NextUint64 = %#x, want %#x", got, want)
	}
	r3 := b.NextRaw()
	if got, want := a.NextUint32(), uint32(r3>>16); got != want {
		t.Fatalf("NextUint32 = %#x, want %#x", got, want)
	}
	r4 := b.NextRaw()
	if got, want := a.NextDouble(), math.Float64frombits(r4)-1; got != want {
		t.Fatalf("NextDouble = %v, want %v", got, want)
	}
}

func TestBufferBoundary(t *testing.T) {
	e := newTestEngine(t, 4)
	if e.bufferLoc != N64 {
		t.Fatalf("fresh bufferLoc = %d, want %d", e.bufferLoc, N64)
	}
	for i := 0; i < N64; i++ {
		e.NextDouble()
	}
	if e.refills != 1 {
		t.Fatalf("refills after %d draws = %d, want 1", N64, e.refills)
	}
	if e.bufferLoc != N64 {
		t.Fatalf("bufferLoc after %d draws = %d, want %d", N64, e.bufferLoc, N64)
	}
	e.NextDouble()
	if e.refills != 2 {
		t.Fatalf("refills after %d draws = %d, want 2", N64+1, e.refills)
	}
	if e.bufferLoc != 1 {
		t.Fatalf("bufferLoc = %d, want 1", e.bufferLoc)
	}
}

func TestDeterminism(t *testing.T) {
	a := newTestEngine(t, 5)
	b := newTestEngine(t, 5)
	for i := 0; i < 2000; i++ {
		if x, y := a.NextUint64(), b.NextUint64(); x != y {
			t.Fatalf("draw %d: %#x != %#x", i, x, y)
		}
	}
}

func TestSeedUint32(t *testing.T) {
	var a, b Engine
	a.SeedUint32(4357)
	b.SeedUint32(4357)
	var c Engine
	c.SeedUint32(4358)
	same := 0
	for i := 0; i < N64; i++ {
		x, y, z := a.NextRaw(), b.NextRaw(), c.NextRaw()
		if x != y {
			t.Fatalf("draw %d differs for equal seeds", i)
		}
		if x == z {
			same++
		}
	}
	if same == N64 {
		t.Fatal("different seeds produced the same stream")
	}
}

func TestEntropyLength(t *testing.T) {
	if _, err := NewEngine(bitgen.Words{1, 2}); !errors.Is(err, bitgen.ErrEntropyLength) {
		t.Fatalf("NewEngine error = %v", err)
	}
}

func TestAnnihilatorCoversSeededStates(t *testing.T) {
	red, _ := jumpTables()
	for _, seed := range []uint32{1, 42, 0xdeadbeef} {
		s := seededStatus(seed)
		if z := s.apply(red.m); !z.isZero() {
			t.Fatalf("seed %#x: m(F)v != 0", seed)
		}
	}
	e := newTestEngine(t, 6)
	e.NextDouble()
	if z := e.st.apply(red.m); !z.isZero() {
		t.Fatal("m(F)v != 0 for an engine state")
	}
}

func TestPolynomialAdvanceMatchesStepping(t *testing.T) {
	for _, steps := range []int64{0, 1, 2, 190, 191, 1000, 12345} {
		a := newTestEngine(t, 7)
		b := newTestEngine(t, 7)
		a.advanceSteps(big.NewInt(steps))
		for i := int64(0); i < steps; i++ {
			b.st.step()
		}
		if canonical(a.st) != canonical(b.st) {
			t.Fatalf("advance by %d steps diverges from stepping", steps)
		}
		for i := 0; i < N64+5; i++ {
			if x, y := a.NextRaw(), b.NextRaw(); x != y {
				t.Fatalf("advance by %d steps: draw %d differs", steps, i)
			}
		}
	}
}

func TestJumpComposition(t *testing.T) {
	e := newTestEngine(t, 8)
	two, err := e.Jumped(2)
	if err != nil {
		t.Fatal(err)
	}
	one, _ := e.Jumped(1)
	oneone, _ := one.Jumped(1)
	if canonical(two.st) != canonical(oneone.st) {
		t.Fatal("Jumped(2) != Jumped(1).Jumped(1)")
	}
	three, _ := e.Jumped(3)
	oneoneone, _ := oneone.Jumped(1)
	if canonical(three.st) != canonical(oneoneone.st) {
		t.Fatal("Jumped(3) != three single jumps")
	}

	// 2^128 steps through the generic path agree with the jump polynomial.
	c := *e
	c.advanceSteps(new(big.Int).Lsh(big.NewInt(1), JumpExponent))
	if canonical(c.st) != canonical(one.st) {
		t.Fatal("Jumped(1) != advance by 2^128 steps")
	}
}

func TestJumped(t *testing.T) {
	e := newTestEngine(t, 9)
	for i := 0; i < 10; i++ {
		e.NextDouble()
	}
	before := e.State()

	j, err := e.Jumped(1)
	if err != nil {
		t.Fatal(err)
	}
	if j.bufferLoc != N64 {
		t.Fatalf("jumped bufferLoc = %d, want %d", j.bufferLoc, N64)
	}
	after := e.State()
	for i := range before.Words {
		if before.Words[i] != after.Words[i] {
			t.Fatal("Jumped mutated the source engine")
		}
	}
	if after.Aux.BufferLoc != before.Aux.BufferLoc {
		t.Fatal("Jumped moved the source cache cursor")
	}

	e.bufferLoc = N64
	for i := 0; i < 4*N64; i++ {
		if e.NextRaw() == j.NextRaw() {
			t.Fatalf("jumped stream overlaps at offset %d", i)
		}
	}

	if _, err := e.Jumped(-1); !errors.Is(err, bitgen.ErrNegativeJump) {
		t.Fatalf("Jumped(-1) error = %v", err)
	}
}

func TestStateRoundTrip(t *testing.T) {
	a := newTestEngine(t, 10)
	for i := 0; i < 100; i++ {
		a.NextDouble()
	}
	b := &Engine{}
	if err := b.SetState(a.State()); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3*N64; i++ {
		if x, y := a.NextRaw(), b.NextRaw(); x != y {
			t.Fatalf("draw %d: %#x != %#x", i, x, y)
		}
	}
}

func TestSetStateRejects(t *testing.T) {
	e := newTestEngine(t, 11)
	e.NextDouble()
	good := e.State()

	corrupt := func(f func(s *bitgen.State)) bitgen.State {
		s := good.Clone()
		f(&s)
		return s
	}
	tests := []struct {
		name  string
		state bitgen.State
		err   error
	}{
		{"algorithm", corrupt(func(s *bitgen.State) { s.Algorithm = "pcg32" }), bitgen.ErrAlgorithmMismatch},
		{"words", corrupt(func(s *bitgen.State) { s.Words = s.Words[:10] }), bitgen.ErrWordCount},
		{"index high", corrupt(func(s *bitgen.State) { s.Aux.Index = N + 1 }), bitgen.ErrInvalidState},
		{"index negative", corrupt(func(s *bitgen.State) { s.Aux.Index = -1 }), bitgen.ErrInvalidState},
		{"short cache", corrupt(func(s *bitgen.State) { s.Aux.Buffer = s.Aux.Buffer[:N64-1] }), bitgen.ErrInvalidState},
		{"buffer_loc", corrupt(func(s *bitgen.State) { s.Aux.BufferLoc = N64 + 1 }), bitgen.ErrInvalidState},
		{"exponent", corrupt(func(s *bitgen.State) { s.Words[0] = 0 }), bitgen.ErrInvalidState},
		{"cache entry", corrupt(func(s *bitgen.State) { s.Aux.Buffer[N64-1] = 0 }), bitgen.ErrInvalidState},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := e.SetState(tt.state); !errors.Is(err, tt.err) {
				t.Fatalf("SetState error = %v, want %v", err, tt.err)
			}
			now := e.State()
			for i := range good.Words {
				if now.Words[i] != good.Words[i] {
					t.Fatal("rejected state mutated the engine")
				}
			}
			if now.Aux.BufferLoc != good.Aux.BufferLoc || now.Aux.Index != good.Aux.Index {
				t.Fatal("rejected state mutated the cursors")
			}
		})
	}
}

func BenchmarkNextDouble(b *testing.B) {
	e := newTestEngine(b, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.NextDouble()
	}
}

func BenchmarkJump(b *testing.B) {
	e := newTestEngine(b, 1)
	jumpTables()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Jump(1)
	}
}
