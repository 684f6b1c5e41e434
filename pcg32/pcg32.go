// Package pcg32 implements the PCG XSH-RR 64/32 generator: a 64-bit linear
// congruential generator whose 32-bit output is a permutation of the
// pre-update state. The stream can be advanced by any distance in
// O(log n) steps.
package pcg32

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/moontrade/bitgen"
	"github.com/moontrade/bitgen/logger"
)

const (
	Name = "pcg32"

	multiplier = 0x5851f42d4c957f2d // 6364136223846793005

	// JumpStep is the distance covered by one jump, derived from the golden
	// ratio.
	JumpStep = 0x9e3779b97f4a7c16
)

var mod64 = new(big.Int).Lsh(big.NewInt(1), 64)

// Engine holds the LCG state and stream increment. The increment is always
// odd.
type Engine struct {
	state uint64
	inc   uint64
}

var (
	_ bitgen.Engine          = (*Engine)(nil)
	_ bitgen.Advancer        = (*Engine)(nil)
	_ bitgen.Jumper[*Engine] = (*Engine)(nil)
)

// NewEngine seeds an engine from two entropy words: the initial state and
// the stream selector.
func NewEngine(entropy bitgen.Entropy) (*Engine, error) {
	words, err := bitgen.Uint64s(entropy, 2)
	if err != nil {
		return nil, fmt.Errorf("%s seed: %w", Name, err)
	}
	e := &Engine{}
	e.Seed(words[0], words[1])
	logger.Debug("algorithm", Name, "inc", e.inc, "seeded")
	return e, nil
}

// New returns a generator over a freshly seeded engine.
func New(entropy bitgen.Entropy) (*bitgen.Generator[*Engine], error) {
	e, err := NewEngine(entropy)
	if err != nil {
		return nil, err
	}
	return bitgen.New(e), nil
}

// Seed follows the reference pcg32_srandom construction. The stream
// selector is shifted and forced odd so every seed yields a full-period
// LCG.
func (e *Engine) Seed(initState, initSeq uint64) {
	e.state = 0
	e.inc = initSeq<<1 | 1
	e.step()
	e.state += initState
	e.step()
}

func (e *Engine) step() {
	e.state = e.state*multiplier + e.inc
}

func (e *Engine) Algorithm() string { return Name }

// NextUint32 performs one LCG step and permutes the old state.
func (e *Engine) NextUint32() uint32 {
	old := e.state
	e.step()
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	return bits.RotateLeft32(xorshifted, -int(old>>59))
}

// NextUint64 joins two consecutive 32-bit outputs, first one high.
func (e *Engine) NextUint64() uint64 {
	hi := uint64(e.NextUint32())
	return hi<<32 | uint64(e.NextUint32())
}

func (e *Engine) NextDouble() float64 {
	return bitgen.Uint64ToDouble(e.NextUint64())
}

func (e *Engine) NextRaw() uint64 {
	return uint64(e.NextUint32())
}

// Advance moves the stream delta steps forward. Each step is one 32-bit
// output. Passing -k (mod 2^64) undoes Advance(k).
func (e *Engine) Advance(delta uint64) {
	e.state = advanceLCG64(e.state, delta, multiplier, e.inc)
}

// AdvanceBig accepts any integer distance and reduces it modulo 2^64;
// negative distances step backwards.
func (e *Engine) AdvanceBig(delta *big.Int) error {
	if delta == nil {
		return fmt.Errorf("%s advance: %w", Name, bitgen.ErrNilDelta)
	}
	e.Advance(new(big.Int).Mod(delta, mod64).Uint64())
	return nil
}

// Jump advances in place by jumps*JumpStep.
func (e *Engine) Jump(jumps int) error {
	if jumps < 0 {
		return fmt.Errorf("%s jump %d: %w", Name, jumps, bitgen.ErrNegativeJump)
	}
	e.Advance(uint64(jumps) * JumpStep)
	return nil
}

// Jumped returns a copy advanced by jumps*JumpStep, leaving e untouched.
func (e *Engine) Jumped(jumps int) (*Engine, error) {
	c := *e
	if err := c.Jump(jumps); err != nil {
		return nil, err
	}
	logger.Debug("algorithm", Name, "jumps", jumps, "jumped")
	return &c, nil
}

// advanceLCG64 composes delta applications of x -> mult*x + plus by
// repeated squaring of the affine map.
func advanceLCG64(state, delta, curMult, curPlus uint64) uint64 {
	accMult := uint64(1)
	accPlus := uint64(0)
	for delta > 0 {
		if delta&1 != 0 {
			accMult *= curMult
			accPlus = accPlus*curMult + curPlus
		}
		curPlus = (curMult + 1) * curPlus
		curMult *= curMult
		delta >>= 1
	}
	return accMult*state + accPlus
}

// State returns {state, increment}.
func (e *Engine) State() bitgen.State {
	return bitgen.State{
		Algorithm: Name,
		Words:     []uint64{e.state, e.inc},
	}
}

// SetState rejects an even increment.
func (e *Engine) SetState(s bitgen.State) error {
	if err := s.Check(Name, 2); err != nil {
		logger.WarnErr(err, "algorithm", Name, "rejected state")
		return err
	}
	if s.Words[1]&1 == 0 {
		err := fmt.Errorf("%w: %s increment %#x is even", bitgen.ErrInvalidState, Name, s.Words[1])
		logger.WarnErr(err, "algorithm", Name, "rejected state")
		return err
	}
	e.state, e.inc = s.Words[0], s.Words[1]
	return nil
}
