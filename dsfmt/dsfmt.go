// Package dsfmt implements the double precision SIMD-oriented Fast
// Mersenne Twister, dSFMT-19937.
//
// The recurrence produces doubles in [1, 2) directly from its state words.
// One pass over the 191 output blocks fills a cache of 382 doubles and every
// draw consumes from that cache. Jumps use the characteristic polynomial of
// the recurrence and cost one pass per coefficient rather than per step.
package dsfmt

import (
	"fmt"
	"math"
	"math/big"

	"github.com/moontrade/bitgen"
	"github.com/moontrade/bitgen/logger"
)

const Name = "dsfmt"

// StateWords is the number of core words in a serialized state: every
// block, lung included, as two uint64 words.
const StateWords = (N + 1) * 2

type Engine struct {
	st        status
	buffer    [N64]uint64
	bufferLoc int
	refills   uint64
}

var (
	_ bitgen.Engine          = (*Engine)(nil)
	_ bitgen.Jumper[*Engine] = (*Engine)(nil)
)

// NewEngine seeds an engine from KeyWords uint32 entropy words.
func NewEngine(entropy bitgen.Entropy) (*Engine, error) {
	key, err := bitgen.Uint32s(entropy, KeyWords)
	if err != nil {
		return nil, fmt.Errorf("%s seed: %w", Name, err)
	}
	e := &Engine{}
	e.SeedKey(key)
	logger.Debug("algorithm", Name, "key_words", len(key), "seeded")
	return e, nil
}

func New(entropy bitgen.Entropy) (*bitgen.Generator[*Engine], error) {
	e, err := NewEngine(entropy)
	if err != nil {
		return nil, err
	}
	return bitgen.New(e), nil
}

// SeedKey initializes the state from a key of any length. The cache is
// emptied.
func (e *Engine) SeedKey(key []uint32) {
	e.st.initByArray(key)
	e.bufferLoc = N64
}

// SeedUint32 initializes the state from a single word.
func (e *Engine) SeedUint32(seed uint32) {
	e.st.initGenRand(seed)
	e.bufferLoc = N64
}

// refill regenerates every output block and copies them into the cache.
func (e *Engine) refill() {
	for j := 0; j < N; j++ {
		blk := e.st.step()
		e.buffer[2*j] = blk[0]
		e.buffer[2*j+1] = blk[1]
	}
	e.bufferLoc = 0
	e.refills++
}

// next returns the bit pattern of the next cached double in [1, 2).
func (e *Engine) next() uint64 {
	if e.bufferLoc >= N64 {
		e.refill()
	}
	v := e.buffer[e.bufferLoc]
	e.bufferLoc++
	return v
}

func (e *Engine) Algorithm() string { return Name }

// NextDouble returns a double in [0, 1).
func (e *Engine) NextDouble() float64 {
	return math.Float64frombits(e.next()) - 1.0
}

// NextUint64 joins the NextUint32 bits of two draws, first draw high.
func (e *Engine) NextUint64() uint64 {
	hi := uint64(uint32(e.next() >> 16))
	return hi<<32 | uint64(uint32(e.next()>>16))
}

// NextUint32 takes mantissa bits 16..47 of one draw.
func (e *Engine) NextUint32() uint32 {
	return uint32(e.next() >> 16)
}

// NextRaw returns the bit pattern of a [1, 2) double.
func (e *Engine) NextRaw() uint64 {
	return e.next()
}

// Jump advances in place by jumps * 2^128 recurrence steps and empties the
// cache. The cost is one pass over the jump polynomial whatever the count.
func (e *Engine) Jump(jumps int) error {
	if jumps < 0 {
		return fmt.Errorf("%s jump %d: %w", Name, jumps, bitgen.ErrNegativeJump)
	}
	if jumps == 0 {
		return nil
	}
	e.st = e.st.apply(jumpsPolynomial(jumps))
	e.bufferLoc = N64
	return nil
}

// Jumped returns a jumped copy, leaving e untouched.
func (e *Engine) Jumped(jumps int) (*Engine, error) {
	c := *e
	if err := c.Jump(jumps); err != nil {
		return nil, err
	}
	logger.Debug("algorithm", Name, "jumps", jumps, "jumped")
	return &c, nil
}

// advanceSteps moves the recurrence forward by an arbitrary number of block
// steps through the polynomial machinery and empties the cache.
func (e *Engine) advanceSteps(steps *big.Int) {
	e.st = e.st.apply(stepsPolynomial(steps))
	e.bufferLoc = N64
}

func (e *Engine) State() bitgen.State {
	words := make([]uint64, 0, StateWords)
	for _, b := range e.st.blocks {
		words = append(words, b[0], b[1])
	}
	return bitgen.State{
		Algorithm: Name,
		Words:     words,
		Aux: bitgen.Aux{
			Index:     e.st.idx,
			BufferLoc: e.bufferLoc,
			Buffer:    append([]uint64(nil), e.buffer[:]...),
		},
	}
}

// SetState validates the whole blob before touching the engine: word and
// cache counts, cursor ranges, and the fixed exponent bits that keep every
// block and unread cache entry inside [1, 2).
func (e *Engine) SetState(s bitgen.State) error {
	if err := validate(s); err != nil {
		logger.WarnErr(err, "algorithm", Name, "rejected state")
		return err
	}
	for k := range e.st.blocks {
		e.st.blocks[k] = w128{s.Words[2*k], s.Words[2*k+1]}
	}
	e.st.idx = s.Aux.Index
	copy(e.buffer[:], s.Aux.Buffer)
	e.bufferLoc = s.Aux.BufferLoc
	return nil
}

func validate(s bitgen.State) error {
	if err := s.Check(Name, StateWords); err != nil {
		return err
	}
	aux := s.Aux
	if aux.Index < 0 || aux.Index > N {
		return fmt.Errorf("%w: %s index %d outside [0, %d]", bitgen.ErrInvalidState, Name, aux.Index, N)
	}
	if len(aux.Buffer) != N64 {
		return fmt.Errorf("%w: %s cache holds %d doubles, want %d", bitgen.ErrInvalidState, Name, len(aux.Buffer), N64)
	}
	if aux.BufferLoc < 0 || aux.BufferLoc > N64 {
		return fmt.Errorf("%w: %s buffer_loc %d outside [0, %d]", bitgen.ErrInvalidState, Name, aux.BufferLoc, N64)
	}
	for i, w := range s.Words[:2*N] {
		if w&^lowMask != highConst {
			return fmt.Errorf("%w: %s word %d has exponent bits %#x", bitgen.ErrInvalidState, Name, i, w&^lowMask)
		}
	}
	for i := aux.BufferLoc; i < N64; i++ {
		if aux.Buffer[i]&^lowMask != highConst {
			return fmt.Errorf("%w: %s cache entry %d is outside [1, 2)", bitgen.ErrInvalidState, Name, i)
		}
	}
	return nil
}
