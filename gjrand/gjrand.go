// Package gjrand implements David Blackman's gjrand64 chaotic generator.
// It has no jump or advance; streams are separated by entropy alone.
package gjrand

import (
	"fmt"
	"math/bits"

	"github.com/moontrade/bitgen"
	"github.com/moontrade/bitgen/logger"
)

const (
	Name = "gjrand"

	// Warmup is the number of transitions discarded after seeding.
	Warmup = 14

	seedS2  = 2000001
	counter = 0x55aa96a5
)

type Engine struct {
	s     [4]uint64
	split bitgen.Splitter
}

var _ bitgen.Engine = (*Engine)(nil)

// NewEngine seeds an engine from two entropy words.
func NewEngine(entropy bitgen.Entropy) (*Engine, error) {
	words, err := bitgen.Uint64s(entropy, 2)
	if err != nil {
		return nil, fmt.Errorf("%s seed: %w", Name, err)
	}
	e := &Engine{}
	e.Seed(words[0], words[1])
	logger.Debug("algorithm", Name, "seeded")
	return e, nil
}

func New(entropy bitgen.Entropy) (*bitgen.Generator[*Engine], error) {
	e, err := NewEngine(entropy)
	if err != nil {
		return nil, err
	}
	return bitgen.New(e), nil
}

// Seed loads the two seed words next to fixed constants and runs the warm-up.
func (e *Engine) Seed(s0, s1 uint64) {
	e.s = [4]uint64{s0, s1, seedS2, 0}
	e.split.Reset()
	for i := 0; i < Warmup; i++ {
		next(&e.s)
	}
}

func next(s *[4]uint64) uint64 {
	s[1] += s[2]
	s[0] = bits.RotateLeft64(s[0], 32)
	s[2] ^= s[1]
	s[3] += counter
	s[0] += s[1]
	s[2] = bits.RotateLeft64(s[2], 23)
	s[1] ^= s[0]
	s[0] += s[2]
	s[1] = bits.RotateLeft64(s[1], 19)
	s[2] += s[0]
	s[1] += s[3]
	return s[0]
}

func (e *Engine) Algorithm() string { return Name }

func (e *Engine) NextUint64() uint64 { return next(&e.s) }

func (e *Engine) NextUint32() uint32 {
	if v, ok := e.split.Take(); ok {
		return v
	}
	return e.split.Split(next(&e.s))
}

func (e *Engine) NextDouble() float64 { return bitgen.Uint64ToDouble(next(&e.s)) }

func (e *Engine) NextRaw() uint64 { return next(&e.s) }

func (e *Engine) State() bitgen.State {
	st := bitgen.State{
		Algorithm: Name,
		Words:     append([]uint64(nil), e.s[:]...),
	}
	e.split.SaveTo(&st.Aux)
	return st
}

func (e *Engine) SetState(s bitgen.State) error {
	if err := s.Check(Name, 4); err != nil {
		logger.WarnErr(err, "algorithm", Name, "rejected state")
		return err
	}
	copy(e.s[:], s.Words)
	e.split = bitgen.SplitterOf(s.Aux)
	return nil
}
