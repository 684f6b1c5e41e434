package bitgen

import (
	"fmt"
)

// Generator binds one engine to the BitGenerator contract. Every draw is
// forwarded unchanged to the engine.
type Generator[E Engine] struct {
	engine E
	funcs  Funcs
}

var _ BitGenerator = (*Generator[Engine])(nil)

// New wraps engine. The function table is fixed for the life of the
// generator.
func New[E Engine](engine E) *Generator[E] {
	return &Generator[E]{
		engine: engine,
		funcs: Funcs{
			NextUint64: engine.NextUint64,
			NextUint32: engine.NextUint32,
			NextDouble: engine.NextDouble,
			NextRaw:    engine.NextRaw,
		},
	}
}

// Engine returns the wrapped engine.
func (g *Generator[E]) Engine() E { return g.engine }

// Funcs returns the bound draw functions.
func (g *Generator[E]) Funcs() Funcs { return g.funcs }

func (g *Generator[E]) Algorithm() string   { return g.engine.Algorithm() }
func (g *Generator[E]) NextUint32() uint32  { return g.engine.NextUint32() }
func (g *Generator[E]) NextUint64() uint64  { return g.engine.NextUint64() }
func (g *Generator[E]) NextDouble() float64 { return g.engine.NextDouble() }
func (g *Generator[E]) NextRaw() uint64     { return g.engine.NextRaw() }

// Uint64 makes the generator a math/rand/v2 Source.
func (g *Generator[E]) Uint64() uint64 { return g.engine.NextUint64() }

func (g *Generator[E]) State() State { return g.engine.State() }

func (g *Generator[E]) SetState(s State) error { return g.engine.SetState(s) }

// Advance steps the engine forward by delta without producing output.
func (g *Generator[E]) Advance(delta uint64) error {
	a, ok := any(g.engine).(Advancer)
	if !ok {
		return fmt.Errorf("%s advance: %w", g.engine.Algorithm(), ErrUnsupported)
	}
	a.Advance(delta)
	return nil
}

// Jumped returns a new generator over a jumped copy of the engine. The
// receiver is left untouched.
func (g *Generator[E]) Jumped(jumps int) (*Generator[E], error) {
	j, ok := any(g.engine).(Jumper[E])
	if !ok {
		return nil, fmt.Errorf("%s jump: %w", g.engine.Algorithm(), ErrUnsupported)
	}
	e, err := j.Jumped(jumps)
	if err != nil {
		return nil, err
	}
	return New(e), nil
}

func (g *Generator[E]) JumpedGenerator(jumps int) (BitGenerator, error) {
	j, err := g.Jumped(jumps)
	if err != nil {
		return nil, err
	}
	return j, nil
}
