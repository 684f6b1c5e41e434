package bitgen

// Engine is one generation algorithm. Implementations own their state and
// are not safe for concurrent use.
type Engine interface {
	// Algorithm returns the tag written into serialized states.
	Algorithm() string
	NextUint64() uint64
	NextUint32() uint32
	// NextDouble returns a float64 in [0, 1).
	NextDouble() float64
	// NextRaw returns the engine's native-width output.
	NextRaw() uint64
	State() State
	// SetState restores a state produced by State. A rejected state leaves
	// the engine untouched.
	SetState(State) error
}

// Advancer is implemented by engines that can skip ahead an arbitrary
// number of steps without producing the intervening outputs.
type Advancer interface {
	Advance(delta uint64)
}

// Jumper is implemented by engines that can produce a copy whose stream does
// not overlap the original for an algorithm-defined distance.
type Jumper[E any] interface {
	Jumped(jumps int) (E, error)
}

// BitGenerator is the capability contract consumed by the sampling layer.
type BitGenerator interface {
	Algorithm() string
	NextUint32() uint32
	NextUint64() uint64
	NextDouble() float64
	NextRaw() uint64
	State() State
	SetState(State) error
	// Advance returns ErrUnsupported when the engine has no advance.
	Advance(delta uint64) error
	// JumpedGenerator returns ErrUnsupported when the engine has no jump.
	JumpedGenerator(jumps int) (BitGenerator, error)
}

// Funcs holds the four draw functions of a generator, bound at
// construction. Callers that only need raw draws can hold a Funcs instead of
// the generator itself.
type Funcs struct {
	NextUint64 func() uint64
	NextUint32 func() uint32
	NextDouble func() float64
	NextRaw    func() uint64
}
