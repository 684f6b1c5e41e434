package bitgen

import "encoding/binary"

// Rand is the convenience surface most callers want from a generator.
type Rand interface {
	Int() int
	Uint64() uint64
	Uint32() uint32
	Float64() float64
	Read([]byte) (n int, err error)
}

// Source adapts a BitGenerator to Rand and io.Reader. Every call draws
// from the wrapped generator, so a Source shares its position.
type Source struct {
	g BitGenerator
}

var _ Rand = Source{}

func NewSource(g BitGenerator) Source {
	return Source{g: g}
}

func (s Source) Uint32() uint32 { return s.g.NextUint32() }

func (s Source) Uint64() uint64 { return s.g.NextUint64() }

// Int returns a non-negative int on every platform width.
func (s Source) Int() int {
	return int(uint(s.g.NextUint64()) << 1 >> 1)
}

func (s Source) Float64() float64 { return s.g.NextDouble() }

// Read fills p with little-endian 64-bit draws. The unused bytes of the
// final draw are discarded. It never fails.
func (s Source) Read(p []byte) (n int, err error) {
	n = len(p)
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, s.g.NextUint64())
		p = p[8:]
	}
	if len(p) > 0 {
		var last [8]byte
		binary.LittleEndian.PutUint64(last[:], s.g.NextUint64())
		copy(p, last[:])
	}
	return n, nil
}
