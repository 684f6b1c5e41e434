package bitgen

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/zeebo/blake3"
)

// Entropy supplies seed material. Engines consume it once, at construction,
// and request exactly the number of words they need.
type Entropy interface {
	Uint32s(n int) ([]uint32, error)
	Uint64s(n int) ([]uint64, error)
}

// Uint64s draws n words from src and rejects a short or long answer.
func Uint64s(src Entropy, n int) ([]uint64, error) {
	words, err := src.Uint64s(n)
	if err != nil {
		return nil, err
	}
	if len(words) != n {
		return nil, fmt.Errorf("%w: want %d uint64 words, got %d", ErrEntropyLength, n, len(words))
	}
	return words, nil
}

// Uint32s draws n words from src and rejects a short or long answer.
func Uint32s(src Entropy, n int) ([]uint32, error) {
	words, err := src.Uint32s(n)
	if err != nil {
		return nil, err
	}
	if len(words) != n {
		return nil, fmt.Errorf("%w: want %d uint32 words, got %d", ErrEntropyLength, n, len(words))
	}
	return words, nil
}

// Words is a fixed list of seed words. The request must consume the list
// exactly. As uint32 words each uint64 contributes its low half first.
type Words []uint64

func (w Words) Uint64s(n int) ([]uint64, error) {
	if len(w) != n {
		return nil, fmt.Errorf("%w: have %d words, want %d", ErrEntropyLength, len(w), n)
	}
	return append([]uint64(nil), w...), nil
}

func (w Words) Uint32s(n int) ([]uint32, error) {
	if (n+1)/2 != len(w) {
		return nil, fmt.Errorf("%w: have %d words, want %d uint32 words", ErrEntropyLength, len(w), n)
	}
	out := make([]uint32, n)
	for i := range out {
		out[i] = uint32(w[i/2] >> (32 * uint(i&1)))
	}
	return out, nil
}

// SplitMix expands a single 64-bit seed into as many words as requested with
// the splitmix64 sequence. Successive calls continue the sequence.
type SplitMix struct {
	s uint64
}

func NewSplitMix(seed uint64) *SplitMix {
	return &SplitMix{s: seed}
}

func (m *SplitMix) next() uint64 {
	m.s += 0x9e3779b97f4a7c15
	z := m.s
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func (m *SplitMix) Uint64s(n int) ([]uint64, error) {
	out := make([]uint64, n)
	for i := range out {
		out[i] = m.next()
	}
	return out, nil
}

func (m *SplitMix) Uint32s(n int) ([]uint32, error) {
	out := make([]uint32, n)
	for i := 0; i < n; i += 2 {
		v := m.next()
		out[i] = uint32(v)
		if i+1 < n {
			out[i+1] = uint32(v >> 32)
		}
	}
	return out, nil
}

// readerEntropy decodes little-endian words from an unbounded reader.
type readerEntropy struct {
	r io.Reader
}

func (e readerEntropy) Uint64s(n int) ([]uint64, error) {
	buf := make([]byte, 8*n)
	if _, err := io.ReadFull(e.r, buf); err != nil {
		return nil, err
	}
	out := make([]uint64, n)
	for i := range out {
		out[i] = binary.LittleEndian.Uint64(buf[8*i:])
	}
	return out, nil
}

func (e readerEntropy) Uint32s(n int) ([]uint32, error) {
	buf := make([]byte, 4*n)
	if _, err := io.ReadFull(e.r, buf); err != nil {
		return nil, err
	}
	out := make([]uint32, n)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(buf[4*i:])
	}
	return out, nil
}

// Hashed derives an unbounded word stream from arbitrary seed bytes using
// the blake3 extendable output. Equal seeds give equal streams.
func Hashed(seed []byte) Entropy {
	h := blake3.New()
	_, _ = h.Write(seed)
	return readerEntropy{r: h.Digest()}
}

// SystemEntropy reads from the operating system's random source.
var SystemEntropy Entropy = readerEntropy{r: rand.Reader}
