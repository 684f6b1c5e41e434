package dsfmt

import "math/bits"

// KeyWords is the number of uint32 entropy words consumed at construction.
const KeyWords = 2 * N64

// size of the status array in uint32 words, lung included
const size32 = (N + 1) * 4

func iniFunc1(x uint32) uint32 { return (x ^ (x >> 27)) * 1664525 }

func iniFunc2(x uint32) uint32 { return (x ^ (x >> 27)) * 1566083941 }

// initByArray whitens key across the whole status array. The status is
// viewed as little-endian uint32 words.
func (s *status) initByArray(key []uint32) {
	const (
		lag = 11
		mid = (size32 - lag) / 2
	)
	var p [size32]uint32
	for i := range p {
		p[i] = 0x8b8b8b8b
	}

	count := size32
	if len(key)+1 > size32 {
		count = len(key) + 1
	}

	r := iniFunc1(p[0] ^ p[mid%size32] ^ p[(size32-1)%size32])
	p[mid%size32] += r
	r += uint32(len(key))
	p[(mid+lag)%size32] += r
	p[0] = r
	count--

	i, j := 1, 0
	for ; j < count && j < len(key); j++ {
		r = iniFunc1(p[i] ^ p[(i+mid)%size32] ^ p[(i+size32-1)%size32])
		p[(i+mid)%size32] += r
		r += key[j] + uint32(i)
		p[(i+mid+lag)%size32] += r
		p[i] = r
		i = (i + 1) % size32
	}
	for ; j < count; j++ {
		r = iniFunc1(p[i] ^ p[(i+mid)%size32] ^ p[(i+size32-1)%size32])
		p[(i+mid)%size32] += r
		r += uint32(i)
		p[(i+mid+lag)%size32] += r
		p[i] = r
		i = (i + 1) % size32
	}
	for j = 0; j < size32; j++ {
		r = iniFunc2(p[i] + p[(i+mid)%size32] + p[(i+size32-1)%size32])
		p[(i+mid)%size32] ^= r
		r -= uint32(i)
		p[(i+mid+lag)%size32] ^= r
		p[i] = r
		i = (i + 1) % size32
	}

	s.load(&p)
}

// initGenRand fills the status from a single word with the Knuth
// multiplier.
func (s *status) initGenRand(seed uint32) {
	var p [size32]uint32
	p[0] = seed
	for i := 1; i < size32; i++ {
		p[i] = 1812433253*(p[i-1]^(p[i-1]>>30)) + uint32(i)
	}
	s.load(&p)
}

func (s *status) load(p *[size32]uint32) {
	for k := range s.blocks {
		s.blocks[k][0] = uint64(p[4*k]) | uint64(p[4*k+1])<<32
		s.blocks[k][1] = uint64(p[4*k+2]) | uint64(p[4*k+3])<<32
	}
	s.initialMask()
	s.certifyPeriod()
	s.idx = N
}

// initialMask forces every output word into the [1, 2) double range.
func (s *status) initialMask() {
	for k := 0; k < N; k++ {
		s.blocks[k][0] = s.blocks[k][0]&lowMask | highConst
		s.blocks[k][1] = s.blocks[k][1]&lowMask | highConst
	}
}

// certifyPeriod flips one lung bit when needed so the period is a multiple
// of 2^19937-1.
func (s *status) certifyPeriod() {
	lung := &s.blocks[N]
	inner := (lung[0]^fix1)&pcv1 ^ (lung[1]^fix2)&pcv2
	if bits.OnesCount64(inner)&1 == 1 {
		return
	}
	lung[1] ^= 1
}
