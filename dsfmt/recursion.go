package dsfmt

// dSFMT-19937 parameters.
const (
	mexp = 19937
	// N is the number of 128-bit blocks that feed the output, not counting
	// the lung.
	N = (mexp-128)/104 + 1
	// N64 is the number of doubles produced by one pass over the blocks.
	N64 = N * 2

	pos1 = 117
	sl1  = 19
	sr   = 12

	msk1 = 0x000ffafffffffb3f
	msk2 = 0x000ffdfffc90fffd
	fix1 = 0x90014964b32f4329
	fix2 = 0x3b8d12ac548a7c7a
	pcv1 = 0x3d84e1ac0dc82880
	pcv2 = 0x0000000000000001

	lowMask   = 0x000fffffffffffff
	highConst = 0x3ff0000000000000
)

type w128 [2]uint64

// status is the recurrence state: N output blocks plus the lung in
// blocks[N]. idx is the block cursor in [0, N]; the next block to be
// regenerated is idx % N.
type status struct {
	blocks [N + 1]w128
	idx    int
}

func doRecursion(a, b w128, lung *w128) w128 {
	t0, t1 := a[0], a[1]
	l0, l1 := lung[0], lung[1]
	lung[0] = (t0 << sl1) ^ (l1 >> 32) ^ (l1 << 32) ^ b[0]
	lung[1] = (t1 << sl1) ^ (l0 >> 32) ^ (l0 << 32) ^ b[1]
	return w128{
		(lung[0] >> sr) ^ (lung[0] & msk1) ^ t0,
		(lung[1] >> sr) ^ (lung[1] & msk2) ^ t1,
	}
}

// step regenerates one block and returns it. N consecutive steps from a
// cursor at 0 are exactly one full pass of the generator.
func (s *status) step() w128 {
	i := s.idx % N
	j := i + pos1
	if j >= N {
		j -= N
	}
	s.blocks[i] = doRecursion(s.blocks[i], s.blocks[j], &s.blocks[N])
	s.idx = i + 1
	return s.blocks[i]
}

// add xors src into s. Both are read relative to their own cursor and s is
// written relative to the cursor at origin, so states taken at different
// points of one lineage combine in the same frame.
func (s *status) add(src *status, origin int) {
	diff := (src.idx%N - origin + N) % N
	for i := 0; i < N; i++ {
		p := i + diff
		if p >= N {
			p -= N
		}
		s.blocks[i][0] ^= src.blocks[p][0]
		s.blocks[i][1] ^= src.blocks[p][1]
	}
	s.blocks[N][0] ^= src.blocks[N][0]
	s.blocks[N][1] ^= src.blocks[N][1]
}

func (s *status) isZero() bool {
	for _, b := range s.blocks {
		if b[0]|b[1] != 0 {
			return false
		}
	}
	return true
}
