package bitgen

// Splitter serves 32-bit draws from a 64-bit source by caching the unused
// half word. At most one half word is outstanding.
//
//	if v, ok := s.Take(); ok {
//		return v
//	}
//	return s.Split(next64())
type Splitter struct {
	HasUint32 bool
	Uinteger  uint32
}

// Take returns the cached half word and clears the cache.
func (s *Splitter) Take() (uint32, bool) {
	if !s.HasUint32 {
		return 0, false
	}
	s.HasUint32 = false
	return s.Uinteger, true
}

// Split caches the high half of v and returns the low half.
func (s *Splitter) Split(v uint64) uint32 {
	s.HasUint32 = true
	s.Uinteger = uint32(v >> 32)
	return uint32(v & 0xffffffff)
}

// Reset drops any cached half word.
func (s *Splitter) Reset() {
	s.HasUint32 = false
	s.Uinteger = 0
}

// SaveTo copies the cache into aux.
func (s Splitter) SaveTo(aux *Aux) {
	aux.HasUint32 = s.HasUint32
	aux.Uinteger = s.Uinteger
}

// SplitterOf returns the cache carried by aux.
func SplitterOf(aux Aux) Splitter {
	return Splitter{HasUint32: aux.HasUint32, Uinteger: aux.Uinteger}
}
