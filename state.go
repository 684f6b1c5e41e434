package bitgen

import (
	"github.com/tidwall/gjson"
)

// State is the serialized form of an engine. It is self-describing: feeding
// the output of State() back through SetState reproduces the exact future
// output of the engine.
//
//easyjson:json
type State struct {
	// Algorithm names the engine that produced the state
	Algorithm string `json:"algorithm"`
	// Words holds the core state words in engine order.
	Words []uint64 `json:"core_words"`
	Aux   Aux      `json:"auxiliary_flags"`
}

// Aux holds the auxiliary fields. Engines ignore the fields they do not use.
//
//easyjson:json
type Aux struct {
	// HasUint32 and Uinteger carry the Splitter cache.
	HasUint32 bool   `json:"has_uint32"`
	Uinteger  uint32 `json:"uinteger"`

	// Index, BufferLoc and Buffer carry the DSFMT block cursor and double
	// cache. Buffer holds the IEEE-754 bit patterns of the cached doubles.
	Index     int      `json:"index"`
	BufferLoc int      `json:"buffer_loc"`
	Buffer    []uint64 `json:"buffer,omitempty"`
}

// Check verifies the algorithm tag and the number of core words.
func (s *State) Check(algorithm string, words int) error {
	if s.Algorithm != algorithm {
		return errMismatch(algorithm, s.Algorithm)
	}
	if len(s.Words) != words {
		return errWords(algorithm, words, len(s.Words))
	}
	return nil
}

// Clone returns a deep copy.
func (s State) Clone() State {
	c := s
	if s.Words != nil {
		c.Words = append([]uint64(nil), s.Words...)
	}
	if s.Aux.Buffer != nil {
		c.Aux.Buffer = append([]uint64(nil), s.Aux.Buffer...)
	}
	return c
}

// PeekAlgorithm returns the algorithm tag of a JSON encoded State without
// decoding the rest of the document.
func PeekAlgorithm(data []byte) string {
	return gjson.GetBytes(data, "algorithm").String()
}
