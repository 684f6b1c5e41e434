// Package registry maps algorithm names to engine constructors so generators
// can be built from configuration and restored from a serialized state whose
// algorithm is not known in advance.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/moontrade/bitgen"
	"github.com/moontrade/bitgen/dsfmt"
	"github.com/moontrade/bitgen/gjrand"
	"github.com/moontrade/bitgen/jsf64"
	"github.com/moontrade/bitgen/pcg32"
	"github.com/tidwall/match"
)

var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Entry describes one algorithm.
type Entry struct {
	Name string
	// Seed builds a generator from entropy.
	Seed func(entropy bitgen.Entropy) (bitgen.BitGenerator, error)
	// Blank returns an unseeded generator to restore a state into.
	Blank func() bitgen.BitGenerator
	// Jumps reports whether JumpedGenerator is supported.
	Jumps bool
}

var (
	mu      sync.RWMutex
	entries = map[string]Entry{}
)

func init() {
	Register(Entry{
		Name:  pcg32.Name,
		Seed:  seeder(pcg32.New),
		Blank: func() bitgen.BitGenerator { return bitgen.New(&pcg32.Engine{}) },
		Jumps: true,
	})
	Register(Entry{
		Name:  gjrand.Name,
		Seed:  seeder(gjrand.New),
		Blank: func() bitgen.BitGenerator { return bitgen.New(&gjrand.Engine{}) },
	})
	Register(Entry{
		Name:  jsf64.Name,
		Seed:  seeder(jsf64.New),
		Blank: func() bitgen.BitGenerator { return bitgen.New(&jsf64.Engine{}) },
	})
	Register(Entry{
		Name:  dsfmt.Name,
		Seed:  seeder(dsfmt.New),
		Blank: func() bitgen.BitGenerator { return bitgen.New(&dsfmt.Engine{}) },
		Jumps: true,
	})
}

func seeder[E bitgen.Engine](fn func(bitgen.Entropy) (*bitgen.Generator[E], error)) func(bitgen.Entropy) (bitgen.BitGenerator, error) {
	return func(entropy bitgen.Entropy) (bitgen.BitGenerator, error) {
		g, err := fn(entropy)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
}

// Register adds or replaces an entry.
func Register(e Entry) {
	mu.Lock()
	entries[e.Name] = e
	mu.Unlock()
}

// Lookup returns the entry registered under name.
func Lookup(name string) (Entry, error) {
	mu.RLock()
	e, ok := entries[name]
	mu.RUnlock()
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return e, nil
}

// Names returns the registered algorithm names in sorted order.
func Names() []string {
	return Match("*")
}

// Match returns the sorted names matching a glob pattern such as "pcg*" or
// "j?f64".
func Match(pattern string) []string {
	mu.RLock()
	names := make([]string, 0, len(entries))
	for name := range entries {
		if match.Match(name, pattern) {
			names = append(names, name)
		}
	}
	mu.RUnlock()
	sort.Strings(names)
	return names
}

// New seeds a generator of the named algorithm.
func New(name string, entropy bitgen.Entropy) (bitgen.BitGenerator, error) {
	e, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return e.Seed(entropy)
}

// RestoreState builds a generator of the state's algorithm positioned at s.
func RestoreState(s bitgen.State) (bitgen.BitGenerator, error) {
	e, err := Lookup(s.Algorithm)
	if err != nil {
		return nil, err
	}
	g := e.Blank()
	if err := g.SetState(s); err != nil {
		return nil, err
	}
	return g, nil
}

// Restore decodes a JSON state of any registered algorithm.
func Restore(data []byte) (bitgen.BitGenerator, error) {
	name := bitgen.PeekAlgorithm(data)
	if _, err := Lookup(name); err != nil {
		return nil, err
	}
	s, err := bitgen.UnmarshalState(data)
	if err != nil {
		return nil, fmt.Errorf("%s state: %w", name, err)
	}
	return RestoreState(s)
}
