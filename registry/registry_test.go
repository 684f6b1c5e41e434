package registry

import (
	"errors"
	"reflect"
	"testing"

	"github.com/moontrade/bitgen"
)

func TestNames(t *testing.T) {
	want := []string{"dsfmt", "gjrand", "jsf64", "pcg32"}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern string
		want    []string
	}{
		{"pcg*", []string{"pcg32"}},
		{"j?f64", []string{"jsf64"}},
		{"*64", []string{"jsf64"}},
		{"*j*", []string{"gjrand", "jsf64"}},
		{"mt*", []string{}},
	}
	for _, tt := range tests {
		if got := Match(tt.pattern); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Match(%q) = %v, want %v", tt.pattern, got, tt.want)
		}
	}
}

func TestNewUnknown(t *testing.T) {
	if _, err := New("mt19937", bitgen.NewSplitMix(1)); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Fatalf("New error = %v", err)
	}
}

func TestRestore(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			g, err := New(name, bitgen.Hashed([]byte("registry")))
			if err != nil {
				t.Fatal(err)
			}
			g.NextUint32()
			g.NextDouble()

			data, err := bitgen.MarshalState(g.State(), nil)
			if err != nil {
				t.Fatal(err)
			}
			r, err := Restore(data)
			if err != nil {
				t.Fatal(err)
			}
			if r.Algorithm() != name {
				t.Fatalf("restored algorithm = %q", r.Algorithm())
			}
			for i := 0; i < 500; i++ {
				if a, b := g.NextUint32(), r.NextUint32(); a != b {
					t.Fatalf("draw %d: %#x != %#x", i, a, b)
				}
			}
		})
	}
}

func TestRestoreRejects(t *testing.T) {
	if _, err := Restore([]byte(`{"algorithm":"xorshift","core_words":[1]}`)); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Fatalf("unknown algorithm error = %v", err)
	}
	if _, err := Restore([]byte(`{"algorithm":"pcg32","core_words":[1]}`)); !errors.Is(err, bitgen.ErrWordCount) {
		t.Fatalf("short state error = %v", err)
	}
	if _, err := Restore([]byte(`{"algorithm":"pcg32","core_words":[1,2]}`)); !errors.Is(err, bitgen.ErrInvalidState) {
		t.Fatalf("even increment error = %v", err)
	}
	if _, err := Restore([]byte(`{"algorithm":"pcg32","core_words":[1,`)); err == nil {
		t.Fatal("truncated JSON accepted")
	}
}

func TestJumps(t *testing.T) {
	for _, name := range Names() {
		e, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		g, err := e.Seed(bitgen.NewSplitMix(3))
		if err != nil {
			t.Fatal(err)
		}
		_, err = g.JumpedGenerator(1)
		if e.Jumps && err != nil {
			t.Errorf("%s: JumpedGenerator error = %v", name, err)
		}
		if !e.Jumps && !errors.Is(err, bitgen.ErrUnsupported) {
			t.Errorf("%s: JumpedGenerator error = %v, want ErrUnsupported", name, err)
		}
	}
}
