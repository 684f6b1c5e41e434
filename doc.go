// Package bitgen provides interchangeable pseudo-random bit generators.
//
// Every engine (PCG32, GJrand, JSF64, DSFMT) is wrapped by a Generator
// which forwards draws unchanged, so consumers can be written against the
// BitGenerator contract without knowing which algorithm is active. Engines
// are not safe for concurrent use; see Guard.
//
// These generators are statistical-quality only and must never be used
// where unpredictability matters.
package bitgen
