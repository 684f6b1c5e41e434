package bitgen

import "sync"

// Guard is the exclusive-access token for a generator shared between
// goroutines. Engines never lock; callers that share one wrap every draw in
// Do.
type Guard[S any] struct {
	mu  sync.Mutex
	src S
}

func NewGuard[S any](src S) *Guard[S] {
	return &Guard[S]{src: src}
}

// Do runs fn with exclusive access to the guarded source.
func (g *Guard[S]) Do(fn func(src S)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.src)
}
