package watch

import "sync"

// Guard discards results of loads that were superseded. Each Begin starts a
// new generation; only the latest token is live.
type Guard struct {
	mu  sync.Mutex
	gen uint64
	id  string
}

// Token identifies one load.
type Token struct {
	g   *Guard
	gen uint64
	id  string
}

// Begin starts a load for identity (for example a progress key) and
// invalidates every earlier token.
func (g *Guard) Begin(identity string) Token {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gen++
	g.id = identity
	return Token{g: g, gen: g.gen, id: identity}
}

// Cancel invalidates every outstanding token.
func (g *Guard) Cancel() {
	g.mu.Lock()
	g.gen++
	g.id = ""
	g.mu.Unlock()
}

// Identity returns the identity the token was started for.
func (t Token) Identity() string {
	return t.id
}

// Live reports whether no newer load has started.
func (t Token) Live() bool {
	if t.g == nil {
		return false
	}
	t.g.mu.Lock()
	defer t.g.mu.Unlock()
	return t.live()
}

// Apply runs fn only if the token is still live, holding the guard so no
// newer load can begin meanwhile. It reports whether fn ran.
func (t Token) Apply(fn func()) bool {
	if t.g == nil {
		return false
	}
	t.g.mu.Lock()
	defer t.g.mu.Unlock()
	if !t.live() {
		return false
	}
	fn()
	return true
}

func (t Token) live() bool {
	return t.gen == t.g.gen && t.id == t.g.id
}
