package nav

import "time"

// DefaultGuardTTL is how long one user-command region suppresses
// event-driven feedback triggered by the engine's own focus and
// selection changes.
const DefaultGuardTTL = 100 * time.Millisecond

// Guard is a nestable busy counter with per-increment scheduled
// expiry. Each Enter issues a token that expires TTL after its own
// entry; Busy reports whether any token is still live. Tokens are
// never cancelled early; they always run out their clock.
//
// The engine is single-threaded, so Guard needs no locking; overlap
// comes from host callbacks interleaving on one event loop.
type Guard struct {
	ttl      time.Duration
	now      func() time.Time
	expiries []time.Time
}

// NewGuard creates a guard with the given token lifetime. A zero ttl
// uses DefaultGuardTTL; a nil clock uses time.Now.
func NewGuard(ttl time.Duration, now func() time.Time) *Guard {
	if ttl <= 0 {
		ttl = DefaultGuardTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Guard{ttl: ttl, now: now}
}

// Enter records one user-command region and schedules its expiry.
func (g *Guard) Enter() {
	g.prune()
	g.expiries = append(g.expiries, g.now().Add(g.ttl))
}

// Busy reports whether any region is still live.
func (g *Guard) Busy() bool {
	g.prune()
	return len(g.expiries) > 0
}

// Count returns the number of live regions.
func (g *Guard) Count() int {
	g.prune()
	return len(g.expiries)
}

// prune drops expired tokens.
func (g *Guard) prune() {
	now := g.now()
	live := g.expiries[:0]
	for _, e := range g.expiries {
		if e.After(now) {
			live = append(live, e)
		}
	}
	g.expiries = live
}
