package nav

import (
	"time"

	"github.com/voxtree/docnav/internal/engine/walker"
)

// Option is a functional option for configuring a Session.
type Option func(*Session)

// WithGeometry supplies the rendered-geometry oracle consumed by the
// layout-line walker. Without one, layout lines degrade to structural
// lines merged optimistically.
func WithGeometry(g walker.Geometry) Option {
	return func(s *Session) {
		s.geom = g
	}
}

// WithGranularity sets the initial granularity.
func WithGranularity(g walker.Granularity) Option {
	return func(s *Session) {
		s.gran = g
	}
}

// WithGuardTTL sets the lifetime of one user-command guard token.
func WithGuardTTL(ttl time.Duration) Option {
	return func(s *Session) {
		s.guardTTL = ttl
	}
}

// WithClock injects the time source used by the re-entrancy guard.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.clock = now
	}
}
