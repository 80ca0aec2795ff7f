package loading

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-sign-in/internal/logger"
	"github.com/MKhiriev/go-sign-in/internal/utils"
)

// Handle identifies one acquisition of the loading indicator. Token
// distinguishes successive acquisitions of the same ID, so a stale handle
// cannot release a newer one.
type Handle struct {
	ID    string
	Token string
}

// IsZero reports whether h is the zero handle.
func (h Handle) IsZero() bool {
	return h.ID == "" && h.Token == ""
}

// Stats counts indicator transitions made by a [Scope].
type Stats struct {
	Acquires int
	Releases int
	Active   int
}

// ActiveObserver is notified with the number of held handles after every
// change. metrics.Recorder satisfies it.
type ActiveObserver interface {
	SetActiveIndicators(n int)
}

// Scope is a keyed registry of loading handles. At most one handle is held
// per id. It is safe for concurrent use.
type Scope struct {
	mu        sync.Mutex
	indicator Indicator
	observer  ActiveObserver
	held      map[string]Handle
	stats     Stats
}

// ScopeOption configures a [Scope].
type ScopeOption func(*Scope)

// WithObserver reports the active handle count to o.
func WithObserver(o ActiveObserver) ScopeOption {
	return func(s *Scope) {
		s.observer = o
	}
}

// NewScope creates an empty [Scope] over indicator.
func NewScope(indicator Indicator, opts ...ScopeOption) *Scope {
	s := &Scope{
		indicator: indicator,
		held:      make(map[string]Handle),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Acquire shows the indicator for id and returns the handle that must later
// be passed to [Scope.Release]. If id is already held, the outstanding handle
// is hidden first.
func (s *Scope) Acquire(ctx context.Context, id string) Handle {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.held[id]; ok {
		log.Warn().Str("func", "Scope.Acquire").Str("indicator", id).Msg("indicator already held, hiding outstanding handle")
		s.hideLocked(prev)
	}

	h := Handle{ID: id, Token: utils.NewID()}
	s.held[id] = h
	s.stats.Acquires++
	s.indicator.Show(id)
	s.notifyLocked()

	return h
}

// Release hides the indicator for h. Releasing a handle that is not held, or
// that was superseded by a later Acquire, does nothing.
func (s *Scope) Release(ctx context.Context, h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.held[h.ID]
	if !ok || cur.Token != h.Token {
		logger.FromContext(ctx).Debug().Str("func", "Scope.Release").Str("indicator", h.ID).Msg("release of unheld handle ignored")
		return
	}
	s.hideLocked(cur)
}

// ReleaseID hides whatever handle is held under id, if any.
func (s *Scope) ReleaseID(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.held[id]
	if !ok {
		return
	}
	logger.FromContext(ctx).Debug().Str("func", "Scope.ReleaseID").Str("indicator", id).Msg("releasing held indicator")
	s.hideLocked(cur)
}

// Held reports whether a handle is currently held under id.
func (s *Scope) Held(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.held[id]
	return ok
}

// Stats returns a snapshot of the transition counters.
func (s *Scope) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.stats
	st.Active = len(s.held)
	return st
}

// hideLocked must be called with s.mu held.
func (s *Scope) hideLocked(h Handle) {
	delete(s.held, h.ID)
	s.stats.Releases++
	s.indicator.Hide(h.ID)
	s.notifyLocked()
}

func (s *Scope) notifyLocked() {
	if s.observer != nil {
		s.observer.SetActiveIndicators(len(s.held))
	}
}
