package action

import "sync"

// ConcentrationTracker records which maintained status each actor is
// holding. An actor holds at most one; starting a new one reports the
// previous so the engine can tear its status down.
type ConcentrationTracker interface {
	Begin(actorID, statusID string) (previous string, replaced bool)
	Break(actorID string) (statusID string, had bool)
	Active(actorID string) (statusID string, ok bool)
}

type concentrationTracker struct {
	mu     sync.Mutex
	active map[string]string
}

// NewConcentrationTracker returns an empty in-memory tracker.
func NewConcentrationTracker() ConcentrationTracker {
	return &concentrationTracker{active: make(map[string]string)}
}

func (t *concentrationTracker) Begin(actorID, statusID string) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	previous, had := t.active[actorID]
	t.active[actorID] = statusID
	return previous, had && previous != statusID
}

func (t *concentrationTracker) Break(actorID string) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	statusID, had := t.active[actorID]
	delete(t.active, actorID)
	return statusID, had
}

func (t *concentrationTracker) Active(actorID string) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	statusID, ok := t.active[actorID]
	return statusID, ok
}
