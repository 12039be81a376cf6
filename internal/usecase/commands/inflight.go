package commands

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// inflight tracks cancel funcs of running submissions. It is process-local: a
// Close handled by another replica cannot reach it, and the submission then runs
// to completion or timeout.
type inflight struct {
	mu      sync.Mutex
	cancels map[uuid.UUID]context.CancelFunc
}

func newInflight() *inflight {
	return &inflight{cancels: make(map[uuid.UUID]context.CancelFunc)}
}

func (f *inflight) register(sessionID uuid.UUID, cancel context.CancelFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancels[sessionID] = cancel
}

func (f *inflight) release(sessionID uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.cancels, sessionID)
}

// cancel reports whether a running submission was found
func (f *inflight) cancel(sessionID uuid.UUID) bool {
	f.mu.Lock()
	cancel, ok := f.cancels[sessionID]
	delete(f.cancels, sessionID)
	f.mu.Unlock()

	if ok {
		cancel()
	}
	return ok
}
