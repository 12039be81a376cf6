package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var _ shared.SessionStore = (*MemoryStore)(nil)

type memoryRecord struct {
	payload   []byte
	version   int64
	expiresAt time.Time
}

// MemoryStore keeps sessions in process. Records are stored encoded so callers
// never share pointers with the store.
type MemoryStore struct {
	mu      sync.Mutex
	clock   clock.Clock
	ttl     time.Duration
	records map[uuid.UUID]memoryRecord
}

func NewMemoryStore(clk clock.Clock, ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		clock:   clk,
		ttl:     ttl,
		records: make(map[uuid.UUID]memoryRecord),
	}
}

func (m *MemoryStore) Create(_ context.Context, s *shared.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if rec, ok := m.records[s.ID]; ok && !m.expired(rec) {
		return errs.Wrapf(errs.ErrConcurrentModification, "session %s already exists", s.ID)
	}

	s.Version = 1
	return m.put(s)
}

func (m *MemoryStore) Get(_ context.Context, id uuid.UUID) (*shared.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.live(id)
	if !ok {
		return nil, errs.ErrSessionNotFound
	}

	var s shared.Session
	if err := json.Unmarshal(rec.payload, &s); err != nil {
		return nil, errs.Wrap(err, "decode session")
	}
	s.Version = rec.version
	return &s, nil
}

func (m *MemoryStore) Save(_ context.Context, s *shared.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.live(s.ID)
	if !ok {
		return errs.ErrSessionNotFound
	}
	if rec.version != s.Version {
		return errs.ErrConcurrentModification
	}

	s.Version++
	if err := m.put(s); err != nil {
		s.Version--
		return err
	}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, id)
	return nil
}

// Sweep drops expired records and returns how many were removed.
func (m *MemoryStore) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, rec := range m.records {
		if m.expired(rec) {
			delete(m.records, id)
			removed++
		}
	}
	return removed
}

func (m *MemoryStore) live(id uuid.UUID) (memoryRecord, bool) {
	rec, ok := m.records[id]
	if !ok {
		return memoryRecord{}, false
	}
	if m.expired(rec) {
		delete(m.records, id)
		return memoryRecord{}, false
	}
	return rec, true
}

func (m *MemoryStore) expired(rec memoryRecord) bool {
	return m.ttl > 0 && !m.clock.Now().Before(rec.expiresAt)
}

func (m *MemoryStore) put(s *shared.Session) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return errs.Wrap(err, "encode session")
	}
	m.records[s.ID] = memoryRecord{
		payload:   payload,
		version:   s.Version,
		expiresAt: m.clock.Now().Add(m.ttl),
	}
	return nil
}
