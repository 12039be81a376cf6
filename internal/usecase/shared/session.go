package shared

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/shared/session.go -package=mock_shared

import (
	"context"
	"time"

	"studio-booking/internal/domain/wizard"

	"github.com/google/uuid"
)

// Session is one persisted wizard lifecycle owned by a single user.
type Session struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"userId"`
	Version   int64           `json:"version"`
	Wizard    wizard.Snapshot `json:"wizard"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type SessionStore interface {
	Create(ctx context.Context, s *Session) error
	// Get returns errs.ErrSessionNotFound for missing or expired sessions
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	// Save stores s only if the stored version still equals s.Version, then bumps
	// s.Version. A mismatch returns errs.ErrConcurrentModification.
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id uuid.UUID) error
}
