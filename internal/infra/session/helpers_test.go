//go:build unit || e2e

package session_test

import (
	"testing"
	"time"

	"studio-booking/internal/domain/wizard"
	"studio-booking/internal/usecase/shared"
	"studio-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 1, 5, 12, 0, 0, 0, time.UTC)

func newSession(t *testing.T) *shared.Session {
	t.Helper()
	w, err := wizard.New(builder.NewTargetBuilder().Build(), builder.DefaultSources())
	require.NoError(t, err)
	return &shared.Session{ID: uuid.New(), UserID: uuid.New(), Wizard: w.Snapshot(), CreatedAt: now, UpdatedAt: now}
}
