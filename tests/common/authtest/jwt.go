//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper issues access tokens the way the account service does.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret).GenerateToken(userID, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret).GenerateToken(userID, -time.Minute)
	require.NoError(t, err)
	return token
}
