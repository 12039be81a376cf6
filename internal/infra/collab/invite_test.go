//go:build unit

package collab_test

import (
	"net/url"
	"testing"
	"time"

	"studio-booking/internal/infra/collab"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvite_InviteLink(t *testing.T) {
	jwtService := jwt.NewService("test-secret")
	inviter := uuid.New()

	t.Run("link carries a verifiable token", func(t *testing.T) {
		inv := collab.NewInvite(jwtService, "https://studio.example/app/", time.Hour, clock.NewMockClock(time.Now()))

		link, err := inv.InviteLink(vinyasa(), inviter)
		require.NoError(t, err)

		u, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, "studio.example", u.Host)
		assert.Equal(t, "/app/book/class-101", u.Path)

		claims, err := jwtService.ValidateInviteToken(u.Query().Get("invite"))
		require.NoError(t, err)
		assert.Equal(t, "class-101", claims.TargetID)
		assert.Equal(t, inviter, claims.InvitedBy)
	})

	t.Run("token expires after ttl", func(t *testing.T) {
		past := time.Now().Add(-2 * time.Hour)
		inv := collab.NewInvite(jwtService, "http://localhost:3000", time.Hour, clock.NewMockClock(past))

		link, err := inv.InviteLink(vinyasa(), inviter)
		require.NoError(t, err)

		u, err := url.Parse(link)
		require.NoError(t, err)
		_, err = jwtService.ValidateInviteToken(u.Query().Get("invite"))
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("error: malformed base url", func(t *testing.T) {
		inv := collab.NewInvite(jwtService, "://bad", time.Hour, clock.NewMockClock(time.Now()))

		_, err := inv.InviteLink(vinyasa(), inviter)
		assert.Error(t, err)
	})
}
