//go:build unit

package provider_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"studio-booking/internal/domain/target"
	"studio-booking/internal/infra/provider"
	"studio-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallSeed = `
targets:
  - id: retreat-1
    kind: retreat
    title: Big Sur Weekend
    studio: Coast Collective
    starts_at: 2025-03-01T16:00:00Z
    duration_min: 2880
    capacity: 10
    spots_left: 2
    drop_in_price_cents: 45000
    currency: USD
wallet:
  - id: pack-empty
    type: CLASS_PACK
    name: Empty Pack
    remaining: 0
    covers_kinds: [retreat]
`

func TestLoad_EmbeddedSeed(t *testing.T) {
	s, err := provider.Load("")
	require.NoError(t, err)
	ctx := context.Background()

	tgt, err := s.FetchBookingTarget(ctx, "class-101")
	require.NoError(t, err)
	assert.Equal(t, "Vinyasa Flow", tgt.Title)
	assert.Equal(t, target.KindClass, tgt.Kind)
	assert.False(t, tgt.IsFull())

	full, err := s.FetchBookingTarget(ctx, "class-102")
	require.NoError(t, err)
	assert.True(t, full.IsFull())

	workshop, err := s.FetchBookingTarget(ctx, "workshop-201")
	require.NoError(t, err)
	require.NotNil(t, workshop.CancellationMinutes)
	assert.Equal(t, 1440, *workshop.CancellationMinutes)

	items, err := s.FetchAddOns(ctx, tgt)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, int64(500), items[0].PriceCents)
}

func TestStatic_FetchPaymentSources(t *testing.T) {
	s, err := provider.Load("")
	require.NoError(t, err)
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name       string
		targetID   string
		wantCovers map[string]bool
	}{
		{name: "class", targetID: "class-101", wantCovers: map[string]bool{"mem-1": true, "pack-1": true, "wp-1": false}},
		{name: "workshop", targetID: "workshop-201", wantCovers: map[string]bool{"mem-1": false, "pack-1": false, "wp-1": true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sources, err := s.FetchPaymentSources(ctx, userID, tc.targetID)
			require.NoError(t, err)
			require.Len(t, sources, len(tc.wantCovers))
			for _, src := range sources {
				assert.Equal(t, tc.wantCovers[src.ID], src.Covers, src.ID)
			}
		})
	}

	t.Run("error: unknown target", func(t *testing.T) {
		_, err := s.FetchPaymentSources(ctx, userID, "nope")
		assert.ErrorIs(t, err, errs.ErrTargetNotFound)
	})

	t.Run("returned sources are detached", func(t *testing.T) {
		first, err := s.FetchPaymentSources(ctx, userID, "class-101")
		require.NoError(t, err)
		*first[1].Remaining = 0

		again, err := s.FetchPaymentSources(ctx, userID, "class-101")
		require.NoError(t, err)
		assert.Equal(t, 7, *again[1].Remaining)
	})
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(smallSeed), 0o600))

	s, err := provider.Load(path)
	require.NoError(t, err)

	sources, err := s.FetchPaymentSources(context.Background(), uuid.New(), "retreat-1")
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.False(t, sources[0].Covers, "an empty pack never covers")

	_, err = s.FetchBookingTarget(context.Background(), "class-101")
	assert.ErrorIs(t, err, errs.ErrTargetNotFound)

	_, err = provider.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseSeed_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "malformed yaml", raw: "targets: [\n"},
		{name: "unknown kind", raw: "targets:\n  - id: x\n    kind: party\n    title: X\n"},
		{name: "unknown source type", raw: "wallet:\n  - id: w\n    type: GIFT_CARD\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := provider.ParseSeed([]byte(tc.raw))
			assert.Error(t, err)
		})
	}
}

func TestStatic_HonoursCanceledContext(t *testing.T) {
	s, err := provider.Load("")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.FetchBookingTarget(ctx, "class-101")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = s.FetchAddOns(ctx, target.Target{})
	assert.ErrorIs(t, err, context.Canceled)
}
