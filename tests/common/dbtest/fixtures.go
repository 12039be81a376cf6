//go:build unit || e2e

package dbtest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type BookingRecord struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	TargetID    string
	SourceID    string
	Status      string
	ChargeCents int64
}

// FindBookingBySession returns nil when the session never produced a booking.
func FindBookingBySession(t *testing.T, db DBLike, sessionID uuid.UUID) *BookingRecord {
	t.Helper()

	var rec BookingRecord
	err := db.QueryRow(context.Background(),
		`SELECT id, user_id, target_id, source_id, status, charge_cents
		   FROM bookings WHERE session_id = $1`, sessionID).
		Scan(&rec.ID, &rec.UserID, &rec.TargetID, &rec.SourceID, &rec.Status, &rec.ChargeCents)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	require.NoError(t, err)
	return &rec
}

func AttachedAddOns(t *testing.T, db DBLike, bookingID uuid.UUID) []string {
	t.Helper()

	rows, err := db.Query(context.Background(),
		"SELECT add_on_id FROM booking_add_ons WHERE booking_id = $1 ORDER BY add_on_id", bookingID)
	require.NoError(t, err)
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	require.NoError(t, err)
	return ids
}

// ResetDB empties the booking tables between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE booking_add_ons, bookings CASCADE")
	return err
}
