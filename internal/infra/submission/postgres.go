package submission

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/submission/postgres.go -package=mock_submission

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"studio-booking/internal/domain/wizard"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var _ shared.BookingSubmitter = (*Postgres)(nil)

const (
	statusConfirmed  = "confirmed"
	statusWaitlisted = "waitlisted"

	pgErrCodeForeignKeyViolation = "23503"
)

type BookingRow struct {
	ID             uuid.UUID
	SessionID      uuid.UUID
	UserID         uuid.UUID
	TargetID       string
	SourceID       string
	SourceType     string
	Status         string
	ChargeCents    int64
	Currency       string
	PolicyAccepted bool
	CreatedAt      time.Time
}

type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type BookingWriteQueries interface {
	InsertBooking(ctx context.Context, db DBTX, row BookingRow) error
	InsertBookingAddOns(ctx context.Context, db DBTX, bookingID uuid.UUID, addOnIDs []string) error
}

type TxRunner interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

// Postgres records bookings in the bookings table. Availability is not checked
// here; the waitlist flag comes from the wizard.
type Postgres struct {
	tx      TxRunner
	queries BookingWriteQueries
	clock   clock.Clock
	logger  *slog.Logger
}

func NewPostgres(tx TxRunner, queries BookingWriteQueries, clk clock.Clock, logger *slog.Logger) *Postgres {
	return &Postgres{
		tx:      tx,
		queries: queries,
		clock:   clk,
		logger:  logger,
	}
}

func (p *Postgres) SubmitBooking(ctx context.Context, req shared.BookingRequest) (wizard.SubmissionResult, error) {
	row := BookingRow{
		ID:             uuid.New(),
		SessionID:      req.SessionID,
		UserID:         req.UserID,
		TargetID:       req.TargetID,
		SourceID:       req.SourceID,
		SourceType:     req.SourceType,
		Status:         statusConfirmed,
		ChargeCents:    req.ChargeCents,
		Currency:       req.Currency,
		PolicyAccepted: req.PolicyAccepted,
		CreatedAt:      p.clock.Now(),
	}
	if req.Waitlist {
		row.Status = statusWaitlisted
	}

	err := p.tx.Within(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return p.queries.InsertBooking(ctx, tx, row)
	})
	if err != nil {
		return wizard.SubmissionResult{}, infra.WrapRepoErr(p.logger, infra.KindDBFailure, "failed to insert booking", err)
	}

	return wizard.SubmissionResult{
		BookingID:   row.ID.String(),
		Waitlisted:  req.Waitlist,
		ConfirmedAt: row.CreatedAt,
	}, nil
}

// AttachAddOns is idempotent: re-attaching the same ids is a no-op.
func (p *Postgres) AttachAddOns(ctx context.Context, bookingID string, addOnIDs []string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return infra.WrapRepoErr(p.logger, infra.KindNotFound, "invalid booking id", err)
	}

	err = p.tx.Within(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return p.queries.InsertBookingAddOns(ctx, tx, id, addOnIDs)
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeForeignKeyViolation {
			return infra.WrapRepoErr(p.logger, infra.KindForeignKeyViolated, "booking does not exist", err)
		}
		return infra.WrapRepoErr(p.logger, infra.KindDBFailure, "failed to attach add-ons", err)
	}
	return nil
}

type pgBookingQueries struct{}

func NewBookingQueries() BookingWriteQueries {
	return pgBookingQueries{}
}

const insertBooking = `
INSERT INTO bookings (
    id, session_id, user_id, target_id, source_id, source_type,
    status, charge_cents, currency, policy_accepted, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

func (pgBookingQueries) InsertBooking(ctx context.Context, db DBTX, row BookingRow) error {
	_, err := db.Exec(ctx, insertBooking,
		row.ID, row.SessionID, row.UserID, row.TargetID, row.SourceID, row.SourceType,
		row.Status, row.ChargeCents, row.Currency, row.PolicyAccepted, row.CreatedAt,
	)
	return err
}

const insertBookingAddOns = `
INSERT INTO booking_add_ons (booking_id, add_on_id)
SELECT $1, unnest($2::text[])
ON CONFLICT (booking_id, add_on_id) DO NOTHING`

func (pgBookingQueries) InsertBookingAddOns(ctx context.Context, db DBTX, bookingID uuid.UUID, addOnIDs []string) error {
	_, err := db.Exec(ctx, insertBookingAddOns, bookingID, addOnIDs)
	return err
}
