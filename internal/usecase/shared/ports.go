package shared

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/shared/ports.go -package=mock_shared

import (
	"context"

	"studio-booking/internal/domain/addon"
	"studio-booking/internal/domain/payment"
	"studio-booking/internal/domain/target"
	"studio-booking/internal/domain/wizard"

	"github.com/google/uuid"
)

// The wizard depends only on these capabilities; concrete catalog, payment and
// booking backends live in infra.

type CatalogProvider interface {
	FetchBookingTarget(ctx context.Context, targetID string) (target.Target, error)
}

// PaymentProvider computes Covers for each source against the given target.
type PaymentProvider interface {
	FetchPaymentSources(ctx context.Context, userID uuid.UUID, targetID string) ([]payment.Source, error)
}

type BookingSubmitter interface {
	SubmitBooking(ctx context.Context, req BookingRequest) (wizard.SubmissionResult, error)
	AttachAddOns(ctx context.Context, bookingID string, addOnIDs []string) error
}

type AddOnCatalog interface {
	FetchAddOns(ctx context.Context, t target.Target) ([]addon.Item, error)
}

type CalendarLinker interface {
	CalendarLink(t target.Target) (CalendarLink, error)
}

type InviteLinker interface {
	InviteLink(t target.Target, invitedBy uuid.UUID) (string, error)
}

type BookingRequest struct {
	wizard.SubmissionRequest
	UserID    uuid.UUID
	SessionID uuid.UUID
}

type CalendarLink struct {
	GoogleURL string
	ICS       string
	Filename  string
}
