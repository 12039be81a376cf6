package submission

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"studio-booking/internal/domain/wizard"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var _ shared.BookingSubmitter = (*Simulated)(nil)

// Simulated always succeeds after a fixed latency. It honours cancellation so
// closing the wizard mid-flight can be exercised without a real backend.
type Simulated struct {
	latency time.Duration
	clock   clock.Clock
	logger  *slog.Logger

	mu       sync.Mutex
	attached map[string][]string
}

func NewSimulated(latency time.Duration, clk clock.Clock, logger *slog.Logger) *Simulated {
	return &Simulated{
		latency:  latency,
		clock:    clk,
		logger:   logger,
		attached: make(map[string][]string),
	}
}

func (s *Simulated) SubmitBooking(ctx context.Context, req shared.BookingRequest) (wizard.SubmissionResult, error) {
	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return wizard.SubmissionResult{}, ctx.Err()
	case <-timer.C:
	}

	res := wizard.SubmissionResult{
		BookingID:   "bk_" + uuid.NewString(),
		Waitlisted:  req.Waitlist,
		ConfirmedAt: s.clock.Now(),
	}
	s.logger.DebugContext(ctx, "simulated booking accepted",
		slog.String("booking_id", res.BookingID),
		slog.String("target_id", req.TargetID),
		slog.String("source_id", req.SourceID))
	return res, nil
}

func (s *Simulated) AttachAddOns(ctx context.Context, bookingID string, addOnIDs []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attached[bookingID] = slices.Clone(addOnIDs)
	return nil
}

// Attached returns the add-ons recorded for bookingID.
func (s *Simulated) Attached(bookingID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.attached[bookingID])
}
