package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/wizard.go -package=mock_commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"studio-booking/internal/domain/addon"
	"studio-booking/internal/domain/payment"
	"studio-booking/internal/domain/target"
	"studio-booking/internal/domain/wizard"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrSubmissionCanceled = errs.New("booking submission canceled")
	ErrAddOnAttachFailed  = errs.New("failed to attach add-ons")
	ErrLinkFailed         = errs.New("failed to build share link")
)

const (
	defaultMaxRetries = 3
	defaultBackoff    = 25 * time.Millisecond
	addOnFetchTimeout = 3 * time.Second
)

type WizardCommands interface {
	Open(ctx context.Context, userID uuid.UUID, targetID string) (*shared.Session, error)
	SelectSource(ctx context.Context, userID, sessionID uuid.UUID, sourceID string) (*shared.Session, error)
	Continue(ctx context.Context, userID, sessionID uuid.UUID) (*shared.Session, error)
	Back(ctx context.Context, userID, sessionID uuid.UUID) (*shared.Session, error)
	AcceptPolicy(ctx context.Context, userID, sessionID uuid.UUID, accepted bool) (*shared.Session, error)
	Confirm(ctx context.Context, userID, sessionID uuid.UUID) (*shared.Session, error)
	ToggleAddOn(ctx context.Context, userID, sessionID uuid.UUID, addOnID string) (*shared.Session, error)
	AttachAddOns(ctx context.Context, userID, sessionID uuid.UUID) (*shared.Session, error)
	SkipAddOns(ctx context.Context, userID, sessionID uuid.UUID) (*shared.Session, error)
	AddToCalendar(ctx context.Context, userID, sessionID uuid.UUID) (*shared.Session, *shared.CalendarLink, error)
	InviteFriend(ctx context.Context, userID, sessionID uuid.UUID) (*shared.Session, string, error)
	Done(ctx context.Context, userID, sessionID uuid.UUID) (*shared.Session, error)
	Close(ctx context.Context, userID, sessionID uuid.UUID) (*shared.Session, error)
	FinishClose(ctx context.Context, userID, sessionID uuid.UUID) (*shared.Session, error)
	Reopen(ctx context.Context, userID, sessionID uuid.UUID) (*shared.Session, error)
}

type wizardUseCaseImpl struct {
	sessions  shared.SessionStore
	catalog   shared.CatalogProvider
	payments  shared.PaymentProvider
	submitter shared.BookingSubmitter
	addOns    shared.AddOnCatalog
	calendar  shared.CalendarLinker
	invites   shared.InviteLinker
	clock     clock.Clock
	logger    *slog.Logger

	submitTimeout time.Duration
	maxRetries    int
	backoff       time.Duration
	inflight      *inflight
}

func NewWizardCommands(
	sessions shared.SessionStore,
	catalog shared.CatalogProvider,
	payments shared.PaymentProvider,
	submitter shared.BookingSubmitter,
	addOns shared.AddOnCatalog,
	calendar shared.CalendarLinker,
	invites shared.InviteLinker,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) WizardCommands {
	return &wizardUseCaseImpl{
		sessions:      sessions,
		catalog:       catalog,
		payments:      payments,
		submitter:     submitter,
		addOns:        addOns,
		calendar:      calendar,
		invites:       invites,
		clock:         clk,
		logger:        logger,
		submitTimeout: cfg.Submission.Timeout,
		maxRetries:    defaultMaxRetries,
		backoff:       defaultBackoff,
		inflight:      newInflight(),
	}
}

func (uc *wizardUseCaseImpl) Open(ctx context.Context, userID uuid.UUID, targetID string) (*shared.Session, error) {
	var (
		t       target.Target
		sources []payment.Source
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		t, err = uc.catalog.FetchBookingTarget(gctx, targetID)
		return providerErr(err)
	})
	g.Go(func() error {
		var err error
		sources, err = uc.payments.FetchPaymentSources(gctx, userID, targetID)
		return providerErr(err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	w, err := wizard.New(t, sources)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrProviderFailed)
	}

	now := uc.clock.Now()
	sess := &shared.Session{
		ID:        uuid.New(),
		UserID:    userID,
		Wizard:    w.Snapshot(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "booking session opened",
		slog.String("session_id", sess.ID.String()),
		slog.String("target_id", targetID),
		slog.Int("sources", len(sources)))
	return sess, nil
}

func (uc *wizardUseCaseImpl) SelectSource(ctx context.Context, userID, sessionID uuid.UUID, sourceID string) (*shared.Session, error) {
	return uc.update(ctx, userID, sessionID, func(w *wizard.Wizard) error {
		return w.Select(sourceID)
	})
}

func (uc *wizardUseCaseImpl) Continue(ctx context.Context, userID, sessionID uuid.UUID) (*shared.Session, error) {
	return uc.update(ctx, userID, sessionID, (*wizard.Wizard).Continue)
}

func (uc *wizardUseCaseImpl) Back(ctx context.Context, userID, sessionID uuid.UUID) (*shared.Session, error) {
	return uc.update(ctx, userID, sessionID, (*wizard.Wizard).Back)
}

func (uc *wizardUseCaseImpl) AcceptPolicy(ctx context.Context, userID, sessionID uuid.UUID, accepted bool) (*shared.Session, error) {
	return uc.update(ctx, userID, sessionID, func(w *wizard.Wizard) error {
		return w.AcceptPolicy(accepted)
	})
}

// Confirm persists the submitting flag before calling the booking service, so a
// concurrent Confirm on the same session fails with ErrSubmissionInProgress.
func (uc *wizardUseCaseImpl) Confirm(ctx context.Context, userID, sessionID uuid.UUID) (*shared.Session, error) {
	var (
		req wizard.SubmissionRequest
		t   target.Target
	)
	sess, err := uc.update(ctx, userID, sessionID, func(w *wizard.Wizard) error {
		r, err := w.BeginSubmission()
		if err != nil {
			return err
		}
		req, t = r, w.Target()
		return nil
	})
	if err != nil {
		return sess, err
	}

	// The submission outlives the request; only Close or the timeout stop it.
	detached := context.WithoutCancel(ctx)
	subCtx, cancel := context.WithTimeout(detached, uc.submitTimeout)
	uc.inflight.register(sessionID, cancel)
	defer func() {
		uc.inflight.release(sessionID)
		cancel()
	}()

	// A Close that saved before the register above found nothing to cancel.
	if cur, err := uc.sessions.Get(detached, sessionID); err != nil || !cur.Wizard.Visible {
		cancel()
	}
	if err := subCtx.Err(); err != nil {
		return uc.failSubmission(detached, userID, sessionID, err)
	}

	result, subErr := uc.submitter.SubmitBooking(subCtx, shared.BookingRequest{
		SubmissionRequest: req,
		UserID:            userID,
		SessionID:         sessionID,
	})
	if subErr != nil {
		return uc.failSubmission(detached, userID, sessionID, subErr)
	}

	items := uc.fetchAddOns(detached, t)
	sess, err = uc.update(detached, userID, sessionID, func(w *wizard.Wizard) error {
		return w.CompleteSubmission(result, items)
	})
	if errors.Is(err, wizard.ErrInvalidTransition) {
		uc.logger.WarnContext(ctx, "booking completed after the wizard was reset",
			slog.String("session_id", sessionID.String()),
			slog.String("booking_id", result.BookingID))
		return sess, ErrSubmissionCanceled
	}
	if err != nil {
		return sess, err
	}

	uc.logger.InfoContext(ctx, "booking submitted",
		slog.String("session_id", sessionID.String()),
		slog.String("booking_id", result.BookingID),
		slog.Bool("waitlisted", result.Waitlisted))
	return sess, nil
}

func (uc *wizardUseCaseImpl) failSubmission(ctx context.Context, userID, sessionID uuid.UUID, subErr error) (*shared.Session, error) {
	canceled := errors.Is(subErr, context.Canceled)

	sess, err := uc.update(ctx, userID, sessionID, func(w *wizard.Wizard) error {
		return w.FailSubmission(subErr)
	})
	if err != nil && !errors.Is(err, wizard.ErrInvalidTransition) {
		return sess, err
	}

	if canceled {
		uc.logger.InfoContext(ctx, "booking submission canceled", slog.String("session_id", sessionID.String()))
		return sess, ErrSubmissionCanceled
	}
	uc.logger.WarnContext(ctx, "booking submission failed",
		slog.String("session_id", sessionID.String()),
		slog.String("error", subErr.Error()))
	return sess, errs.Mark(subErr, errs.ErrSubmissionFailed)
}

// fetchAddOns never fails the booking; a broken catalog yields an empty offer.
func (uc *wizardUseCaseImpl) fetchAddOns(ctx context.Context, t target.Target) []addon.Item {
	ctx, cancel := context.WithTimeout(ctx, addOnFetchTimeout)
	defer cancel()

	items, err := uc.addOns.FetchAddOns(ctx, t)
	if err != nil {
		uc.logger.WarnContext(ctx, "add-on catalog unavailable",
			slog.String("target_id", t.ID),
			slog.String("error", err.Error()))
		return nil
	}
	return items
}

func (uc *wizardUseCaseImpl) ToggleAddOn(ctx context.Context, userID, sessionID uuid.UUID, addOnID string) (*shared.Session, error) {
	return uc.update(ctx, userID, sessionID, func(w *wizard.Wizard) error {
		return w.ToggleAddOn(addOnID)
	})
}

// AttachAddOns forwards the selection to the booking service. The call may be
// repeated when the session write races, so the service must treat it as idempotent.
func (uc *wizardUseCaseImpl) AttachAddOns(ctx context.Context, userID, sessionID uuid.UUID) (*shared.Session, error) {
	return uc.update(ctx, userID, sessionID, func(w *wizard.Wizard) error {
		ids, err := w.AttachAddOns()
		if err != nil {
			return err
		}
		if err := uc.submitter.AttachAddOns(ctx, w.Receipt().BookingID, ids); err != nil {
			return errs.Mark(err, ErrAddOnAttachFailed)
		}
		return nil
	})
}

func (uc *wizardUseCaseImpl) SkipAddOns(ctx context.Context, userID, sessionID uuid.UUID) (*shared.Session, error) {
	return uc.update(ctx, userID, sessionID, (*wizard.Wizard).SkipAddOns)
}

func (uc *wizardUseCaseImpl) AddToCalendar(ctx context.Context, userID, sessionID uuid.UUID) (*shared.Session, *shared.CalendarLink, error) {
	var link shared.CalendarLink
	sess, err := uc.update(ctx, userID, sessionID, func(w *wizard.Wizard) error {
		if err := w.AddToCalendar(); err != nil {
			return err
		}
		var lerr error
		if link, lerr = uc.calendar.CalendarLink(w.Target()); lerr != nil {
			return errs.Mark(lerr, ErrLinkFailed)
		}
		return nil
	})
	if err != nil {
		return sess, nil, err
	}
	return sess, &link, nil
}

func (uc *wizardUseCaseImpl) InviteFriend(ctx context.Context, userID, sessionID uuid.UUID) (*shared.Session, string, error) {
	var link string
	sess, err := uc.update(ctx, userID, sessionID, func(w *wizard.Wizard) error {
		if err := w.InviteFriend(); err != nil {
			return err
		}
		var lerr error
		if link, lerr = uc.invites.InviteLink(w.Target(), userID); lerr != nil {
			return errs.Mark(lerr, ErrLinkFailed)
		}
		return nil
	})
	if err != nil {
		return sess, "", err
	}
	return sess, link, nil
}

func (uc *wizardUseCaseImpl) Done(ctx context.Context, userID, sessionID uuid.UUID) (*shared.Session, error) {
	return uc.update(ctx, userID, sessionID, (*wizard.Wizard).Done)
}

// Close cancels an in-flight submission; the wizard resets on FinishClose.
func (uc *wizardUseCaseImpl) Close(ctx context.Context, userID, sessionID uuid.UUID) (*shared.Session, error) {
	sess, err := uc.update(ctx, userID, sessionID, func(w *wizard.Wizard) error {
		w.Close()
		return nil
	})
	if err != nil {
		return sess, err
	}
	if uc.inflight.cancel(sessionID) {
		uc.logger.InfoContext(ctx, "canceling in-flight submission on close", slog.String("session_id", sessionID.String()))
	}
	return sess, nil
}

// FinishClose resets the wizard. A wizard closed on its receipt step has ended
// its lifecycle, so the session is removed from the store afterwards.
func (uc *wizardUseCaseImpl) FinishClose(ctx context.Context, userID, sessionID uuid.UUID) (*shared.Session, error) {
	var booked bool
	sess, err := uc.update(ctx, userID, sessionID, func(w *wizard.Wizard) error {
		booked = w.Step() == wizard.StepSuccess
		return w.FinishClose()
	})
	if err != nil || !booked {
		return sess, err
	}

	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		uc.logger.WarnContext(ctx, "failed to delete finished booking session",
			slog.String("session_id", sessionID.String()),
			slog.String("error", err.Error()))
		return sess, nil
	}
	uc.logger.InfoContext(ctx, "booking session finished", slog.String("session_id", sessionID.String()))
	return sess, nil
}

func (uc *wizardUseCaseImpl) Reopen(ctx context.Context, userID, sessionID uuid.UUID) (*shared.Session, error) {
	return uc.update(ctx, userID, sessionID, func(w *wizard.Wizard) error {
		w.Reopen()
		return nil
	})
}

// update loads the session, applies op and writes it back with compare-and-swap.
// Validation failures are persisted (they carry a notice) and returned marked with
// errs.ErrDomainValidation; any other op error leaves the stored session untouched.
func (uc *wizardUseCaseImpl) update(ctx context.Context, userID, sessionID uuid.UUID, op func(w *wizard.Wizard) error) (*shared.Session, error) {
	for attempt := 0; attempt <= uc.maxRetries; attempt++ {
		sess, err := loadOwned(ctx, uc.sessions, userID, sessionID)
		if err != nil {
			return nil, err
		}
		w, err := wizard.Restore(sess.Wizard)
		if err != nil {
			return nil, errs.Wrap(err, "restore booking session")
		}

		opErr := op(w)
		if opErr != nil && !wizard.IsValidation(opErr) {
			return sess, opErr
		}

		sess.Wizard = w.Snapshot()
		sess.UpdatedAt = uc.clock.Now()
		err = uc.sessions.Save(ctx, sess)
		if err == nil {
			if opErr != nil {
				return sess, errs.Mark(opErr, errs.ErrDomainValidation)
			}
			return sess, nil
		}
		if !errors.Is(err, errs.ErrConcurrentModification) {
			return nil, err
		}

		if attempt == uc.maxRetries {
			break
		}
		wait := time.Duration(attempt+1) * uc.backoff
		uc.logger.DebugContext(ctx, "retrying booking session write",
			slog.String("session_id", sessionID.String()),
			slog.Int("attempt", attempt+1),
			slog.Duration("wait_time", wait))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	uc.logger.WarnContext(ctx, "booking session write failed after max retries",
		slog.String("session_id", sessionID.String()),
		slog.Int("attempts", uc.maxRetries+1))
	return nil, errs.ErrConcurrentModification
}

func loadOwned(ctx context.Context, store shared.SessionStore, userID, sessionID uuid.UUID) (*shared.Session, error) {
	sess, err := store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	// Foreign sessions look exactly like missing ones.
	if sess.UserID != userID {
		return nil, errs.ErrSessionNotFound
	}
	return sess, nil
}

func providerErr(err error) error {
	if err == nil || errors.Is(err, errs.ErrTargetNotFound) {
		return err
	}
	return errs.Mark(err, errs.ErrProviderFailed)
}
