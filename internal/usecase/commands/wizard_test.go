//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"studio-booking/internal/domain/addon"
	"studio-booking/internal/domain/payment"
	"studio-booking/internal/domain/wizard"
	"studio-booking/internal/infra/session"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/shared"
	"studio-booking/tests/common/builder"
	sharedmock "studio-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 1, 5, 12, 0, 0, 0, time.UTC)

type WizardCommandsTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	store     *session.MemoryStore
	catalog   *sharedmock.MockCatalogProvider
	payments  *sharedmock.MockPaymentProvider
	submitter *sharedmock.MockBookingSubmitter
	addOns    *sharedmock.MockAddOnCatalog
	calendar  *sharedmock.MockCalendarLinker
	invites   *sharedmock.MockInviteLinker
	cmds      commands.WizardCommands
	userID    uuid.UUID
}

func TestWizardCommandsSuite(t *testing.T) {
	suite.Run(t, new(WizardCommandsTestSuite))
}

func (s *WizardCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	clk := clock.NewMockClock(now)
	s.store = session.NewMemoryStore(clk, time.Hour)
	s.catalog = sharedmock.NewMockCatalogProvider(s.ctrl)
	s.payments = sharedmock.NewMockPaymentProvider(s.ctrl)
	s.submitter = sharedmock.NewMockBookingSubmitter(s.ctrl)
	s.addOns = sharedmock.NewMockAddOnCatalog(s.ctrl)
	s.calendar = sharedmock.NewMockCalendarLinker(s.ctrl)
	s.invites = sharedmock.NewMockInviteLinker(s.ctrl)
	s.userID = uuid.New()

	s.cmds = commands.NewWizardCommands(
		s.store, s.catalog, s.payments, s.submitter, s.addOns, s.calendar, s.invites,
		clk, config.NewTestConfig(), discardLogger(),
	)
}

func (s *WizardCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *WizardCommandsTestSuite) open(tb *builder.TargetBuilder, sources []payment.Source) *shared.Session {
	t := tb.Build()
	s.catalog.EXPECT().FetchBookingTarget(gomock.Any(), t.ID).Return(t, nil)
	s.payments.EXPECT().FetchPaymentSources(gomock.Any(), s.userID, t.ID).Return(sources, nil)

	sess, err := s.cmds.Open(context.Background(), s.userID, t.ID)
	s.Require().NoError(err)
	return sess
}

// toConfirm opens a session with the default wallet and walks to an accepted confirm step.
func (s *WizardCommandsTestSuite) toConfirm(tb *builder.TargetBuilder) *shared.Session {
	sess := s.open(tb, builder.DefaultSources())
	ctx := context.Background()
	_, err := s.cmds.Continue(ctx, s.userID, sess.ID)
	s.Require().NoError(err)
	sess, err = s.cmds.AcceptPolicy(ctx, s.userID, sess.ID, true)
	s.Require().NoError(err)
	return sess
}

func (s *WizardCommandsTestSuite) toSuccess(items []addon.Item) *shared.Session {
	sess := s.toConfirm(builder.NewTargetBuilder())
	s.submitter.EXPECT().SubmitBooking(gomock.Any(), gomock.Any()).
		Return(wizard.SubmissionResult{BookingID: "bk-1", ConfirmedAt: now}, nil)
	s.addOns.EXPECT().FetchAddOns(gomock.Any(), gomock.Any()).Return(items, nil)

	sess, err := s.cmds.Confirm(context.Background(), s.userID, sess.ID)
	s.Require().NoError(err)
	s.Require().Equal(wizard.StepSuccess, sess.Wizard.Step)
	return sess
}

func (s *WizardCommandsTestSuite) stored(id uuid.UUID) *shared.Session {
	sess, err := s.store.Get(context.Background(), id)
	s.Require().NoError(err)
	return sess
}

// ================================================================================
// Open
// ================================================================================

func (s *WizardCommandsTestSuite) TestOpen() {
	s.Run("success: preselects the first covering source", func() {
		sess := s.open(builder.NewTargetBuilder(), builder.DefaultSources())

		s.Equal(s.userID, sess.UserID)
		s.Equal(int64(1), sess.Version)
		s.Equal(wizard.StepSelect, sess.Wizard.Step)
		s.True(sess.Wizard.Visible)
		s.Require().NotNil(sess.Wizard.SelectedSource)
		s.Equal("mem-1", sess.Wizard.SelectedSource.ID)

		got := s.stored(sess.ID)
		s.Equal(sess.Wizard.Step, got.Wizard.Step)
	})

	s.Run("error: unknown target", func() {
		s.catalog.EXPECT().FetchBookingTarget(gomock.Any(), "missing").
			Return(builder.NewTargetBuilder().Build(), errs.ErrTargetNotFound)
		s.payments.EXPECT().FetchPaymentSources(gomock.Any(), s.userID, "missing").
			Return(nil, nil).AnyTimes()

		_, err := s.cmds.Open(context.Background(), s.userID, "missing")
		s.True(errs.Is(err, errs.ErrTargetNotFound))
		s.False(errs.Is(err, errs.ErrProviderFailed))
	})

	s.Run("error: payment provider failure is marked", func() {
		t := builder.NewTargetBuilder().Build()
		s.catalog.EXPECT().FetchBookingTarget(gomock.Any(), t.ID).Return(t, nil).AnyTimes()
		s.payments.EXPECT().FetchPaymentSources(gomock.Any(), s.userID, t.ID).
			Return(nil, errors.New("wallet service down"))

		_, err := s.cmds.Open(context.Background(), s.userID, t.ID)
		s.True(errs.Is(err, errs.ErrProviderFailed))
	})
}

// ================================================================================
// Navigation
// ================================================================================

func (s *WizardCommandsTestSuite) TestForeignSessionIsNotFound() {
	sess := s.open(builder.NewTargetBuilder(), builder.DefaultSources())

	_, err := s.cmds.Continue(context.Background(), uuid.New(), sess.ID)
	s.True(errs.Is(err, errs.ErrSessionNotFound))
	s.Equal(wizard.StepSelect, s.stored(sess.ID).Wizard.Step)
}

func (s *WizardCommandsTestSuite) TestContinueWithoutSourcePersistsNotice() {
	sess := s.open(builder.NewTargetBuilder(), []payment.Source{builder.WorkshopPass(false)})
	s.Require().Nil(sess.Wizard.SelectedSource)

	got, err := s.cmds.Continue(context.Background(), s.userID, sess.ID)
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrDomainValidation))
	s.True(errors.Is(err, wizard.ErrNoSourceSelected))

	s.Require().NotNil(got)
	s.Equal(wizard.StepSelect, got.Wizard.Step)
	stored := s.stored(sess.ID)
	s.Require().NotNil(stored.Wizard.Notice)
	s.Equal("Please select a payment method", stored.Wizard.Notice.Title)
	s.Equal(int64(2), stored.Version)
}

func (s *WizardCommandsTestSuite) TestSelectNonCoveringSource() {
	sess := s.open(builder.NewTargetBuilder(), []payment.Source{builder.Membership(), builder.WorkshopPass(false)})

	_, err := s.cmds.SelectSource(context.Background(), s.userID, sess.ID, "wp-1")
	s.True(errs.Is(err, errs.ErrDomainValidation))
	s.True(errors.Is(err, payment.ErrSourceNotCovering))
	s.Equal("mem-1", s.stored(sess.ID).Wizard.SelectedSource.ID)
}

func (s *WizardCommandsTestSuite) TestBackKeepsSelectionAndPolicy() {
	sess := s.toConfirm(builder.NewTargetBuilder())

	got, err := s.cmds.Back(context.Background(), s.userID, sess.ID)
	s.Require().NoError(err)
	s.Equal(wizard.StepSelect, got.Wizard.Step)
	s.Equal("mem-1", got.Wizard.SelectedSource.ID)
	s.True(got.Wizard.PolicyAccepted)
}

func (s *WizardCommandsTestSuite) TestInvalidTransitionIsNotPersisted() {
	sess := s.open(builder.NewTargetBuilder(), builder.DefaultSources())

	_, err := s.cmds.AcceptPolicy(context.Background(), s.userID, sess.ID, true)
	s.True(errors.Is(err, wizard.ErrInvalidTransition))
	s.False(errs.Is(err, errs.ErrDomainValidation))
	s.Equal(int64(1), s.stored(sess.ID).Version)
}

// ================================================================================
// Confirm
// ================================================================================

func (s *WizardCommandsTestSuite) TestConfirm() {
	s.Run("success: booking and add-on offer", func() {
		sess := s.toConfirm(builder.NewTargetBuilder())

		var got shared.BookingRequest
		s.submitter.EXPECT().SubmitBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req shared.BookingRequest) (wizard.SubmissionResult, error) {
				got = req
				return wizard.SubmissionResult{BookingID: "bk-1", ConfirmedAt: now}, nil
			})
		s.addOns.EXPECT().FetchAddOns(gomock.Any(), gomock.Any()).Return(builder.AddOnItems(), nil)

		res, err := s.cmds.Confirm(context.Background(), s.userID, sess.ID)
		s.Require().NoError(err)

		s.Equal(s.userID, got.UserID)
		s.Equal(sess.ID, got.SessionID)
		s.Equal("class-101", got.TargetID)
		s.Equal("mem-1", got.SourceID)
		s.True(got.PolicyAccepted)
		s.False(got.Waitlist)

		s.Equal(wizard.StepSuccess, res.Wizard.Step)
		s.Require().NotNil(res.Wizard.Receipt)
		s.Equal("bk-1", res.Wizard.Receipt.BookingID)
		s.Require().NotNil(res.Wizard.AddOns)
		s.Len(res.Wizard.AddOns.Items, 3)
		s.Equal(addon.OutcomePending, res.Wizard.AddOns.Outcome)
		s.Equal("Booking confirmed!", res.Wizard.Notice.Title)
		s.Equal("See you at Sunrise Yoga", res.Wizard.Notice.Description)
	})

	s.Run("success: full target joins the waitlist", func() {
		sess := s.toConfirm(builder.NewTargetBuilder().Full())

		s.submitter.EXPECT().SubmitBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req shared.BookingRequest) (wizard.SubmissionResult, error) {
				s.True(req.Waitlist)
				s.Zero(req.ChargeCents)
				return wizard.SubmissionResult{BookingID: "bk-2", Waitlisted: true, ConfirmedAt: now}, nil
			})
		s.addOns.EXPECT().FetchAddOns(gomock.Any(), gomock.Any()).Return(nil, nil)

		res, err := s.cmds.Confirm(context.Background(), s.userID, sess.ID)
		s.Require().NoError(err)
		s.True(res.Wizard.Receipt.Waitlisted)
		s.Equal("Added to waitlist!", res.Wizard.Notice.Title)
	})

	s.Run("success: add-on catalog failure yields an empty offer", func() {
		sess := s.toConfirm(builder.NewTargetBuilder())

		s.submitter.EXPECT().SubmitBooking(gomock.Any(), gomock.Any()).
			Return(wizard.SubmissionResult{BookingID: "bk-3", ConfirmedAt: now}, nil)
		s.addOns.EXPECT().FetchAddOns(gomock.Any(), gomock.Any()).Return(nil, errors.New("catalog timeout"))

		res, err := s.cmds.Confirm(context.Background(), s.userID, sess.ID)
		s.Require().NoError(err)
		s.Empty(res.Wizard.AddOns.Items)
	})

	s.Run("error: policy not accepted", func() {
		sess := s.open(builder.NewTargetBuilder(), builder.DefaultSources())
		_, err := s.cmds.Continue(context.Background(), s.userID, sess.ID)
		s.Require().NoError(err)

		res, err := s.cmds.Confirm(context.Background(), s.userID, sess.ID)
		s.True(errs.Is(err, errs.ErrDomainValidation))
		s.True(errors.Is(err, wizard.ErrPolicyNotAccepted))
		s.Equal("Please accept the cancellation policy", res.Wizard.Notice.Title)
		s.False(res.Wizard.Submitting)
	})

	s.Run("error: booking service failure stays on confirm and is retryable", func() {
		sess := s.toConfirm(builder.NewTargetBuilder())

		s.submitter.EXPECT().SubmitBooking(gomock.Any(), gomock.Any()).
			Return(wizard.SubmissionResult{}, errors.New("upstream 503"))

		res, err := s.cmds.Confirm(context.Background(), s.userID, sess.ID)
		s.True(errs.Is(err, errs.ErrSubmissionFailed))
		s.Require().NotNil(res)
		s.Equal(wizard.StepConfirm, res.Wizard.Step)
		s.False(res.Wizard.Submitting)
		s.True(res.Wizard.PolicyAccepted)
		s.Equal("mem-1", res.Wizard.SelectedSource.ID)
		s.Require().NotNil(res.Wizard.Notice)
		s.True(res.Wizard.Notice.Retryable)

		stored := s.stored(sess.ID)
		s.False(stored.Wizard.Submitting)
	})
}

func (s *WizardCommandsTestSuite) TestConfirmIgnoresRequestCancellation() {
	sess := s.toConfirm(builder.NewTargetBuilder())
	ctx, cancel := context.WithCancel(context.Background())

	s.submitter.EXPECT().SubmitBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(subCtx context.Context, _ shared.BookingRequest) (wizard.SubmissionResult, error) {
			cancel()
			s.NoError(subCtx.Err())
			return wizard.SubmissionResult{BookingID: "bk-4", ConfirmedAt: now}, nil
		})
	s.addOns.EXPECT().FetchAddOns(gomock.Any(), gomock.Any()).Return(nil, nil)

	res, err := s.cmds.Confirm(ctx, s.userID, sess.ID)
	s.Require().NoError(err)
	s.Equal(wizard.StepSuccess, res.Wizard.Step)
}

func TestConfirmCloseCancelsSubmission(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctrl := gomock.NewController(t)
	clk := clock.NewMockClock(now)
	store := session.NewMemoryStore(clk, time.Hour)
	catalog := sharedmock.NewMockCatalogProvider(ctrl)
	payments := sharedmock.NewMockPaymentProvider(ctrl)
	submitter := sharedmock.NewMockBookingSubmitter(ctrl)
	cmds := commands.NewWizardCommands(store, catalog, payments, submitter,
		sharedmock.NewMockAddOnCatalog(ctrl), sharedmock.NewMockCalendarLinker(ctrl), sharedmock.NewMockInviteLinker(ctrl),
		clk, config.NewTestConfig(), discardLogger())

	ctx := context.Background()
	userID := uuid.New()
	tgt := builder.NewTargetBuilder().Build()
	catalog.EXPECT().FetchBookingTarget(gomock.Any(), tgt.ID).Return(tgt, nil)
	payments.EXPECT().FetchPaymentSources(gomock.Any(), userID, tgt.ID).Return(builder.DefaultSources(), nil)

	sess, err := cmds.Open(ctx, userID, tgt.ID)
	require.NoError(t, err)
	_, err = cmds.Continue(ctx, userID, sess.ID)
	require.NoError(t, err)
	_, err = cmds.AcceptPolicy(ctx, userID, sess.ID, true)
	require.NoError(t, err)

	started := make(chan struct{})
	submitter.EXPECT().SubmitBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(subCtx context.Context, _ shared.BookingRequest) (wizard.SubmissionResult, error) {
			close(started)
			<-subCtx.Done()
			return wizard.SubmissionResult{}, subCtx.Err()
		})

	type outcome struct {
		sess *shared.Session
		err  error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := cmds.Confirm(ctx, userID, sess.ID)
		done <- outcome{res, err}
	}()
	<-started

	_, err = cmds.Confirm(ctx, userID, sess.ID)
	assert.ErrorIs(t, err, wizard.ErrSubmissionInProgress)

	closed, err := cmds.Close(ctx, userID, sess.ID)
	require.NoError(t, err)
	assert.False(t, closed.Wizard.Visible)

	out := <-done
	require.ErrorIs(t, out.err, commands.ErrSubmissionCanceled)
	require.NotNil(t, out.sess)
	assert.Equal(t, wizard.StepConfirm, out.sess.Wizard.Step)
	assert.False(t, out.sess.Wizard.Submitting)
	assert.True(t, out.sess.Wizard.ResetPending)
	assert.Equal(t, "Booking canceled", out.sess.Wizard.Notice.Title)

	reset, err := cmds.FinishClose(ctx, userID, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepSelect, reset.Wizard.Step)
	assert.False(t, reset.Wizard.PolicyAccepted)
	assert.Nil(t, reset.Wizard.Notice)
	assert.Equal(t, "mem-1", reset.Wizard.SelectedSource.ID)
}

// closingStore runs onSubmitting once, right after the write that marks a
// submission as started.
type closingStore struct {
	*session.MemoryStore
	onSubmitting func(id uuid.UUID)
	fired        bool
}

func (c *closingStore) Save(ctx context.Context, s *shared.Session) error {
	if err := c.MemoryStore.Save(ctx, s); err != nil {
		return err
	}
	if s.Wizard.Submitting && !c.fired {
		c.fired = true
		c.onSubmitting(s.ID)
	}
	return nil
}

func TestConfirmCloseBeforeSubmissionStarts(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctrl := gomock.NewController(t)
	clk := clock.NewMockClock(now)
	store := &closingStore{MemoryStore: session.NewMemoryStore(clk, time.Hour)}
	catalog := sharedmock.NewMockCatalogProvider(ctrl)
	payments := sharedmock.NewMockPaymentProvider(ctrl)
	submitter := sharedmock.NewMockBookingSubmitter(ctrl)
	cmds := commands.NewWizardCommands(store, catalog, payments, submitter,
		sharedmock.NewMockAddOnCatalog(ctrl), sharedmock.NewMockCalendarLinker(ctrl), sharedmock.NewMockInviteLinker(ctrl),
		clk, config.NewTestConfig(), discardLogger())

	ctx := context.Background()
	userID := uuid.New()
	tgt := builder.NewTargetBuilder().Build()
	catalog.EXPECT().FetchBookingTarget(gomock.Any(), tgt.ID).Return(tgt, nil)
	payments.EXPECT().FetchPaymentSources(gomock.Any(), userID, tgt.ID).Return(builder.DefaultSources(), nil)
	submitter.EXPECT().SubmitBooking(gomock.Any(), gomock.Any()).Times(0)

	sess, err := cmds.Open(ctx, userID, tgt.ID)
	require.NoError(t, err)
	_, err = cmds.Continue(ctx, userID, sess.ID)
	require.NoError(t, err)
	_, err = cmds.AcceptPolicy(ctx, userID, sess.ID, true)
	require.NoError(t, err)

	var closeErr error
	store.onSubmitting = func(id uuid.UUID) {
		_, closeErr = cmds.Close(ctx, userID, id)
	}

	res, err := cmds.Confirm(ctx, userID, sess.ID)
	require.NoError(t, closeErr)
	require.ErrorIs(t, err, commands.ErrSubmissionCanceled)
	require.NotNil(t, res)
	assert.Equal(t, wizard.StepConfirm, res.Wizard.Step)
	assert.False(t, res.Wizard.Submitting)
	assert.False(t, res.Wizard.Visible)
	assert.Equal(t, "Booking canceled", res.Wizard.Notice.Title)

	reset, err := cmds.FinishClose(ctx, userID, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepSelect, reset.Wizard.Step)
	assert.Nil(t, reset.Wizard.Receipt)
}

// ================================================================================
// Receipt step
// ================================================================================

func (s *WizardCommandsTestSuite) TestAddOns() {
	s.Run("success: attach forwards the selection", func() {
		sess := s.toSuccess(builder.AddOnItems())
		ctx := context.Background()

		_, err := s.cmds.ToggleAddOn(ctx, s.userID, sess.ID, "3")
		s.Require().NoError(err)
		_, err = s.cmds.ToggleAddOn(ctx, s.userID, sess.ID, "1")
		s.Require().NoError(err)
		s.submitter.EXPECT().AttachAddOns(gomock.Any(), "bk-1", []string{"1", "3"}).Return(nil)

		res, err := s.cmds.AttachAddOns(ctx, s.userID, sess.ID)
		s.Require().NoError(err)
		s.Equal(addon.OutcomeAttached, res.Wizard.AddOns.Outcome)
		s.Equal("Add-ons added ✨", res.Wizard.Notice.Title)

		res, err = s.cmds.Done(ctx, s.userID, sess.ID)
		s.Require().NoError(err)
		s.False(res.Wizard.Visible)
	})

	s.Run("error: booking service rejects the add-ons", func() {
		sess := s.toSuccess(builder.AddOnItems())
		ctx := context.Background()

		_, err := s.cmds.ToggleAddOn(ctx, s.userID, sess.ID, "2")
		s.Require().NoError(err)
		s.submitter.EXPECT().AttachAddOns(gomock.Any(), "bk-1", []string{"2"}).Return(errors.New("conflict"))

		_, err = s.cmds.AttachAddOns(ctx, s.userID, sess.ID)
		s.True(errs.Is(err, commands.ErrAddOnAttachFailed))
		s.Equal(addon.OutcomePending, s.stored(sess.ID).Wizard.AddOns.Outcome)
	})

	s.Run("error: empty selection keeps the offer open", func() {
		sess := s.toSuccess(builder.AddOnItems())

		res, err := s.cmds.AttachAddOns(context.Background(), s.userID, sess.ID)
		s.True(errs.Is(err, errs.ErrDomainValidation))
		s.Equal("Select at least one add-on", res.Wizard.Notice.Title)
	})

	s.Run("error: done before the offer is resolved", func() {
		sess := s.toSuccess(builder.AddOnItems())

		_, err := s.cmds.Done(context.Background(), s.userID, sess.ID)
		s.True(errors.Is(err, wizard.ErrAddOnsPending))

		_, err = s.cmds.SkipAddOns(context.Background(), s.userID, sess.ID)
		s.Require().NoError(err)
		_, err = s.cmds.Done(context.Background(), s.userID, sess.ID)
		s.NoError(err)
	})
}

func (s *WizardCommandsTestSuite) TestShareLinks() {
	s.Run("calendar", func() {
		sess := s.toSuccess(nil)
		s.calendar.EXPECT().CalendarLink(gomock.Any()).
			Return(shared.CalendarLink{GoogleURL: "https://calendar.google.com/x", Filename: "vinyasa-flow.ics"}, nil)

		res, link, err := s.cmds.AddToCalendar(context.Background(), s.userID, sess.ID)
		s.Require().NoError(err)
		s.Equal("vinyasa-flow.ics", link.Filename)
		s.Equal("Added to calendar", res.Wizard.Notice.Title)
	})

	s.Run("invite", func() {
		sess := s.toSuccess(nil)
		s.invites.EXPECT().InviteLink(gomock.Any(), s.userID).Return("http://localhost:3000/book/class-101?invite=t", nil)

		res, link, err := s.cmds.InviteFriend(context.Background(), s.userID, sess.ID)
		s.Require().NoError(err)
		s.Contains(link, "invite=")
		s.Equal("Share link copied!", res.Wizard.Notice.Title)
	})

	s.Run("error: link failure", func() {
		sess := s.toSuccess(nil)
		s.calendar.EXPECT().CalendarLink(gomock.Any()).Return(shared.CalendarLink{}, errors.New("bad start"))

		_, link, err := s.cmds.AddToCalendar(context.Background(), s.userID, sess.ID)
		s.True(errs.Is(err, commands.ErrLinkFailed))
		s.Nil(link)
	})

	s.Run("error: not available before booking", func() {
		sess := s.open(builder.NewTargetBuilder(), builder.DefaultSources())

		_, _, err := s.cmds.InviteFriend(context.Background(), s.userID, sess.ID)
		s.True(errors.Is(err, wizard.ErrInvalidTransition))
	})
}

func (s *WizardCommandsTestSuite) TestCloseLifecycle() {
	ctx := context.Background()
	sess := s.toConfirm(builder.NewTargetBuilder())

	res, err := s.cmds.Close(ctx, s.userID, sess.ID)
	s.Require().NoError(err)
	s.False(res.Wizard.Visible)
	s.Equal(wizard.StepConfirm, res.Wizard.Step)

	_, err = s.cmds.Back(ctx, s.userID, sess.ID)
	s.True(errors.Is(err, wizard.ErrWizardClosed))

	res, err = s.cmds.Reopen(ctx, s.userID, sess.ID)
	s.Require().NoError(err)
	s.True(res.Wizard.Visible)
	s.Equal(wizard.StepSelect, res.Wizard.Step)
	s.False(res.Wizard.PolicyAccepted)

	_, err = s.cmds.FinishClose(ctx, s.userID, sess.ID)
	s.True(errors.Is(err, wizard.ErrInvalidTransition))
}

func (s *WizardCommandsTestSuite) TestFinishCloseAfterDoneDeletesSession() {
	ctx := context.Background()
	sess := s.toSuccess(nil)

	_, err := s.cmds.Done(ctx, s.userID, sess.ID)
	s.Require().NoError(err)

	res, err := s.cmds.FinishClose(ctx, s.userID, sess.ID)
	s.Require().NoError(err)
	s.Equal(wizard.StepSelect, res.Wizard.Step)
	s.Nil(res.Wizard.Receipt)

	_, err = s.store.Get(ctx, sess.ID)
	s.ErrorIs(err, errs.ErrSessionNotFound)

	_, err = s.cmds.Reopen(ctx, s.userID, sess.ID)
	s.ErrorIs(err, errs.ErrSessionNotFound)
}

func (s *WizardCommandsTestSuite) TestFinishCloseBeforeBookingKeepsSession() {
	ctx := context.Background()
	sess := s.toConfirm(builder.NewTargetBuilder())

	_, err := s.cmds.Close(ctx, s.userID, sess.ID)
	s.Require().NoError(err)
	_, err = s.cmds.FinishClose(ctx, s.userID, sess.ID)
	s.Require().NoError(err)

	stored := s.stored(sess.ID)
	s.False(stored.Wizard.Visible)
	s.Equal(wizard.StepSelect, stored.Wizard.Step)
}

// ================================================================================
// Compare-and-swap retries
// ================================================================================

func TestUpdateRetriesOnConflict(t *testing.T) {
	userID := uuid.New()
	w, err := wizard.New(builder.NewTargetBuilder().Build(), builder.DefaultSources())
	require.NoError(t, err)
	base := shared.Session{ID: uuid.New(), UserID: userID, Version: 3, Wizard: w.Snapshot()}

	tests := []struct {
		name      string
		conflicts int
		wantErr   error
		wantSaves int
	}{
		{name: "success after one conflict", conflicts: 1, wantSaves: 2},
		{name: "success after three conflicts", conflicts: 3, wantSaves: 4},
		{name: "error: retries exhausted", conflicts: 10, wantErr: errs.ErrConcurrentModification, wantSaves: 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := sharedmock.NewMockSessionStore(ctrl)
			cmds := commands.NewWizardCommands(store,
				sharedmock.NewMockCatalogProvider(ctrl), sharedmock.NewMockPaymentProvider(ctrl),
				sharedmock.NewMockBookingSubmitter(ctrl), sharedmock.NewMockAddOnCatalog(ctrl),
				sharedmock.NewMockCalendarLinker(ctrl), sharedmock.NewMockInviteLinker(ctrl),
				clock.NewMockClock(now), config.NewTestConfig(), discardLogger())

			store.EXPECT().Get(gomock.Any(), base.ID).
				DoAndReturn(func(context.Context, uuid.UUID) (*shared.Session, error) {
					s := base
					return &s, nil
				}).Times(tc.wantSaves)

			saves := 0
			store.EXPECT().Save(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, s *shared.Session) error {
					saves++
					if saves <= tc.conflicts {
						return errs.ErrConcurrentModification
					}
					s.Version++
					return nil
				}).Times(tc.wantSaves)

			res, err := cmds.Continue(context.Background(), userID, base.ID)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, wizard.StepConfirm, res.Wizard.Step)
			assert.Equal(t, int64(4), res.Version)
		})
	}
}
