//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"studio-booking/internal/domain/payment"
	"studio-booking/internal/domain/wizard"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/queries"
	"studio-booking/internal/usecase/shared"
	"studio-booking/tests/common/builder"
	sharedmock "studio-booking/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var confirmedAt = time.Date(2025, 1, 5, 12, 0, 0, 0, time.UTC)

func sessionFor(t *testing.T, userID uuid.UUID, w *wizard.Wizard) *shared.Session {
	t.Helper()
	return &shared.Session{ID: uuid.New(), UserID: userID, Version: 4, Wizard: w.Snapshot(), UpdatedAt: confirmedAt}
}

func TestWizardQueriesGet(t *testing.T) {
	userID := uuid.New()
	w, err := wizard.New(builder.NewTargetBuilder().Build(), builder.DefaultSources())
	require.NoError(t, err)
	sess := sessionFor(t, userID, w)

	tests := []struct {
		name    string
		userID  uuid.UUID
		stored  *shared.Session
		getErr  error
		wantErr error
	}{
		{name: "success", userID: userID, stored: sess},
		{name: "error: other user's session", userID: uuid.New(), stored: sess, wantErr: errs.ErrSessionNotFound},
		{name: "error: missing session", userID: userID, getErr: errs.ErrSessionNotFound, wantErr: errs.ErrSessionNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := sharedmock.NewMockSessionStore(ctrl)
			store.EXPECT().Get(gomock.Any(), sess.ID).Return(tc.stored, tc.getErr)

			view, err := queries.NewWizardQueries(store).Get(context.Background(), tc.userID, sess.ID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, sess.ID, view.SessionID)
			assert.Equal(t, int64(4), view.Version)
		})
	}
}

func TestBuildWizardView(t *testing.T) {
	userID := uuid.New()

	t.Run("select step lists options", func(t *testing.T) {
		w, err := wizard.New(builder.NewTargetBuilder().Build(), []payment.Source{builder.Membership(), builder.WorkshopPass(false)})
		require.NoError(t, err)

		view, err := queries.BuildWizardView(sessionFor(t, userID, w))
		require.NoError(t, err)

		want := queries.TargetSummary{
			ID:          "class-101",
			Kind:        "class",
			Title:       "Vinyasa Flow",
			Style:       "Vinyasa",
			Instructor:  "Maya Chen",
			Studio:      "Sunrise Yoga",
			Location:    "123 Main St",
			StartsAt:    time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC),
			Schedule:    "Mon, Jan 6 · 9:00 AM",
			DurationMin: 60,
			SpotsLeft:   5,
			DropInPrice: "$25.00",
		}
		if diff := cmp.Diff(want, view.Target); diff != "" {
			t.Errorf("target summary mismatch (-want +got):\n%s", diff)
		}

		assert.Equal(t, wizard.StepSelect, view.Step)
		assert.Equal(t, "Book Class", view.Title)
		assert.Equal(t, "Continue", view.SubmitLabel)
		assert.Equal(t, "mem-1", view.SelectedSourceID)
		require.Len(t, view.Options, 3)
		assert.Equal(t, "drop-in", view.Options[2].Source.ID)
		assert.False(t, view.Options[1].Selectable)
		assert.True(t, view.Actions.CanContinue)
		assert.False(t, view.Actions.CanSubmit)
		assert.Nil(t, view.PaymentSummary)
		assert.Nil(t, view.Receipt)
		assert.Nil(t, view.WaitlistNotice)
	})

	t.Run("confirm step shows payment summary", func(t *testing.T) {
		w, err := wizard.New(builder.NewTargetBuilder().Build(), []payment.Source{builder.ClassPack(7)})
		require.NoError(t, err)
		require.NoError(t, w.Continue())

		view, err := queries.BuildWizardView(sessionFor(t, userID, w))
		require.NoError(t, err)

		assert.Empty(t, view.Options)
		require.NotNil(t, view.PaymentSummary)
		assert.Equal(t, "7 classes remaining after this", view.PaymentSummary.Detail)
		assert.Equal(t, "Confirm Booking", view.Title)
		assert.True(t, view.Actions.CanGoBack)
		assert.False(t, view.Actions.CanSubmit)
		assert.Contains(t, view.CancellationPolicy, "2 hours before class")
	})

	t.Run("full target shows waitlist notice", func(t *testing.T) {
		w, err := wizard.New(builder.NewTargetBuilder().Full().Build(), builder.DefaultSources())
		require.NoError(t, err)

		view, err := queries.BuildWizardView(sessionFor(t, userID, w))
		require.NoError(t, err)

		assert.True(t, view.Target.IsFull)
		assert.Equal(t, "Join Waitlist", view.Title)
		require.NotNil(t, view.WaitlistNotice)
		assert.Equal(t, "Class is full", view.WaitlistNotice.Title)
	})

	t.Run("success step shows receipt and add-ons", func(t *testing.T) {
		w, err := wizard.New(builder.NewTargetBuilder().Build(), []payment.Source{builder.DropIn(2500)})
		require.NoError(t, err)
		require.NoError(t, w.Select("drop-in"))
		require.NoError(t, w.Continue())
		require.NoError(t, w.AcceptPolicy(true))
		_, err = w.BeginSubmission()
		require.NoError(t, err)
		require.NoError(t, w.CompleteSubmission(wizard.SubmissionResult{BookingID: "bk-9", ConfirmedAt: confirmedAt}, builder.AddOnItems()))
		require.NoError(t, w.ToggleAddOn("2"))

		view, err := queries.BuildWizardView(sessionFor(t, userID, w))
		require.NoError(t, err)

		want := &queries.ReceiptView{
			BookingID:   "bk-9",
			SourceName:  "Pay Drop-in Rate",
			SourceType:  "DROP_IN",
			Charged:     "$25.00",
			ConfirmedAt: confirmedAt,
		}
		if diff := cmp.Diff(want, view.Receipt); diff != "" {
			t.Errorf("receipt mismatch (-want +got):\n%s", diff)
		}

		require.NotNil(t, view.AddOns)
		assert.True(t, view.AddOns.Visible)
		assert.True(t, view.AddOns.CanAttach)
		require.Len(t, view.AddOns.Items, 3)
		assert.Equal(t, "$15.00", view.AddOns.Items[1].PriceLabel)
		assert.True(t, view.AddOns.Items[1].Selected)
		assert.False(t, view.AddOns.Items[0].Selected)
		assert.Equal(t, "You're booked!", view.Title)
		assert.False(t, view.Actions.CanFinish)
	})
}
