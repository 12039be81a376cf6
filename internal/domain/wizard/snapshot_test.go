//go:build unit

package wizard_test

import (
	"testing"

	"studio-booking/internal/domain/addon"
	"studio-booking/internal/domain/wizard"
	"studio-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	t.Run("confirm step while submitting", func(t *testing.T) {
		w := newWizard(t, builder.NewTargetBuilder(), builder.DefaultSources())
		require.NoError(t, w.Select("pack-1"))
		require.NoError(t, w.Continue())
		require.NoError(t, w.AcceptPolicy(true))
		_, err := w.BeginSubmission()
		require.NoError(t, err)

		restored, err := wizard.Restore(w.Snapshot())

		require.NoError(t, err)
		assert.Equal(t, w.State(), restored.State())
		assert.True(t, restored.IsSubmitting())
	})

	t.Run("success step with partial add-on selection", func(t *testing.T) {
		w := bookedWizard(t, builder.AddOnItems())
		require.NoError(t, w.ToggleAddOn("2"))

		restored, err := wizard.Restore(w.Snapshot())

		require.NoError(t, err)
		done, ok := restored.State().(wizard.Succeeded)
		require.True(t, ok)
		assert.Equal(t, "bk-1", done.Receipt.BookingID)
		assert.True(t, done.AddOns.Selection().Has("2"))
		assert.Equal(t, addon.OutcomePending, done.AddOns.Outcome())
	})

	t.Run("closed wizard keeps pending reset", func(t *testing.T) {
		w := bookedWizard(t, nil)
		w.Close()

		restored, err := wizard.Restore(w.Snapshot())

		require.NoError(t, err)
		assert.False(t, restored.Visible())
		require.NoError(t, restored.FinishClose())
		assert.Equal(t, wizard.StepSelect, restored.Step())
	})
}

func TestRestoreRejectsIllegalSnapshots(t *testing.T) {
	base := func(t *testing.T) wizard.Snapshot {
		return newWizard(t, builder.NewTargetBuilder(), builder.DefaultSources()).Snapshot()
	}
	receipt := &wizard.Receipt{BookingID: "bk-1", Source: builder.Membership()}

	tests := []struct {
		name   string
		mutate func(*wizard.Snapshot)
	}{
		{name: "confirm without source", mutate: func(s *wizard.Snapshot) {
			s.Step = wizard.StepConfirm
			s.SelectedSource = nil
		}},
		{name: "success without receipt", mutate: func(s *wizard.Snapshot) {
			s.Step = wizard.StepSuccess
			s.PolicyAccepted = true
		}},
		{name: "success without policy acceptance", mutate: func(s *wizard.Snapshot) {
			s.Step = wizard.StepSuccess
			s.Receipt = receipt
		}},
		{name: "select while submitting", mutate: func(s *wizard.Snapshot) {
			s.Submitting = true
		}},
		{name: "non-covering selection", mutate: func(s *wizard.Snapshot) {
			wp := builder.WorkshopPass(false)
			s.Sources = append(s.Sources, wp)
			s.SelectedSource = &wp
		}},
		{name: "unknown step", mutate: func(s *wizard.Snapshot) {
			s.Step = "review"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := base(t)
			tt.mutate(&snap)

			_, err := wizard.Restore(snap)

			assert.ErrorIs(t, err, wizard.ErrInvalidSnapshot)
		})
	}
}
