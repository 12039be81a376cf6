package wizard

import (
	"slices"

	"studio-booking/internal/domain/addon"
	"studio-booking/internal/domain/payment"
	"studio-booking/internal/domain/target"
	"studio-booking/internal/pkg/errs"
)

// Snapshot is the persisted form of a Wizard.
type Snapshot struct {
	Target         target.Target    `json:"target"`
	Sources        []payment.Source `json:"sources"`
	Step           Step             `json:"step"`
	SelectedSource *payment.Source  `json:"selectedSource,omitempty"`
	PolicyAccepted bool             `json:"policyAccepted"`
	Submitting     bool             `json:"submitting"`
	Receipt        *Receipt         `json:"receipt,omitempty"`
	AddOns         *OfferSnapshot   `json:"addOns,omitempty"`
	Visible        bool             `json:"visible"`
	ResetPending   bool             `json:"resetPending"`
	Notice         *Notice          `json:"notice,omitempty"`
}

type OfferSnapshot struct {
	Items    []addon.Item  `json:"items"`
	Selected []string      `json:"selected"`
	Outcome  addon.Outcome `json:"outcome"`
}

func (w *Wizard) Snapshot() Snapshot {
	snap := Snapshot{
		Target:       w.target,
		Sources:      slices.Clone(w.sources),
		Step:         w.state.Step(),
		Visible:      w.visible,
		ResetPending: w.resetPending,
		Notice:       w.notice,
	}
	switch s := w.state.(type) {
	case Selecting:
		snap.SelectedSource = s.Source
		snap.PolicyAccepted = s.PolicyAccepted
	case Confirming:
		src := s.Source
		snap.SelectedSource = &src
		snap.PolicyAccepted = s.PolicyAccepted
		snap.Submitting = s.Submitting
	case Succeeded:
		receipt := s.Receipt
		snap.Receipt = &receipt
		snap.PolicyAccepted = true
		snap.AddOns = &OfferSnapshot{
			Items:    s.AddOns.Items(),
			Selected: s.AddOns.Selection().IDs(),
			Outcome:  s.AddOns.Outcome(),
		}
	}
	return snap
}

// Restore rebuilds a Wizard and rejects snapshots no sequence of operations could produce.
func Restore(snap Snapshot) (*Wizard, error) {
	w, err := New(snap.Target, snap.Sources)
	if err != nil {
		return nil, errs.Wrap(ErrInvalidSnapshot, err.Error())
	}
	w.visible = snap.Visible
	w.resetPending = snap.ResetPending
	w.notice = snap.Notice

	switch snap.Step {
	case StepSelect:
		if snap.Submitting || snap.Receipt != nil {
			return nil, errs.Wrap(ErrInvalidSnapshot, "select step carries confirm or success data")
		}
		sel := Selecting{PolicyAccepted: snap.PolicyAccepted}
		if snap.SelectedSource != nil {
			src, err := payment.Pick(w.options, snap.SelectedSource.ID)
			if err != nil {
				return nil, errs.Wrap(ErrInvalidSnapshot, err.Error())
			}
			sel.Source = &src
		}
		w.state = sel
	case StepConfirm:
		if snap.SelectedSource == nil {
			return nil, errs.Wrap(ErrInvalidSnapshot, "confirm step without a payment source")
		}
		if snap.Receipt != nil {
			return nil, errs.Wrap(ErrInvalidSnapshot, "confirm step carries a receipt")
		}
		src, err := payment.Pick(w.options, snap.SelectedSource.ID)
		if err != nil {
			return nil, errs.Wrap(ErrInvalidSnapshot, err.Error())
		}
		w.state = Confirming{Source: src, PolicyAccepted: snap.PolicyAccepted, Submitting: snap.Submitting}
	case StepSuccess:
		if snap.Receipt == nil {
			return nil, errs.Wrap(ErrInvalidSnapshot, "success step without a receipt")
		}
		if !snap.PolicyAccepted {
			return nil, errs.Wrap(ErrInvalidSnapshot, "success step without policy acceptance")
		}
		offer := addon.NewOffer(nil)
		if snap.AddOns != nil {
			offer, err = addon.ReconstructOffer(snap.AddOns.Items, snap.AddOns.Selected, snap.AddOns.Outcome)
			if err != nil {
				return nil, errs.Wrap(ErrInvalidSnapshot, err.Error())
			}
		}
		w.state = Succeeded{Receipt: *snap.Receipt, AddOns: offer}
	default:
		return nil, errs.Wrap(ErrInvalidSnapshot, "unknown step")
	}
	return w, nil
}
