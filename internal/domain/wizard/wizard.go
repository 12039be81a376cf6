package wizard

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"studio-booking/internal/domain/addon"
	"studio-booking/internal/domain/payment"
	"studio-booking/internal/domain/target"
)

// Wizard drives one booking through select → confirm → success.
// Steps only move forward, except confirm → select via Back.
type Wizard struct {
	target       target.Target
	sources      []payment.Source
	options      []payment.Option
	state        State
	visible      bool
	resetPending bool
	notice       *Notice
}

func New(t target.Target, sources []payment.Source) (*Wizard, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	for _, s := range sources {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}

	w := &Wizard{
		target:  t,
		sources: slices.Clone(sources),
		options: payment.Arrange(sources, t.DropInPriceCents, t.CurrencyCode()),
		visible: true,
	}
	w.state = w.initialState()
	return w, nil
}

func (w *Wizard) initialState() State {
	return Selecting{Source: payment.DefaultSelection(w.sources)}
}

func (w *Wizard) Select(sourceID string) error {
	sel, err := w.selecting()
	if err != nil {
		return err
	}
	src, err := payment.Pick(w.options, sourceID)
	if err != nil {
		w.notice = &Notice{Kind: NoticeValidation, Title: "This payment method can't be used for this booking"}
		return err
	}
	sel.Source = &src
	w.state = sel
	return nil
}

func (w *Wizard) Continue() error {
	sel, err := w.selecting()
	if err != nil {
		return err
	}
	if sel.Source == nil {
		w.notice = &Notice{Kind: NoticeValidation, Title: "Please select a payment method"}
		return ErrNoSourceSelected
	}
	w.state = Confirming{Source: *sel.Source, PolicyAccepted: sel.PolicyAccepted}
	return nil
}

func (w *Wizard) Back() error {
	conf, err := w.confirming()
	if err != nil {
		return err
	}
	if conf.Submitting {
		return ErrSubmissionInProgress
	}
	src := conf.Source
	w.state = Selecting{Source: &src, PolicyAccepted: conf.PolicyAccepted}
	return nil
}

func (w *Wizard) AcceptPolicy(accepted bool) error {
	conf, err := w.confirming()
	if err != nil {
		return err
	}
	if conf.Submitting {
		return ErrSubmissionInProgress
	}
	conf.PolicyAccepted = accepted
	w.state = conf
	return nil
}

// BeginSubmission marks the wizard as submitting. The flag is the only guard against duplicate submissions.
func (w *Wizard) BeginSubmission() (SubmissionRequest, error) {
	conf, err := w.confirming()
	if err != nil {
		return SubmissionRequest{}, err
	}
	if conf.Submitting {
		return SubmissionRequest{}, ErrSubmissionInProgress
	}
	if !conf.PolicyAccepted {
		w.notice = &Notice{Kind: NoticeValidation, Title: "Please accept the cancellation policy"}
		return SubmissionRequest{}, ErrPolicyNotAccepted
	}

	conf.Submitting = true
	w.state = conf

	waitlist := w.target.IsFull()
	var charge int64
	if !waitlist {
		charge = conf.Source.Price()
	}
	return SubmissionRequest{
		TargetID:       w.target.ID,
		SourceID:       conf.Source.ID,
		SourceType:     string(conf.Source.Type),
		PolicyAccepted: conf.PolicyAccepted,
		Waitlist:       waitlist,
		ChargeCents:    charge,
		Currency:       w.target.CurrencyCode(),
	}, nil
}

// CompleteSubmission may run after Close; the receipt then survives until FinishClose.
func (w *Wizard) CompleteSubmission(res SubmissionResult, addOns []addon.Item) error {
	conf, ok := w.state.(Confirming)
	if !ok || !conf.Submitting {
		return ErrInvalidTransition
	}
	if !conf.PolicyAccepted {
		return ErrPolicyNotAccepted
	}

	var charged int64
	if !res.Waitlisted {
		charged = conf.Source.Price()
	}
	w.state = Succeeded{
		Receipt: Receipt{
			BookingID:    res.BookingID,
			Source:       conf.Source,
			Waitlisted:   res.Waitlisted,
			ChargedCents: charged,
			Currency:     w.target.CurrencyCode(),
			ConfirmedAt:  res.ConfirmedAt,
		},
		AddOns: addon.NewOffer(addOns),
	}

	if res.Waitlisted {
		w.notice = &Notice{Kind: NoticeSuccess, Title: "Added to waitlist!", Description: "We'll notify you if a spot opens up"}
	} else {
		w.notice = &Notice{Kind: NoticeSuccess, Title: "Booking confirmed!", Description: fmt.Sprintf("See you at %s", w.target.Studio)}
	}
	return nil
}

// FailSubmission keeps the selected source and policy acceptance so the user can retry.
func (w *Wizard) FailSubmission(cause error) error {
	conf, ok := w.state.(Confirming)
	if !ok || !conf.Submitting {
		return ErrInvalidTransition
	}
	conf.Submitting = false
	w.state = conf

	if errors.Is(cause, context.Canceled) {
		w.notice = &Notice{Kind: NoticeFailure, Title: "Booking canceled", Description: "Nothing was booked. You can try again.", Retryable: true}
		return nil
	}
	w.notice = &Notice{Kind: NoticeFailure, Title: "We couldn't complete your booking", Description: "Please try again.", Retryable: true}
	return nil
}

// Close hides the wizard. State is kept on screen until FinishClose signals the transition ended.
func (w *Wizard) Close() {
	if !w.visible {
		return
	}
	w.visible = false
	w.resetPending = true
}

func (w *Wizard) FinishClose() error {
	if w.visible {
		return ErrInvalidTransition
	}
	if w.resetPending {
		w.reset()
	}
	return nil
}

func (w *Wizard) Reopen() {
	if w.visible {
		return
	}
	if w.resetPending {
		w.reset()
	}
	w.notice = nil
	w.visible = true
}

func (w *Wizard) reset() {
	w.state = w.initialState()
	w.notice = nil
	w.resetPending = false
}

func (w *Wizard) ToggleAddOn(id string) error {
	done, err := w.succeeded()
	if err != nil {
		return err
	}
	if err := done.AddOns.Toggle(id); err != nil {
		if errors.Is(err, addon.ErrUnknownAddOn) {
			w.notice = &Notice{Kind: NoticeValidation, Title: "This add-on isn't available for this booking"}
		}
		return err
	}
	return nil
}

// AttachAddOns resolves the offer; the caller forwards the ids to the booking service.
func (w *Wizard) AttachAddOns() ([]string, error) {
	done, err := w.succeeded()
	if err != nil {
		return nil, err
	}
	ids, err := done.AddOns.Attach()
	if err != nil {
		if errors.Is(err, addon.ErrEmptySelection) {
			w.notice = &Notice{Kind: NoticeValidation, Title: "Select at least one add-on"}
		}
		return nil, err
	}
	w.notice = &Notice{Kind: NoticeSuccess, Title: "Add-ons added ✨", Description: "We'll have them ready for you!"}
	return ids, nil
}

func (w *Wizard) SkipAddOns() error {
	done, err := w.succeeded()
	if err != nil {
		return err
	}
	return done.AddOns.Skip()
}

func (w *Wizard) AddToCalendar() error {
	if _, err := w.succeeded(); err != nil {
		return err
	}
	w.notice = &Notice{Kind: NoticeInfo, Title: "Added to calendar"}
	return nil
}

func (w *Wizard) InviteFriend() error {
	if _, err := w.succeeded(); err != nil {
		return err
	}
	w.notice = &Notice{Kind: NoticeInfo, Title: "Share link copied!"}
	return nil
}

// Done is available once the add-on offer is out of the way.
func (w *Wizard) Done() error {
	done, err := w.succeeded()
	if err != nil {
		return err
	}
	if !done.AddOns.IsResolved() {
		return ErrAddOnsPending
	}
	w.Close()
	return nil
}

func (w *Wizard) selecting() (Selecting, error) {
	if err := w.beginOp(); err != nil {
		return Selecting{}, err
	}
	s, ok := w.state.(Selecting)
	if !ok {
		return Selecting{}, ErrInvalidTransition
	}
	return s, nil
}

func (w *Wizard) confirming() (Confirming, error) {
	if err := w.beginOp(); err != nil {
		return Confirming{}, err
	}
	c, ok := w.state.(Confirming)
	if !ok {
		return Confirming{}, ErrInvalidTransition
	}
	return c, nil
}

func (w *Wizard) succeeded() (Succeeded, error) {
	if err := w.beginOp(); err != nil {
		return Succeeded{}, err
	}
	s, ok := w.state.(Succeeded)
	if !ok {
		return Succeeded{}, ErrInvalidTransition
	}
	return s, nil
}

func (w *Wizard) beginOp() error {
	if !w.visible {
		return ErrWizardClosed
	}
	w.notice = nil
	return nil
}

func (w *Wizard) Target() target.Target     { return w.target }
func (w *Wizard) Options() []payment.Option { return slices.Clone(w.options) }
func (w *Wizard) State() State              { return w.state }
func (w *Wizard) Step() Step                { return w.state.Step() }
func (w *Wizard) Visible() bool             { return w.visible }
func (w *Wizard) Notice() *Notice           { return w.notice }

// Receipt is nil until the booking succeeded.
func (w *Wizard) Receipt() *Receipt {
	s, ok := w.state.(Succeeded)
	if !ok {
		return nil
	}
	r := s.Receipt
	return &r
}

func (w *Wizard) IsSubmitting() bool {
	c, ok := w.state.(Confirming)
	return ok && c.Submitting
}

// SelectedSource is nil only in the select step before a choice is made.
func (w *Wizard) SelectedSource() *payment.Source {
	switch s := w.state.(type) {
	case Selecting:
		return s.Source
	case Confirming:
		src := s.Source
		return &src
	case Succeeded:
		src := s.Receipt.Source
		return &src
	default:
		return nil
	}
}

func (w *Wizard) PolicyAccepted() bool {
	switch s := w.state.(type) {
	case Selecting:
		return s.PolicyAccepted
	case Confirming:
		return s.PolicyAccepted
	case Succeeded:
		return true
	default:
		return false
	}
}
