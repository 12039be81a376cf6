package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"studio-booking/internal/domain/payment"
)

const (
	labelProcessing = "Processing..."
	labelWaitlist   = "Join Waitlist"
	labelConfirm    = "Confirm Booking"
	labelContinue   = "Continue"
)

// PaymentSummary is the confirm step's recap of the chosen source.
type PaymentSummary struct {
	SourceName  string `json:"sourceName"`
	Detail      string `json:"detail"`
	PriceLabel  string `json:"priceLabel"`
	Included    bool   `json:"included"`
	AmountCents int64  `json:"amountCents"`
}

func (w *Wizard) Title() string {
	switch s := w.state.(type) {
	case Selecting:
		if w.target.IsFull() {
			return labelWaitlist
		}
		return "Book " + w.target.Kind.Label()
	case Confirming:
		return labelConfirm
	case Succeeded:
		if s.Receipt.Waitlisted {
			return "You're on the waitlist!"
		}
		return "You're booked!"
	default:
		return ""
	}
}

func (w *Wizard) Subtitle() string {
	s, ok := w.state.(Succeeded)
	if !ok {
		return ""
	}
	if s.Receipt.Waitlisted {
		return "We'll notify you if a spot opens up"
	}
	return fmt.Sprintf("See you at %s", w.target.Studio)
}

// SubmitLabel is the primary button text of the current step. A full target
// always reads as a waitlist action.
func (w *Wizard) SubmitLabel() string {
	switch s := w.state.(type) {
	case Selecting:
		return labelContinue
	case Confirming:
		switch {
		case s.Submitting:
			return labelProcessing
		case w.target.IsFull():
			return labelWaitlist
		case s.Source.HasPrice():
			return "Pay " + payment.FormatCents(s.Source.Price(), w.target.CurrencyCode())
		default:
			return labelConfirm
		}
	default:
		return ""
	}
}

// PaymentSummary is nil outside the confirm step.
func (w *Wizard) PaymentSummary() *PaymentSummary {
	c, ok := w.state.(Confirming)
	if !ok {
		return nil
	}
	src := c.Source
	sum := &PaymentSummary{
		SourceName: src.Name,
		Detail:     summaryDetail(src),
	}
	if src.HasPrice() {
		sum.AmountCents = src.Price()
		sum.PriceLabel = payment.FormatCents(src.Price(), w.target.CurrencyCode())
	} else {
		sum.Included = true
		sum.PriceLabel = "Included"
	}
	return sum
}

func summaryDetail(src payment.Source) string {
	switch {
	case src.IsDropIn():
		return "One-time payment"
	case src.Remaining != nil && *src.Remaining > 0:
		return fmt.Sprintf("%d classes remaining after this", *src.Remaining)
	default:
		return "Unlimited classes"
	}
}

func (w *Wizard) CancellationPolicy() string {
	hours := w.target.CancellationWindow().Hours()
	unit := "hours"
	if hours == 1 {
		unit = "hour"
	}
	return fmt.Sprintf(
		"Free cancellation up to %s %s before %s. Late cancellations may incur a fee.",
		strconv.FormatFloat(hours, 'f', -1, 64), unit, strings.ToLower(w.target.Kind.Label()),
	)
}

// WaitlistNotice is shown in the select step when no spots are left.
func (w *Wizard) WaitlistNotice() *Notice {
	if _, ok := w.state.(Selecting); !ok || !w.target.IsFull() {
		return nil
	}
	return &Notice{
		Kind:        NoticeInfo,
		Title:       w.target.Kind.Label() + " is full",
		Description: "You'll be added to the waitlist. We'll notify you if a spot opens.",
	}
}

func (w *Wizard) CanContinue() bool {
	s, ok := w.state.(Selecting)
	return w.visible && ok && s.Source != nil
}

func (w *Wizard) CanGoBack() bool {
	c, ok := w.state.(Confirming)
	return w.visible && ok && !c.Submitting
}

func (w *Wizard) CanSubmit() bool {
	c, ok := w.state.(Confirming)
	return w.visible && ok && !c.Submitting && c.PolicyAccepted
}

func (w *Wizard) CanFinish() bool {
	s, ok := w.state.(Succeeded)
	return w.visible && ok && s.AddOns.IsResolved()
}
