package wizard

import (
	"errors"
	"time"

	"studio-booking/internal/domain/addon"
	"studio-booking/internal/domain/payment"
	"studio-booking/internal/pkg/errs"
)

var (
	ErrNoSourceSelected     = errs.New("no payment source selected")
	ErrPolicyNotAccepted    = errs.New("cancellation policy not accepted")
	ErrSubmissionInProgress = errs.New("booking submission already in progress")
	ErrInvalidTransition    = errs.New("invalid wizard transition")
	ErrWizardClosed         = errs.New("wizard is closed")
	ErrAddOnsPending        = errs.New("add-on offer not resolved yet")
	ErrInvalidSnapshot      = errs.New("invalid wizard snapshot")
)

// IsValidation reports whether err is a recoverable input problem that leaves the step unchanged.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrNoSourceSelected,
		ErrPolicyNotAccepted,
		payment.ErrSourceNotFound,
		payment.ErrSourceNotCovering,
		addon.ErrUnknownAddOn,
		addon.ErrEmptySelection,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

type Step string

const (
	StepSelect  Step = "select"
	StepConfirm Step = "confirm"
	StepSuccess Step = "success"
)

func (s Step) String() string {
	return string(s)
}

// State is one of Selecting, Confirming or Succeeded.
type State interface {
	Step() Step
	isState()
}

type Selecting struct {
	Source         *payment.Source
	PolicyAccepted bool
}

type Confirming struct {
	Source         payment.Source
	PolicyAccepted bool
	Submitting     bool
}

type Succeeded struct {
	Receipt Receipt
	AddOns  *addon.Offer
}

func (Selecting) Step() Step  { return StepSelect }
func (Confirming) Step() Step { return StepConfirm }
func (Succeeded) Step() Step  { return StepSuccess }

func (Selecting) isState()  {}
func (Confirming) isState() {}
func (Succeeded) isState()  {}

type Receipt struct {
	BookingID    string         `json:"bookingId"`
	Source       payment.Source `json:"source"`
	Waitlisted   bool           `json:"waitlisted"`
	ChargedCents int64          `json:"chargedCents"`
	Currency     string         `json:"currency"`
	ConfirmedAt  time.Time      `json:"confirmedAt"`
}

// SubmissionRequest is what the booking service receives.
type SubmissionRequest struct {
	TargetID       string `json:"targetId"`
	SourceID       string `json:"sourceId"`
	SourceType     string `json:"sourceType"`
	PolicyAccepted bool   `json:"policyAccepted"`
	Waitlist       bool   `json:"waitlist"`
	ChargeCents    int64  `json:"chargeCents"`
	Currency       string `json:"currency"`
}

type SubmissionResult struct {
	BookingID   string
	Waitlisted  bool
	ConfirmedAt time.Time
}

type NoticeKind string

const (
	NoticeValidation NoticeKind = "validation"
	NoticeFailure    NoticeKind = "failure"
	NoticeSuccess    NoticeKind = "success"
	NoticeInfo       NoticeKind = "info"
)

// Notice is a transient message; every operation replaces the previous one.
type Notice struct {
	Kind        NoticeKind `json:"kind"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Retryable   bool       `json:"retryable,omitempty"`
}
