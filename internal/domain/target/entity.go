package target

import (
	"strings"
	"time"

	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/pkg/patch"
)

const DefaultCancellationMinutes = 120

const scheduleLayout = "Mon, Jan 2 · 3:04 PM"

// Target is the bookable entity supplied by the catalog. It is never mutated by the wizard.
type Target struct {
	ID                  string    `json:"id" yaml:"id"`
	Kind                Kind      `json:"kind" yaml:"kind"`
	Title               string    `json:"title" yaml:"title"`
	Style               string    `json:"style,omitempty" yaml:"style"`
	Instructor          string    `json:"instructor" yaml:"instructor"`
	StudioID            string    `json:"studioId" yaml:"studio_id"`
	Studio              string    `json:"studio" yaml:"studio"`
	Location            string    `json:"location" yaml:"location"`
	StartsAt            time.Time `json:"startsAt" yaml:"starts_at"`
	DurationMin         int       `json:"durationMin" yaml:"duration_min"`
	Capacity            int       `json:"capacity" yaml:"capacity"`
	SpotsLeft           int       `json:"spotsLeft" yaml:"spots_left"`
	DropInPriceCents    int64     `json:"dropInPriceCents" yaml:"drop_in_price_cents"`
	Currency            string    `json:"currency" yaml:"currency"`
	CancellationMinutes *int      `json:"cancellationMinutes,omitempty" yaml:"cancellation_minutes"`
}

func (t Target) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errs.Wrap(ErrInvalidTarget, "id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errs.Wrap(ErrInvalidTarget, "title is required")
	}
	if !t.Kind.IsValid() {
		return ErrUnknownKind
	}
	if t.SpotsLeft < 0 || t.Capacity < 0 {
		return errs.Wrap(ErrInvalidTarget, "capacity cannot be negative")
	}
	if t.Capacity > 0 && t.SpotsLeft > t.Capacity {
		return errs.Wrap(ErrInvalidTarget, "spots left exceeds capacity")
	}
	if t.DropInPriceCents < 0 {
		return errs.Wrap(ErrInvalidTarget, "drop-in price cannot be negative")
	}
	if t.CancellationMinutes != nil && *t.CancellationMinutes < 0 {
		return errs.Wrap(ErrInvalidTarget, "cancellation window cannot be negative")
	}
	return nil
}

func (t Target) IsFull() bool {
	return t.SpotsLeft == 0
}

func (t Target) CancellationWindow() time.Duration {
	return time.Duration(patch.Coalesce(t.CancellationMinutes, DefaultCancellationMinutes)) * time.Minute
}

func (t Target) EndsAt() time.Time {
	return t.StartsAt.Add(time.Duration(t.DurationMin) * time.Minute)
}

func (t Target) ScheduleLabel() string {
	if t.StartsAt.IsZero() {
		return ""
	}
	return t.StartsAt.Format(scheduleLayout)
}

// CurrencyCode falls back to USD when the catalog omits it
func (t Target) CurrencyCode() string {
	if t.Currency == "" {
		return "USD"
	}
	return strings.ToUpper(t.Currency)
}
