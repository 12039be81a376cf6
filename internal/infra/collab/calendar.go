package collab

import (
	"net/url"
	"strings"
	"time"

	"studio-booking/internal/domain/target"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/shared"

	ics "github.com/arran4/golang-ical"
)

var _ shared.CalendarLinker = (*Calendar)(nil)

const (
	googleCalendarURL = "https://calendar.google.com/calendar/render"
	icsTimeLayout     = "20060102T150405Z"
	icsProductID      = "-//studio-booking//booking wizard//EN"
)

type Calendar struct {
	clock clock.Clock
}

func NewCalendar(clk clock.Clock) *Calendar {
	return &Calendar{clock: clk}
}

func (c *Calendar) CalendarLink(t target.Target) (shared.CalendarLink, error) {
	if t.StartsAt.IsZero() {
		return shared.CalendarLink{}, errs.Wrapf(target.ErrInvalidTarget, "target %s has no start time", t.ID)
	}
	start := t.StartsAt.UTC()
	end := t.EndsAt().UTC()

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", t.Title)
	q.Set("dates", start.Format(icsTimeLayout)+"/"+end.Format(icsTimeLayout))
	q.Set("details", description(t))
	q.Set("location", t.Location)

	return shared.CalendarLink{
		GoogleURL: googleCalendarURL + "?" + q.Encode(),
		ICS:       c.document(t, start, end),
		Filename:  t.ID + ".ics",
	}, nil
}

func description(t target.Target) string {
	parts := []string{t.Kind.Label() + " at " + t.Studio}
	if t.Instructor != "" {
		parts = append(parts, "with "+t.Instructor)
	}
	return strings.Join(parts, " ")
}

// document renders a single-event VCALENDAR with folded content lines.
func (c *Calendar) document(t target.Target, start, end time.Time) string {
	cal := ics.NewCalendar()
	cal.SetProductId(icsProductID)
	cal.SetCalscale("GREGORIAN")
	cal.SetMethod(ics.MethodPublish)

	event := cal.AddEvent(t.ID + "@studio-booking")
	event.SetDtStampTime(c.clock.Now())
	event.SetStartAt(start)
	event.SetEndAt(end)
	event.SetSummary(t.Title)
	event.SetDescription(description(t))
	event.SetLocation(t.Location)

	return cal.Serialize()
}
