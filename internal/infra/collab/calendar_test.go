//go:build unit

package collab_test

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"studio-booking/internal/domain/target"
	"studio-booking/internal/infra/collab"
	"studio-booking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vinyasa() target.Target {
	return target.Target{
		ID:          "class-101",
		Kind:        target.KindClass,
		Title:       "Vinyasa Flow",
		Instructor:  "Maya Chen",
		Studio:      "Sunrise Yoga",
		Location:    "123 Main St, San Francisco",
		StartsAt:    time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC),
		DurationMin: 60,
	}
}

func TestCalendar_CalendarLink(t *testing.T) {
	stamp := time.Date(2025, 1, 5, 12, 30, 0, 0, time.UTC)
	cal := collab.NewCalendar(clock.NewMockClock(stamp))

	link, err := cal.CalendarLink(vinyasa())
	require.NoError(t, err)

	t.Run("google url", func(t *testing.T) {
		u, err := url.Parse(link.GoogleURL)
		require.NoError(t, err)
		assert.Equal(t, "calendar.google.com", u.Host)
		assert.Equal(t, "/calendar/render", u.Path)

		q := u.Query()
		assert.Equal(t, "TEMPLATE", q.Get("action"))
		assert.Equal(t, "Vinyasa Flow", q.Get("text"))
		assert.Equal(t, "20250106T090000Z/20250106T100000Z", q.Get("dates"))
		assert.Equal(t, "Class at Sunrise Yoga with Maya Chen", q.Get("details"))
		assert.Equal(t, "123 Main St, San Francisco", q.Get("location"))
	})

	t.Run("ics document", func(t *testing.T) {
		assert.Equal(t, "class-101.ics", link.Filename)
		assert.True(t, strings.HasSuffix(link.ICS, "END:VCALENDAR\r\n"))

		lines := strings.Split(strings.TrimSuffix(link.ICS, "\r\n"), "\r\n")
		assert.Equal(t, "BEGIN:VCALENDAR", lines[0])
		assert.Contains(t, lines, "UID:class-101@studio-booking")
		assert.Contains(t, lines, "DTSTAMP:20250105T123000Z")
		assert.Contains(t, lines, "DTSTART:20250106T090000Z")
		assert.Contains(t, lines, "DTEND:20250106T100000Z")
		assert.Contains(t, lines, `LOCATION:123 Main St\, San Francisco`)
	})

	t.Run("start time is normalised to UTC", func(t *testing.T) {
		tgt := vinyasa()
		tgt.StartsAt = time.Date(2025, 1, 6, 1, 0, 0, 0, time.FixedZone("PST", -8*60*60))

		link, err := cal.CalendarLink(tgt)
		require.NoError(t, err)
		assert.Contains(t, link.ICS, "DTSTART:20250106T090000Z\r\n")
	})

	t.Run("long lines are folded", func(t *testing.T) {
		tgt := vinyasa()
		tgt.Title = "Restorative Yin and Yoga Nidra Immersion with Live Sound Bath and Guided Breathwork"

		link, err := cal.CalendarLink(tgt)
		require.NoError(t, err)

		for _, line := range strings.Split(strings.TrimSuffix(link.ICS, "\r\n"), "\r\n") {
			assert.LessOrEqual(t, len(line), 75, "content line %q", line)
		}
		unfolded := strings.ReplaceAll(link.ICS, "\r\n ", "")
		assert.Contains(t, unfolded, "SUMMARY:"+tgt.Title+"\r\n")
	})

	t.Run("error: missing start time", func(t *testing.T) {
		tgt := vinyasa()
		tgt.StartsAt = time.Time{}

		_, err := cal.CalendarLink(tgt)
		assert.ErrorIs(t, err, target.ErrInvalidTarget)
	})
}
