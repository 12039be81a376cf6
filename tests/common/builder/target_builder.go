//go:build unit || e2e

package builder

import (
	"time"

	"studio-booking/internal/domain/target"
)

type TargetBuilder struct {
	ID                  string
	Kind                target.Kind
	Title               string
	Instructor          string
	StudioID            string
	Studio              string
	Location            string
	StartsAt            time.Time
	DurationMin         int
	Capacity            int
	SpotsLeft           int
	DropInPriceCents    int64
	Currency            string
	CancellationMinutes *int
}

func NewTargetBuilder() *TargetBuilder {
	return &TargetBuilder{
		ID:               "class-101",
		Kind:             target.KindClass,
		Title:            "Vinyasa Flow",
		Instructor:       "Maya Chen",
		StudioID:         "studio-1",
		Studio:           "Sunrise Yoga",
		Location:         "123 Main St",
		StartsAt:         time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC),
		DurationMin:      60,
		Capacity:         20,
		SpotsLeft:        5,
		DropInPriceCents: 2500,
		Currency:         "USD",
	}
}

func (b *TargetBuilder) With(mutate func(*TargetBuilder)) *TargetBuilder {
	mutate(b)
	return b
}

func (b *TargetBuilder) Full() *TargetBuilder {
	b.SpotsLeft = 0
	return b
}

func (b *TargetBuilder) Build() target.Target {
	return target.Target{
		ID:                  b.ID,
		Kind:                b.Kind,
		Title:               b.Title,
		Style:               "Vinyasa",
		Instructor:          b.Instructor,
		StudioID:            b.StudioID,
		Studio:              b.Studio,
		Location:            b.Location,
		StartsAt:            b.StartsAt,
		DurationMin:         b.DurationMin,
		Capacity:            b.Capacity,
		SpotsLeft:           b.SpotsLeft,
		DropInPriceCents:    b.DropInPriceCents,
		Currency:            b.Currency,
		CancellationMinutes: b.CancellationMinutes,
	}
}
