//go:build unit || e2e

package builder

import (
	"studio-booking/internal/domain/addon"
	"studio-booking/internal/domain/payment"
)

func Membership() payment.Source {
	return payment.Source{
		ID:          "mem-1",
		Type:        payment.TypeMembership,
		Name:        "Unlimited Monthly",
		Description: "All classes included",
		Covers:      true,
	}
}

func ClassPack(remaining int) payment.Source {
	return payment.Source{
		ID:        "pack-1",
		Type:      payment.TypeClassPack,
		Name:      "10-Class Pack",
		Remaining: &remaining,
		ExpiresAt: "Jan 15, 2025",
		Covers:    true,
	}
}

func WorkshopPass(covers bool) payment.Source {
	return payment.Source{
		ID:     "wp-1",
		Type:   payment.TypeWorkshopPass,
		Name:   "Workshop Pass",
		Covers: covers,
	}
}

func DropIn(cents int64) payment.Source {
	return payment.SynthesizeDropIn(cents)
}

func DefaultSources() []payment.Source {
	return []payment.Source{Membership(), ClassPack(7)}
}

func AddOnItems() []addon.Item {
	return []addon.Item{
		{ID: "1", Name: "Mat Towel Rental", PriceCents: 500, Currency: "USD"},
		{ID: "2", Name: "Branded Water Bottle", PriceCents: 1500, Currency: "USD"},
		{ID: "3", Name: "Studio T-Shirt", PriceCents: 3500, Currency: "USD"},
	}
}
