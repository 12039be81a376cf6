package payment

import (
	"fmt"
	"slices"
	"strings"
)

const (
	DropInSourceID    = "drop-in"
	dropInName        = "Pay Drop-in Rate"
	dropInDescription = "One-time payment"
	includedLabel     = "Included"
)

// Option is one row of the payment method list.
type Option struct {
	Source         Source `json:"source"`
	Selectable     bool   `json:"selectable"`
	Recommended    bool   `json:"recommended"`
	DisabledReason string `json:"disabledReason,omitempty"`
	PriceLabel     string `json:"priceLabel"`
	Detail         string `json:"detail,omitempty"`
}

func SynthesizeDropIn(dropInPriceCents int64) Source {
	price := dropInPriceCents
	return Source{
		ID:          DropInSourceID,
		Type:        TypeDropIn,
		Name:        dropInName,
		Description: dropInDescription,
		Covers:      true,
		PriceCents:  &price,
	}
}

// Arrange orders covering sources first (stable within each group) and appends a
// synthesized drop-in option unless the caller already supplied one.
func Arrange(sources []Source, dropInPriceCents int64, currency string) []Option {
	sorted := make([]Source, 0, len(sources)+1)
	for _, s := range sources {
		sorted = append(sorted, s.clone())
	}
	slices.SortStableFunc(sorted, func(a, b Source) int {
		switch {
		case a.Covers == b.Covers:
			return 0
		case a.Covers:
			return -1
		default:
			return 1
		}
	})

	hasDropIn := slices.ContainsFunc(sources, func(s Source) bool { return s.IsDropIn() })
	if !hasDropIn {
		sorted = append(sorted, SynthesizeDropIn(dropInPriceCents))
	}

	options := make([]Option, 0, len(sorted))
	for _, s := range sorted {
		options = append(options, newOption(s, currency))
	}
	return options
}

func newOption(s Source, currency string) Option {
	opt := Option{
		Source:      s,
		Selectable:  s.Covers,
		Recommended: s.Covers && !s.IsDropIn(),
		Detail:      detailLine(s),
	}
	if !s.Covers {
		opt.DisabledReason = fmt.Sprintf("This %s doesn't cover this class type", strings.ToLower(s.Type.Label()))
	}
	switch {
	case s.HasPrice():
		opt.PriceLabel = FormatCents(s.Price(), currency)
	case s.Covers:
		opt.PriceLabel = includedLabel
	}
	return opt
}

func detailLine(s Source) string {
	var parts []string
	if s.Remaining != nil {
		parts = append(parts, fmt.Sprintf("%d classes remaining", *s.Remaining))
	}
	if s.ExpiresAt != "" {
		parts = append(parts, "Expires "+s.ExpiresAt)
	}
	if s.Description != "" && (s.Remaining == nil || *s.Remaining == 0) {
		parts = append(parts, s.Description)
	}
	return strings.Join(parts, " • ")
}

// DefaultSelection returns the first covering source the user holds, if any.
func DefaultSelection(sources []Source) *Source {
	for _, s := range sources {
		if s.Covers {
			c := s.clone()
			return &c
		}
	}
	return nil
}

// Pick resolves a user's choice against the arranged options. Non-covering options are inert.
func Pick(options []Option, id string) (Source, error) {
	for _, o := range options {
		if o.Source.ID != id {
			continue
		}
		if !o.Selectable {
			return Source{}, ErrSourceNotCovering
		}
		return o.Source.clone(), nil
	}
	return Source{}, ErrSourceNotFound
}
