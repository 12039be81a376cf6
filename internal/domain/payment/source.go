package payment

import (
	"studio-booking/internal/pkg/errs"
)

var (
	ErrSourceNotFound    = errs.New("payment source not found")
	ErrSourceNotCovering = errs.New("payment source does not cover this booking")
	ErrInvalidSourceType = errs.New("invalid payment source type")
)

type SourceType string

const (
	TypeMembership   SourceType = "MEMBERSHIP"
	TypeClassPack    SourceType = "CLASS_PACK"
	TypeWorkshopPass SourceType = "WORKSHOP_PASS"
	TypeDropIn       SourceType = "DROP_IN"
)

func (t SourceType) IsValid() bool {
	switch t {
	case TypeMembership, TypeClassPack, TypeWorkshopPass, TypeDropIn:
		return true
	default:
		return false
	}
}

func (t SourceType) Label() string {
	switch t {
	case TypeMembership:
		return "Membership"
	case TypeClassPack:
		return "Class Pack"
	case TypeWorkshopPass:
		return "Workshop Pass"
	case TypeDropIn:
		return "Drop-in"
	default:
		return string(t)
	}
}

// Source is a user-held entitlement or an ad-hoc payment that can satisfy a booking.
// Covers is computed by the payment provider for one specific booking target.
type Source struct {
	ID          string     `json:"id" yaml:"id"`
	Type        SourceType `json:"type" yaml:"type"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description,omitempty" yaml:"description"`
	Remaining   *int       `json:"remaining,omitempty" yaml:"remaining"`
	ExpiresAt   string     `json:"expiresAt,omitempty" yaml:"expires_at"`
	Covers      bool       `json:"covers" yaml:"covers"`
	PriceCents  *int64     `json:"priceCents,omitempty" yaml:"price_cents"`
}

func (s Source) IsDropIn() bool {
	return s.Type == TypeDropIn
}

// HasPrice treats a zero price the same as no price
func (s Source) HasPrice() bool {
	return s.PriceCents != nil && *s.PriceCents > 0
}

func (s Source) Price() int64 {
	if s.PriceCents == nil {
		return 0
	}
	return *s.PriceCents
}

func (s Source) Validate() error {
	if s.ID == "" {
		return errs.Wrap(ErrInvalidSourceType, "source id is required")
	}
	if !s.Type.IsValid() {
		return ErrInvalidSourceType
	}
	return nil
}

// clone detaches the pointer fields so callers can't mutate provider data
func (s Source) clone() Source {
	out := s
	if s.Remaining != nil {
		r := *s.Remaining
		out.Remaining = &r
	}
	if s.PriceCents != nil {
		p := *s.PriceCents
		out.PriceCents = &p
	}
	return out
}
