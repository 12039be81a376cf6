package addon

import "studio-booking/internal/pkg/errs"

var (
	ErrUnknownAddOn   = errs.New("unknown add-on")
	ErrEmptySelection = errs.New("no add-ons selected")
	ErrOfferClosed    = errs.New("add-on offer already resolved")
)

type Item struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description"`
	PriceCents  int64  `json:"priceCents" yaml:"price_cents"`
	Currency    string `json:"currency" yaml:"currency"`
}
