package addon

import "slices"

type Outcome string

const (
	OutcomePending  Outcome = "pending"
	OutcomeAttached Outcome = "attached"
	OutcomeSkipped  Outcome = "skipped"
)

func (o Outcome) IsValid() bool {
	switch o {
	case OutcomePending, OutcomeAttached, OutcomeSkipped:
		return true
	default:
		return false
	}
}

// Offer is the post-booking upsell. Attach and Skip are both terminal.
type Offer struct {
	items     []Item
	selection Selection
	outcome   Outcome
}

func NewOffer(items []Item) *Offer {
	outcome := OutcomePending
	if len(items) == 0 {
		outcome = OutcomeSkipped
	}
	return &Offer{
		items:     slices.Clone(items),
		selection: NewSelection(),
		outcome:   outcome,
	}
}

func ReconstructOffer(items []Item, selected []string, outcome Outcome) (*Offer, error) {
	if !outcome.IsValid() {
		return nil, ErrOfferClosed
	}
	o := &Offer{
		items:     slices.Clone(items),
		selection: NewSelection(selected...),
		outcome:   outcome,
	}
	for _, id := range selected {
		if !o.known(id) {
			return nil, ErrUnknownAddOn
		}
	}
	return o, nil
}

func (o *Offer) Toggle(id string) error {
	if o.IsResolved() {
		return ErrOfferClosed
	}
	if !o.known(id) {
		return ErrUnknownAddOn
	}
	o.selection = o.selection.Toggle(id)
	return nil
}

// Attach returns the chosen ids for the caller to forward to the booking service.
func (o *Offer) Attach() ([]string, error) {
	if o.IsResolved() {
		return nil, ErrOfferClosed
	}
	if o.selection.IsEmpty() {
		return nil, ErrEmptySelection
	}
	o.outcome = OutcomeAttached
	return o.selection.IDs(), nil
}

func (o *Offer) Skip() error {
	if o.IsResolved() {
		return ErrOfferClosed
	}
	o.outcome = OutcomeSkipped
	return nil
}

func (o *Offer) IsResolved() bool {
	return o.outcome != OutcomePending
}

// Visible mirrors the upsell card: hidden once resolved or when nothing is offered.
func (o *Offer) Visible() bool {
	return !o.IsResolved() && len(o.items) > 0
}

func (o *Offer) CanAttach() bool {
	return !o.IsResolved() && !o.selection.IsEmpty()
}

func (o *Offer) Items() []Item        { return slices.Clone(o.items) }
func (o *Offer) Selection() Selection { return o.selection }
func (o *Offer) Outcome() Outcome     { return o.outcome }

// AttachedItems lists the items chosen, in catalog order
func (o *Offer) AttachedItems() []Item {
	if o.outcome != OutcomeAttached {
		return nil
	}
	var out []Item
	for _, it := range o.items {
		if o.selection.Has(it.ID) {
			out = append(out, it)
		}
	}
	return out
}

func (o *Offer) known(id string) bool {
	return slices.ContainsFunc(o.items, func(it Item) bool { return it.ID == id })
}
