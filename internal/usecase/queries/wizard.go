package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/wizard.go -package=mock_queries

import (
	"context"
	"time"

	"studio-booking/internal/domain/addon"
	"studio-booking/internal/domain/payment"
	"studio-booking/internal/domain/wizard"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TargetSummary struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Title       string    `json:"title"`
	Style       string    `json:"style,omitempty"`
	Instructor  string    `json:"instructor"`
	Studio      string    `json:"studio"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"startsAt"`
	Schedule    string    `json:"schedule"`
	DurationMin int       `json:"durationMin"`
	SpotsLeft   int       `json:"spotsLeft"`
	IsFull      bool      `json:"isFull"`
	DropInPrice string    `json:"dropInPrice"`
}

type ActionFlags struct {
	CanContinue bool `json:"canContinue"`
	CanGoBack   bool `json:"canGoBack"`
	CanSubmit   bool `json:"canSubmit"`
	CanFinish   bool `json:"canFinish"`
}

type ReceiptView struct {
	BookingID   string    `json:"bookingId"`
	SourceName  string    `json:"sourceName"`
	SourceType  string    `json:"sourceType"`
	Waitlisted  bool      `json:"waitlisted"`
	Charged     string    `json:"charged"`
	ConfirmedAt time.Time `json:"confirmedAt"`
}

type AddOnItemView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceLabel  string `json:"priceLabel"`
	Selected    bool   `json:"selected"`
}

type AddOnOfferView struct {
	Visible   bool            `json:"visible"`
	Outcome   string          `json:"outcome"`
	CanAttach bool            `json:"canAttach"`
	Items     []AddOnItemView `json:"items"`
	Attached  []AddOnItemView `json:"attached,omitempty"`
}

// WizardView is everything a client needs to render the current step.
type WizardView struct {
	SessionID          uuid.UUID              `json:"sessionId"`
	Version            int64                  `json:"version"`
	Step               wizard.Step            `json:"step"`
	Visible            bool                   `json:"visible"`
	Title              string                 `json:"title"`
	Subtitle           string                 `json:"subtitle,omitempty"`
	Target             TargetSummary          `json:"target"`
	Options            []payment.Option       `json:"options,omitempty"`
	SelectedSourceID   string                 `json:"selectedSourceId,omitempty"`
	WaitlistNotice     *wizard.Notice         `json:"waitlistNotice,omitempty"`
	PaymentSummary     *wizard.PaymentSummary `json:"paymentSummary,omitempty"`
	PolicyAccepted     bool                   `json:"policyAccepted"`
	CancellationPolicy string                 `json:"cancellationPolicy"`
	SubmitLabel        string                 `json:"submitLabel,omitempty"`
	Submitting         bool                   `json:"submitting"`
	Actions            ActionFlags            `json:"actions"`
	Receipt            *ReceiptView           `json:"receipt,omitempty"`
	AddOns             *AddOnOfferView        `json:"addOns,omitempty"`
	Notice             *wizard.Notice         `json:"notice,omitempty"`
	UpdatedAt          time.Time              `json:"updatedAt"`
}

type WizardQueries interface {
	Get(ctx context.Context, userID, sessionID uuid.UUID) (*WizardView, error)
}

type wizardQueriesImpl struct {
	sessions shared.SessionStore
}

func NewWizardQueries(sessions shared.SessionStore) WizardQueries {
	return &wizardQueriesImpl{sessions: sessions}
}

func (q *wizardQueriesImpl) Get(ctx context.Context, userID, sessionID uuid.UUID) (*WizardView, error) {
	sess, err := q.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.UserID != userID {
		return nil, errs.ErrSessionNotFound
	}
	return BuildWizardView(sess)
}

// BuildWizardView derives the view from a stored session without touching the store.
func BuildWizardView(sess *shared.Session) (*WizardView, error) {
	w, err := wizard.Restore(sess.Wizard)
	if err != nil {
		return nil, errs.Wrap(err, "restore booking session")
	}

	t := w.Target()
	currency := t.CurrencyCode()

	var summary TargetSummary
	if err := copier.Copy(&summary, &t); err != nil {
		return nil, errs.Wrap(err, "copy target summary")
	}
	summary.Kind = t.Kind.String()
	summary.Schedule = t.ScheduleLabel()
	summary.IsFull = t.IsFull()
	summary.DropInPrice = payment.FormatCents(t.DropInPriceCents, currency)

	view := &WizardView{
		SessionID:          sess.ID,
		Version:            sess.Version,
		Step:               w.Step(),
		Visible:            w.Visible(),
		Title:              w.Title(),
		Subtitle:           w.Subtitle(),
		Target:             summary,
		WaitlistNotice:     w.WaitlistNotice(),
		PaymentSummary:     w.PaymentSummary(),
		PolicyAccepted:     w.PolicyAccepted(),
		CancellationPolicy: w.CancellationPolicy(),
		SubmitLabel:        w.SubmitLabel(),
		Submitting:         w.IsSubmitting(),
		Actions: ActionFlags{
			CanContinue: w.CanContinue(),
			CanGoBack:   w.CanGoBack(),
			CanSubmit:   w.CanSubmit(),
			CanFinish:   w.CanFinish(),
		},
		Notice:    w.Notice(),
		UpdatedAt: sess.UpdatedAt,
	}
	if src := w.SelectedSource(); src != nil {
		view.SelectedSourceID = src.ID
	}

	switch s := w.State().(type) {
	case wizard.Selecting:
		view.Options = w.Options()
	case wizard.Succeeded:
		view.Receipt = receiptView(s.Receipt)
		view.AddOns = offerView(s.AddOns)
	}
	return view, nil
}

func receiptView(r wizard.Receipt) *ReceiptView {
	return &ReceiptView{
		BookingID:   r.BookingID,
		SourceName:  r.Source.Name,
		SourceType:  string(r.Source.Type),
		Waitlisted:  r.Waitlisted,
		Charged:     payment.FormatCents(r.ChargedCents, r.Currency),
		ConfirmedAt: r.ConfirmedAt,
	}
}

func offerView(o *addon.Offer) *AddOnOfferView {
	sel := o.Selection()
	view := &AddOnOfferView{
		Visible:   o.Visible(),
		Outcome:   string(o.Outcome()),
		CanAttach: o.CanAttach(),
	}
	for _, it := range o.Items() {
		view.Items = append(view.Items, itemView(it, sel.Has(it.ID)))
	}
	for _, it := range o.AttachedItems() {
		view.Attached = append(view.Attached, itemView(it, true))
	}
	return view
}

func itemView(it addon.Item, selected bool) AddOnItemView {
	return AddOnItemView{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		PriceLabel:  payment.FormatCents(it.PriceCents, it.Currency),
		Selected:    selected,
	}
}
