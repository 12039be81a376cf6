package target

import "studio-booking/internal/pkg/errs"

var (
	ErrInvalidTarget = errs.New("invalid booking target")
	ErrUnknownKind   = errs.New("unknown booking target kind")
)

type Kind string

const (
	KindClass       Kind = "class"
	KindWorkshop    Kind = "workshop"
	KindRetreat     Kind = "retreat"
	KindAppointment Kind = "appointment"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindClass, KindWorkshop, KindRetreat, KindAppointment:
		return true
	default:
		return false
	}
}

func (k Kind) Label() string {
	switch k {
	case KindClass:
		return "Class"
	case KindWorkshop:
		return "Workshop"
	case KindRetreat:
		return "Retreat"
	case KindAppointment:
		return "Appointment"
	default:
		return ""
	}
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrUnknownKind
	}
	return k, nil
}
