package response

import (
	"studio-booking/internal/usecase/queries"
	"studio-booking/internal/usecase/shared"
)

type CalendarResponse struct {
	Session   *queries.WizardView `json:"session"`
	GoogleURL string              `json:"googleUrl"`
	ICS       string              `json:"ics"`
	Filename  string              `json:"filename"`
}

type InviteResponse struct {
	Session   *queries.WizardView `json:"session"`
	InviteURL string              `json:"inviteUrl"`
}

func FromCalendarLink(view *queries.WizardView, link *shared.CalendarLink) *CalendarResponse {
	return &CalendarResponse{
		Session:   view,
		GoogleURL: link.GoogleURL,
		ICS:       link.ICS,
		Filename:  link.Filename,
	}
}

func FromInviteLink(view *queries.WizardView, link string) *InviteResponse {
	return &InviteResponse{
		Session:   view,
		InviteURL: link,
	}
}
