package collab

import (
	"net/url"
	"time"

	"studio-booking/internal/domain/target"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/pkg/jwt"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var _ shared.InviteLinker = (*Invite)(nil)

// Invite builds share links carrying a signed token, so the landing page can
// attribute the invite without a database lookup.
type Invite struct {
	jwt     *jwt.Service
	baseURL string
	ttl     time.Duration
	clock   clock.Clock
}

func NewInvite(jwtService *jwt.Service, baseURL string, ttl time.Duration, clk clock.Clock) *Invite {
	return &Invite{
		jwt:     jwtService,
		baseURL: baseURL,
		ttl:     ttl,
		clock:   clk,
	}
}

func (i *Invite) InviteLink(t target.Target, invitedBy uuid.UUID) (string, error) {
	token, err := i.jwt.GenerateInviteToken(t.ID, invitedBy, i.clock.Now(), i.ttl)
	if err != nil {
		return "", errs.Wrap(err, "sign invite token")
	}

	u, err := url.Parse(i.baseURL)
	if err != nil {
		return "", errs.Wrap(err, "parse share base url")
	}
	u = u.JoinPath("book", t.ID)
	q := u.Query()
	q.Set("invite", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
