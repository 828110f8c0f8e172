package token

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"go-comments-service/internal/model"
)

// Issuer builds payloads for an authenticated identity and encodes them with
// the lifetime matching each kind.
type Issuer struct {
	codec      *Codec
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
	newID      func() string
}

func NewIssuer(codec *Codec, accessTTL time.Duration, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		codec:      codec,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

func (i *Issuer) IssueAccess(user model.AuthUser) (string, error) {
	return i.codec.Encode(AccessPayload{
		Sub:      strconv.FormatInt(user.ID, 10),
		Iat:      i.now().UTC().Unix(),
		Jti:      i.newID(),
		Username: user.Username,
		Email:    user.Email,
	}, i.accessTTL)
}

func (i *Issuer) IssueRefresh(user model.AuthUser) (string, error) {
	return i.codec.Encode(RefreshPayload{
		Sub: strconv.FormatInt(user.ID, 10),
		Iat: i.now().UTC().Unix(),
		Jti: i.newID(),
	}, i.refreshTTL)
}
