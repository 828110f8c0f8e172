package token

// Kind discriminates what a token may be used for. Access tokens authorize
// resource operations; refresh tokens only authorize minting new access
// tokens.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// Payload is the verified claim set of a decoded token. Exactly one concrete
// type exists per kind, so the claims each kind carries are fixed by the type
// system rather than by nullable fields.
type Payload interface {
	Kind() Kind
	Subject() string
	IssuedAt() int64
	TokenID() string
}

// AccessPayload carries the convenience identity claims alongside the
// registered ones.
type AccessPayload struct {
	Sub      string
	Iat      int64
	Jti      string
	Username string
	Email    string
}

func (AccessPayload) Kind() Kind        { return KindAccess }
func (p AccessPayload) Subject() string { return p.Sub }
func (p AccessPayload) IssuedAt() int64 { return p.Iat }
func (p AccessPayload) TokenID() string { return p.Jti }

// RefreshPayload carries only the registered claims. Identity details are
// re-read from the user store when a new access token is minted, so a long
// lived refresh token never serves stale profile data.
type RefreshPayload struct {
	Sub string
	Iat int64
	Jti string
}

func (RefreshPayload) Kind() Kind        { return KindRefresh }
func (p RefreshPayload) Subject() string { return p.Sub }
func (p RefreshPayload) IssuedAt() int64 { return p.Iat }
func (p RefreshPayload) TokenID() string { return p.Jti }
