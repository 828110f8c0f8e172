package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrExpired means the signature checked out but the token is past its
	// expiry.
	ErrExpired = errors.New("token expired")
	// ErrInvalid means the signature, or the signing method, did not match.
	ErrInvalid = errors.New("token invalid")
	// ErrMalformed means the string could not be parsed into the expected
	// claim shape. Missing or mistyped required claims land here too: a
	// partial payload is rejected, never defaulted.
	ErrMalformed = errors.New("token malformed")
)

// Codec turns payloads into compact HS256-signed strings and back. The secret
// is fixed at construction and never mutated afterwards, so a single Codec is
// safe for concurrent use.
type Codec struct {
	secret []byte
	now    func() time.Time
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret), now: time.Now}
}

// Encode signs payload with expiry set to now plus lifetime.
func (c *Codec) Encode(payload Payload, lifetime time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"type": string(payload.Kind()),
		"sub":  payload.Subject(),
		"iat":  payload.IssuedAt(),
		"jti":  payload.TokenID(),
		"exp":  c.now().Add(lifetime).Unix(),
	}

	if access, ok := payload.(AccessPayload); ok {
		claims["username"] = access.Username
		if access.Email != "" {
			claims["email"] = access.Email
		}
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode verifies signature and expiry, then strictly maps the claim set onto
// the payload variant named by the type claim.
func (c *Codec) Decode(tokenString string) (Payload, error) {
	parsed, err := jwt.Parse(tokenString,
		func(*jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenMalformed),
			errors.Is(err, jwt.ErrTokenRequiredClaimMissing),
			errors.Is(err, jwt.ErrTokenInvalidClaims):
			return nil, ErrMalformed
		default:
			return nil, ErrInvalid
		}
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrMalformed
	}

	kind, ok := claims["type"].(string)
	if !ok {
		return nil, ErrMalformed
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, ErrMalformed
	}
	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, ErrMalformed
	}
	jti, ok := claims["jti"].(string)
	if !ok || jti == "" {
		return nil, ErrMalformed
	}

	switch Kind(kind) {
	case KindAccess:
		username, ok := claims["username"].(string)
		if !ok || username == "" {
			return nil, ErrMalformed
		}
		email, _ := claims["email"].(string)
		return AccessPayload{
			Sub:      sub,
			Iat:      int64(iat),
			Jti:      jti,
			Username: username,
			Email:    email,
		}, nil
	case KindRefresh:
		return RefreshPayload{Sub: sub, Iat: int64(iat), Jti: jti}, nil
	default:
		return nil, ErrMalformed
	}
}
