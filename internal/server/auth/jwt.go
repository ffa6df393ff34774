// Package auth implements the credential primitives of the auth server:
// the password hasher, the signed session token and the unsigned link token.
package auth

import (
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the session token payload. Login is the only claim the server
// reads back; the registered claims are informational.
type Claims struct {
	jwt.RegisteredClaims
	Login string `json:"login"`
}

// SessionCodec issues and resolves HS256 session tokens.
type SessionCodec struct {
	secretKey        []byte
	issuer           string
	audience         string
	validityDuration time.Duration
	now              func() time.Time
}

func NewSessionCodec(secretKey []byte, issuer, audience string, validityDuration time.Duration) *SessionCodec {
	return &SessionCodec{
		secretKey:        secretKey,
		issuer:           issuer,
		audience:         audience,
		validityDuration: validityDuration,
		now:              time.Now,
	}
}

// Issue signs a token for login that expires validityDuration from now.
func (c *SessionCodec) Issue(login string) (string, error) {
	now := c.now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.validityDuration)),
		},
		Login: login,
	}
	if c.audience != "" {
		claims.Audience = jwt.ClaimStrings{c.audience}
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Resolve returns the login carried by tokenString.
//
// Only the signature is verified: exp, nbf, iss and aud are not enforced, so a
// token keeps resolving after its nominal expiry. Callers that need lifetime
// checks must not rely on Resolve.
func (c *SessionCodec) Resolve(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil || !token.Valid {
		return "", common.ErrInvalidToken
	}

	if claims.Login == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Login, nil
}
