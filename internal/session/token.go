package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "gradecalc"

// Tokens signs session ids for the session cookie.
type Tokens struct {
	hmac []byte
	ttl  time.Duration
	now  func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{hmac: []byte(secret), ttl: ttl, now: time.Now}
}

type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

func (t *Tokens) Issue(sessionID string) (string, error) {
	now := t.now()
	claims := &Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(t.hmac)
}

// Parse verifies the token and returns the session id it carries.
func (t *Tokens) Parse(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return t.hmac, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return "", fmt.Errorf("parse session token: %w", err)
	}
	c, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || c.SessionID == "" {
		return "", errors.New("parse session token: invalid claims")
	}
	return c.SessionID, nil
}
