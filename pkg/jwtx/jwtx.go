// Package jwtx mints and verifies the HMAC-signed bearer tokens used by the
// admin console. Tokens carry the operator identity as the subject and expire
// after a configurable TTL; both signature and expiry are checked on every
// protected call.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("jwtx: invalid token")
	ErrWrongSubject = errors.New("jwtx: token subject mismatch")
)

// Signer issues and verifies HS256 tokens with a shared secret.
type Signer struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

// Mint returns a signed token for the given subject with iat/exp claims.
func (s *Signer) Mint(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    s.Issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

// Verify checks signature, expiry and issuer, and returns the token subject.
func (s *Signer) Verify(raw string) (string, error) {
	var claims jwt.RegisteredClaims
	tok, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return s.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// VerifySubject is Verify plus a check that the token was issued for the
// expected identity.
func (s *Signer) VerifySubject(raw, subject string) error {
	got, err := s.Verify(raw)
	if err != nil {
		return err
	}
	if got != subject {
		return ErrWrongSubject
	}
	return nil
}
