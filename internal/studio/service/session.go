// Package service holds the business logic layered on the directory store:
// the session bootstrap state machine, the admin directory service, the
// service-reference catalog and the index reconciler.
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/fotosdotap/studio/internal/studio/domain"
	"github.com/fotosdotap/studio/internal/studio/store"
	"github.com/fotosdotap/studio/pkg/cryptox"
	"github.com/fotosdotap/studio/pkg/slogx"
)

var (
	// ErrInvalidCredential: the supplied password did not match (REJECTED).
	ErrInvalidCredential = errors.New("service: invalid credential")

	// ErrCredentialAlreadySet: registration attempted when a password is
	// already on file.
	ErrCredentialAlreadySet = errors.New("service: credential already set")
)

// SessionService derives, per request, what a client has to do next:
// register a password, enter it, or neither (unknown email). It keeps no
// state of its own; every call re-reads the directory.
type SessionService struct {
	Dir *store.Directory
}

// Status runs the bootstrap state machine for one email.
//
// An index entry pointing at a missing record reads as unknown rather than
// surfacing the inconsistency to an anonymous caller; the reconciler deals
// with the entry itself.
func (s *SessionService) Status(ctx context.Context, email string) (domain.SessionStatus, error) {
	key, err := s.Dir.Lookup(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return domain.SessionStatus{State: domain.StateUnknown}, nil
	}
	if err != nil {
		return domain.SessionStatus{}, err
	}

	c, err := s.Dir.GetRecord(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		slogx.FromContext(ctx).Warn("dangling index entry", "email", email, "key", key)
		return domain.SessionStatus{State: domain.StateUnknown}, nil
	}
	if err != nil {
		return domain.SessionStatus{}, err
	}

	state := domain.StateNeedsRegistration
	if c.HasCredential() {
		state = domain.StateNeedsPassword
	}
	return domain.SessionStatus{State: state, Nome: c.DisplayName()}, nil
}

// Register stores the client's first password, hashed. Only valid while no
// credential is on file.
func (s *SessionService) Register(ctx context.Context, email, senha string) (domain.SessionStatus, error) {
	if strings.TrimSpace(senha) == "" {
		return domain.SessionStatus{}, ErrInvalidCredential
	}

	// Resolve the record before hashing so unknown emails never pay for the
	// KDF. RegisterCredential re-checks under its lock.
	c, _, err := s.Dir.GetByEmail(ctx, email)
	if err != nil {
		return domain.SessionStatus{}, err
	}
	if c.HasCredential() {
		return domain.SessionStatus{}, ErrCredentialAlreadySet
	}

	hash, err := cryptox.HashSecret(senha)
	if err != nil {
		return domain.SessionStatus{}, err
	}

	err = s.Dir.RegisterCredential(ctx, email, hash)
	if errors.Is(err, store.ErrAlreadyExists) {
		return domain.SessionStatus{}, ErrCredentialAlreadySet
	}
	if err != nil {
		return domain.SessionStatus{}, err
	}

	return domain.SessionStatus{State: domain.StateAuthenticated}, nil
}

// Authenticate verifies the supplied password against the stored hash. It
// never mutates the record, so repeated calls with the same pair are
// idempotent. A record without a credential rejects like a wrong password.
func (s *SessionService) Authenticate(ctx context.Context, email, senha string) (domain.SessionStatus, error) {
	c, _, err := s.Dir.GetByEmail(ctx, email)
	if err != nil {
		return domain.SessionStatus{}, err
	}

	if !c.HasCredential() {
		return domain.SessionStatus{State: domain.StateRejected}, ErrInvalidCredential
	}

	switch err := cryptox.VerifySecret(senha, c.Senha); {
	case err == nil:
		return domain.SessionStatus{State: domain.StateAuthenticated, Nome: c.DisplayName()}, nil
	case errors.Is(err, cryptox.ErrMismatch):
		return domain.SessionStatus{State: domain.StateRejected}, ErrInvalidCredential
	default:
		// Malformed stored hash; a storage-level problem, not a wrong password.
		return domain.SessionStatus{}, err
	}
}
