package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"sort"
	"strings"

	"github.com/fotosdotap/studio/internal/studio/domain"
	"github.com/fotosdotap/studio/internal/studio/store"
	"github.com/fotosdotap/studio/pkg/jwtx"
	"github.com/fotosdotap/studio/pkg/slogx"
	"github.com/pquerna/otp/totp"
)

// ErrUnauthorized: operator login or bearer token verification failed.
var ErrUnauthorized = errors.New("service: unauthorized")

// AdminService manages the client directory on behalf of the single fixed
// operator. Every protected operation is gated by a short-lived HMAC-signed
// bearer token carrying the operator identity.
type AdminService struct {
	Dir     *store.Directory
	Catalog *CatalogService
	Signer  *jwtx.Signer

	OperatorEmail  string
	OperatorSecret string

	// TOTPSecret, when set, requires a valid TOTP code on login as a
	// second factor.
	TOTPSecret string
}

// ClienteSummary is one row of the admin client list.
type ClienteSummary struct {
	Email    string `json:"email"`
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
}

// ClienteDetail is the single-record admin view. The credential hash never
// leaves the service; only the fact that one is set does.
type ClienteDetail struct {
	Nome          string           `json:"nome"`
	Email         string           `json:"email"`
	Telefone      string           `json:"telefone"`
	SenhaDefinida bool             `json:"senhaDefinida"`
	Servicos      []domain.Servico `json:"servicos"`
}

// Login checks the operator credentials (and TOTP code when configured) and
// mints a bearer token.
func (s *AdminService) Login(email, senha, codigo string) (string, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.OperatorEmail)) == 1
	senhaOK := subtle.ConstantTimeCompare([]byte(senha), []byte(s.OperatorSecret)) == 1
	if !emailOK || !senhaOK {
		return "", ErrUnauthorized
	}

	if s.TOTPSecret != "" && !totp.Validate(strings.TrimSpace(codigo), s.TOTPSecret) {
		return "", ErrUnauthorized
	}

	return s.Signer.Mint(s.OperatorEmail)
}

// VerifyToken checks signature, expiry and that the token was issued for the
// fixed operator identity.
func (s *AdminService) VerifyToken(raw string) error {
	if err := s.Signer.VerifySubject(raw, s.OperatorEmail); err != nil {
		return ErrUnauthorized
	}
	return nil
}

// List returns every directory entry resolved to its profile fields, in
// email order. Entries whose record fails to resolve are logged and skipped
// so one broken record never takes the whole list down.
func (s *AdminService) List(ctx context.Context) ([]ClienteSummary, error) {
	index, err := s.Dir.Index(ctx)
	if err != nil {
		return nil, err
	}

	emails := make([]string, 0, len(index))
	for email := range index {
		emails = append(emails, email)
	}
	sort.Strings(emails)

	clientes := make([]ClienteSummary, 0, len(emails))
	for _, email := range emails {
		c, err := s.Dir.GetRecord(ctx, index[email])
		if err != nil {
			slogx.FromContext(ctx).Warn("skipping unresolvable directory entry",
				"email", email, "key", index[email], "error", err)
			continue
		}
		clientes = append(clientes, ClienteSummary{
			Email:    email,
			Nome:     c.Nome,
			Telefone: c.Telefone,
		})
	}
	return clientes, nil
}

// Get returns the admin view of one client, with service references hydrated.
func (s *AdminService) Get(ctx context.Context, email string) (ClienteDetail, error) {
	c, _, err := s.Dir.GetByEmail(ctx, email)
	if err != nil {
		return ClienteDetail{}, err
	}

	return ClienteDetail{
		Nome:          c.Nome,
		Email:         c.Email,
		Telefone:      c.Telefone,
		SenhaDefinida: c.HasCredential(),
		Servicos:      s.Catalog.Hydrate(ctx, c.Servicos),
	}, nil
}

// Create adds a new client with no credential and no service references.
func (s *AdminService) Create(ctx context.Context, nome, email, telefone string) (string, error) {
	return s.Dir.CreateClient(ctx, domain.Cliente{
		Nome:     nome,
		Email:    email,
		Telefone: telefone,
	})
}

// Update edits name and phone. Credential and service references are never
// mutated through this path, regardless of what the request carried.
func (s *AdminService) Update(ctx context.Context, email, nome, telefone string) error {
	return s.Dir.UpdateProfile(ctx, email, nome, telefone)
}

// Delete removes the client's record and index entry.
func (s *AdminService) Delete(ctx context.Context, email string) error {
	_, err := s.Dir.DeleteByEmail(ctx, email)
	return err
}
