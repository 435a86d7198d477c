// Package domain holds the wire-level data model of the client directory.
// JSON field names keep the studio's original Portuguese vocabulary so stored
// documents and frontend payloads stay compatible.
package domain

import "strings"

// Cliente is one client record, stored as a single JSON document.
type Cliente struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`

	// Senha holds the Argon2id hash of the client's password. Empty means
	// no password has been registered yet, which is the sole signal the
	// session bootstrap state machine keys on.
	Senha string `json:"senha"`

	// Servicos is the ordered list of service-booking ids referencing
	// external service documents.
	Servicos []string `json:"servicos"`
}

// HasCredential reports whether a password has been registered.
func (c Cliente) HasCredential() bool { return c.Senha != "" }

// DisplayName returns the record's name, falling back to the email local
// part as the original portal did.
func (c Cliente) DisplayName() string {
	if c.Nome != "" {
		return c.Nome
	}
	local, _, _ := strings.Cut(c.Email, "@")
	return local
}
