package domain

// SessionState is the state of the session bootstrap machine for one email.
// The first three values cross the wire verbatim in the "estado" field; the
// last two are per-request outcomes of the register/authenticate actions.
type SessionState string

const (
	// StateUnknown: the email is not in the directory (or its index entry
	// points at nothing).
	StateUnknown SessionState = "nao_encontrado"

	// StateNeedsRegistration: the record exists but no password has been
	// registered yet.
	StateNeedsRegistration SessionState = "precisa_cadastrar_senha"

	// StateNeedsPassword: a password is registered and must be supplied.
	StateNeedsPassword SessionState = "precisa_informar_senha"

	// StateAuthenticated: the supplied password matched (or was just
	// registered).
	StateAuthenticated SessionState = "autenticado"

	// StateRejected: the supplied password did not match.
	StateRejected SessionState = "rejeitado"
)

// SessionStatus is what a status probe reports to the caller.
type SessionStatus struct {
	State SessionState
	Nome  string
}
