package http

import "github.com/fotosdotap/studio/internal/studio/service"

// Wire types. Field names keep the Portuguese vocabulary the studio's
// frontends already speak.

type CredentialsRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type AdminLoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
	// Codigo is the TOTP code, required only when the operator has a
	// second factor configured.
	Codigo string `json:"codigo,omitempty"`
}

type ClienteRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
}

type EstadoResponse struct {
	Estado string `json:"estado"`
	Nome   string `json:"nome,omitempty"`
}

type LoginResponse struct {
	Sucesso bool   `json:"sucesso"`
	Email   string `json:"email,omitempty"`
	Nome    string `json:"nome,omitempty"`
	Erro    string `json:"erro,omitempty"`
}

type AdminLoginResponse struct {
	Sucesso bool   `json:"sucesso"`
	Token   string `json:"token,omitempty"`
	Erro    string `json:"erro,omitempty"`
}

type ClientesResponse struct {
	Clientes []service.ClienteSummary `json:"clientes"`
}

type ClienteResponse struct {
	Sucesso bool                  `json:"sucesso"`
	Cliente service.ClienteDetail `json:"cliente"`
}

type SucessoResponse struct {
	Sucesso bool   `json:"sucesso"`
	Arquivo string `json:"arquivo,omitempty"`
}

type ErroResponse struct {
	Sucesso *bool  `json:"sucesso,omitempty"`
	Erro    string `json:"erro"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
	Storage string `json:"storage,omitempty"`
}

func falso() *bool {
	f := false
	return &f
}

// erro builds the {sucesso:false, erro} payload used by action endpoints.
func erro(msg string) ErroResponse {
	return ErroResponse{Sucesso: falso(), Erro: msg}
}
