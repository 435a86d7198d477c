package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fotosdotap/studio/internal/studio/service"
	"github.com/fotosdotap/studio/internal/studio/store"
	"github.com/fotosdotap/studio/pkg/httpx"
	"github.com/fotosdotap/studio/pkg/slogx"
)

// LoginHandler serves the client-facing session bootstrap endpoints.
type LoginHandler struct {
	Sessions *service.SessionService
}

// HandleStatus handles GET /login
//
//	@Summary		Session bootstrap probe
//	@Description	Reports whether the email is unknown, must register a password, or must supply one.
//	@Tags			Sessão
//	@Produce		json
//	@Param			email	query		string	true	"Client email"
//	@Success		200		{object}	EstadoResponse
//	@Failure		400		{object}	ErroResponse
//	@Failure		500		{object}	ErroResponse
//	@Router			/login [get].
func (h *LoginHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, ErroResponse{Erro: "Email não informado."})
		return
	}

	status, err := h.Sessions.Status(r.Context(), email)
	if err != nil {
		slogx.FromContext(r.Context()).Error("session status failed", "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, ErroResponse{Erro: "Erro interno"})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, EstadoResponse{
		Estado: string(status.State),
		Nome:   status.Nome,
	})
}

// HandleLogin handles POST /login
//
//	@Summary		Client login
//	@Description	Verifies the client's password against the stored credential hash.
//	@Tags			Sessão
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CredentialsRequest	true	"Email and password"
//	@Success		200		{object}	LoginResponse
//	@Failure		400		{object}	ErroResponse
//	@Failure		401		{object}	ErroResponse
//	@Failure		404		{object}	ErroResponse
//	@Router			/login [post].
func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Senha == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, erro("Email e senha obrigatórios."))
		return
	}

	status, err := h.Sessions.Authenticate(r.Context(), req.Email, req.Senha)
	switch {
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, erro("Cliente não encontrado."))
	case errors.Is(err, service.ErrInvalidCredential):
		httpx.WriteJSON(w, http.StatusUnauthorized, erro("Senha incorreta."))
	case err != nil:
		slogx.FromContext(r.Context()).Error("login failed", "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, erro("Erro interno"))
	default:
		httpx.WriteJSON(w, http.StatusOK, LoginResponse{
			Sucesso: true,
			Email:   req.Email,
			Nome:    status.Nome,
		})
	}
}

// HandleRegister handles POST /cadastrar-senha
//
//	@Summary		Register password
//	@Description	Stores the client's first password. Refused once a password is on file.
//	@Tags			Sessão
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CredentialsRequest	true	"Email and new password"
//	@Success		200		{object}	SucessoResponse
//	@Failure		400		{object}	ErroResponse
//	@Failure		404		{object}	ErroResponse
//	@Failure		409		{object}	ErroResponse
//	@Router			/cadastrar-senha [post].
func (h *LoginHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Senha == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, ErroResponse{Erro: "Email e senha são obrigatórios no JSON"})
		return
	}

	_, err := h.Sessions.Register(r.Context(), req.Email, req.Senha)
	switch {
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, ErroResponse{Erro: "Cliente não encontrado no índice."})
	case errors.Is(err, service.ErrCredentialAlreadySet):
		httpx.WriteJSON(w, http.StatusConflict, erro("Senha já cadastrada."))
	case errors.Is(err, service.ErrInvalidCredential):
		httpx.WriteJSON(w, http.StatusBadRequest, erro("Senha inválida."))
	case err != nil:
		slogx.FromContext(r.Context()).Error("password registration failed", "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, erro("Erro ao atualizar a senha do cliente."))
	default:
		httpx.WriteJSON(w, http.StatusOK, SucessoResponse{Sucesso: true})
	}
}
