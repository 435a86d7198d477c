package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/fotosdotap/studio/internal/studio/service"
	"github.com/fotosdotap/studio/internal/studio/store"
	"github.com/fotosdotap/studio/pkg/httpx"
	"github.com/fotosdotap/studio/pkg/slogx"
)

// AdminHandler serves the operator console endpoints.
type AdminHandler struct {
	Admin *service.AdminService
}

// HandleLogin handles POST /admin/login
//
//	@Summary		Operator login
//	@Description	Checks the fixed operator credentials (plus TOTP when configured) and mints a bearer token.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AdminLoginRequest	true	"Operator credentials"
//	@Success		200		{object}	AdminLoginResponse
//	@Router			/admin/login [post].
func (h *AdminHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, erro("JSON inválido."))
		return
	}

	token, err := h.Admin.Login(req.Email, req.Senha, req.Codigo)
	if err != nil {
		// The original console treats a bad login as a normal response,
		// not a protocol error.
		httpx.WriteJSON(w, http.StatusOK, AdminLoginResponse{Sucesso: false, Erro: "Login inválido"})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, AdminLoginResponse{Sucesso: true, Token: token})
}

// HandleList handles GET /admin/clientes
//
//	@Summary		List clients
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	ClientesResponse
//	@Failure		401	{object}	ErroResponse
//	@Failure		500	{object}	ErroResponse
//	@Router			/admin/clientes [get].
func (h *AdminHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.Admin.List(r.Context())
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to list clientes", "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, ErroResponse{Erro: "Erro interno"})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, ClientesResponse{Clientes: clientes})
}

// HandleGet handles GET /admin/cliente
//
//	@Summary		Get one client
//	@Description	Returns the client's profile with service references hydrated. The credential hash is never exposed.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			email	query		string	true	"Client email"
//	@Success		200		{object}	ClienteResponse
//	@Failure		404		{object}	ErroResponse
//	@Router			/admin/cliente [get].
func (h *AdminHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, ErroResponse{Erro: "E-mail não informado"})
		return
	}

	cliente, err := h.Admin.Get(r.Context(), email)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, ClienteResponse{Sucesso: true, Cliente: cliente})
}

// HandleCreate handles POST /admin/cliente
//
//	@Summary		Create client
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		ClienteRequest	true	"New client profile"
//	@Success		201		{object}	SucessoResponse
//	@Failure		409		{object}	ErroResponse
//	@Router			/admin/cliente [post].
func (h *AdminHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCliente(w, r)
	if !ok {
		return
	}

	key, err := h.Admin.Create(r.Context(), req.Nome, req.Email, req.Telefone)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, SucessoResponse{Sucesso: true, Arquivo: key})
}

// HandleUpdate handles PUT /admin/cliente
//
//	@Summary		Update client profile
//	@Description	Edits name and phone only; credential and service references never change through this path.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		ClienteRequest	true	"Profile fields"
//	@Success		200		{object}	SucessoResponse
//	@Failure		404		{object}	ErroResponse
//	@Router			/admin/cliente [put].
func (h *AdminHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCliente(w, r)
	if !ok {
		return
	}

	if err := h.Admin.Update(r.Context(), req.Email, req.Nome, req.Telefone); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, SucessoResponse{Sucesso: true})
}

// HandleDelete handles DELETE /admin/cliente
//
//	@Summary		Delete client
//	@Description	Removes the client's record and its directory index entry.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		ClienteRequest	true	"Email of the client to delete"
//	@Success		200		{object}	SucessoResponse
//	@Failure		404		{object}	ErroResponse
//	@Router			/admin/cliente [delete].
func (h *AdminHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCliente(w, r)
	if !ok {
		return
	}

	if err := h.Admin.Delete(r.Context(), req.Email); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, SucessoResponse{Sucesso: true})
}

func (h *AdminHandler) decodeCliente(w http.ResponseWriter, r *http.Request) (ClienteRequest, bool) {
	var req ClienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, ErroResponse{Erro: "JSON inválido."})
		return req, false
	}
	if strings.TrimSpace(req.Email) == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, ErroResponse{Erro: "E-mail obrigatório"})
		return req, false
	}
	return req, true
}

func (h *AdminHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, ErroResponse{Erro: "Cliente não encontrado"})
	case errors.Is(err, store.ErrAlreadyExists):
		httpx.WriteJSON(w, http.StatusConflict, ErroResponse{Erro: "Cliente já existe"})
	default:
		slogx.FromContext(r.Context()).Error("admin operation failed", "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, ErroResponse{Erro: "Erro interno"})
	}
}
