package studio_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fotosdotap/studio/internal/studio/app"
)

// Common constants and helpers for the studio end-to-end tests. The suite
// boots the full application in-process (memory storage driver) and drives
// it over plain HTTP, asserting on the raw JSON wire protocol.

const (
	operatorEmail = "tapejaralira@gmail.com"
	operatorSenha = "e2e-operator-secret"
	tokenSecret   = "e2e-token-secret"
)

// forwardedIP hands out a unique X-Forwarded-For value per request so the
// per-IP rate limiter never trips inside the suite.
var forwardedIP atomic.Int64

func setupStudioServer(t *testing.T) *httptest.Server {
	t.Helper()

	t.Setenv("ADMIN_EMAIL", operatorEmail)
	t.Setenv("ADMIN_SENHA", operatorSenha)
	t.Setenv("TOKEN_SECRET", tokenSecret)
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("ENV", "test")
	t.Setenv("LOG_LEVEL", "error")

	application, err := app.New(app.LoadConfig())
	require.NoError(t, err)

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(srv.Close)
	return srv
}

// doJSON sends one request and decodes the response body into out (when out
// is non-nil). The bearer token is optional.
func doJSON(t *testing.T, srv *httptest.Server, method, path, bearer string, body, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(t.Context(), method, srv.URL+path, reader)
	require.NoError(t, err)

	n := forwardedIP.Add(1)
	req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", n%250+1))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// operatorToken logs the fixed operator in and returns the bearer token.
func operatorToken(t *testing.T, srv *httptest.Server) string {
	t.Helper()

	var resp struct {
		Sucesso bool   `json:"sucesso"`
		Token   string `json:"token"`
	}
	code := doJSON(t, srv, http.MethodPost, "/admin/login", "", map[string]string{
		"email": operatorEmail,
		"senha": operatorSenha,
	}, &resp)

	require.Equal(t, http.StatusOK, code)
	require.True(t, resp.Sucesso)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
