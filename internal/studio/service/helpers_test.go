package service

import (
	"io"
	"log/slog"
	"time"

	"github.com/fotosdotap/studio/pkg/jwtx"
)

func testSigner() *jwtx.Signer {
	return &jwtx.Signer{
		Secret: []byte("test-token-secret"),
		Issuer: "fotosdotap-test",
		TTL:    time.Hour,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
