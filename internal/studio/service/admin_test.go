package service

import (
	"context"
	"testing"
	"time"

	"github.com/fotosdotap/studio/internal/studio/domain"
	"github.com/fotosdotap/studio/internal/studio/store"
	"github.com/fotosdotap/studio/pkg/blob"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"
)

const (
	testOperatorEmail  = "tapejaralira@gmail.com"
	testOperatorSecret = "operator-secret"
)

func newAdminFixture() (*AdminService, *store.Directory, *blob.Memory) {
	blobs := blob.NewMemory()
	dir := store.NewDirectory(blobs)
	admin := &AdminService{
		Dir:            dir,
		Catalog:        &CatalogService{Blobs: blobs},
		Signer:         testSigner(),
		OperatorEmail:  testOperatorEmail,
		OperatorSecret: testOperatorSecret,
	}
	return admin, dir, blobs
}

func TestAdminLogin(t *testing.T) {
	t.Parallel()
	admin, _, _ := newAdminFixture()

	token, err := admin.Login(testOperatorEmail, testOperatorSecret, "")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NoError(t, admin.VerifyToken(token))

	_, err = admin.Login(testOperatorEmail, "wrong", "")
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = admin.Login("someone@else.com", testOperatorSecret, "")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestAdminLoginWithTOTP(t *testing.T) {
	t.Parallel()
	admin, _, _ := newAdminFixture()

	key, err := totp.Generate(totp.GenerateOpts{Issuer: "fotosdotap", AccountName: testOperatorEmail})
	require.NoError(t, err)
	admin.TOTPSecret = key.Secret()

	_, err = admin.Login(testOperatorEmail, testOperatorSecret, "")
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = admin.Login(testOperatorEmail, testOperatorSecret, "000000")
	require.ErrorIs(t, err, ErrUnauthorized)

	code, err := totp.GenerateCode(key.Secret(), time.Now())
	require.NoError(t, err)
	token, err := admin.Login(testOperatorEmail, testOperatorSecret, code)
	require.NoError(t, err)
	require.NoError(t, admin.VerifyToken(token))
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	t.Parallel()
	admin, _, _ := newAdminFixture()

	require.ErrorIs(t, admin.VerifyToken(""), ErrUnauthorized)
	require.ErrorIs(t, admin.VerifyToken("not.a.token"), ErrUnauthorized)
}

func TestCreateThenGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	admin, _, _ := newAdminFixture()

	key, err := admin.Create(ctx, "Ana", "ana@x.com", "123")
	require.NoError(t, err)
	require.NotEmpty(t, key)

	detail, err := admin.Get(ctx, "ana@x.com")
	require.NoError(t, err)
	require.Equal(t, "Ana", detail.Nome)
	require.Equal(t, "123", detail.Telefone)
	require.False(t, detail.SenhaDefinida)
	require.Empty(t, detail.Servicos)

	_, err = admin.Create(ctx, "Ana Outra", "ana@x.com", "456")
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestGetNeverExposesCredential(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	admin, dir, _ := newAdminFixture()

	_, err := admin.Create(ctx, "Ana", "ana@x.com", "123")
	require.NoError(t, err)
	require.NoError(t, dir.RegisterCredential(ctx, "ana@x.com", "$argon2id$hash"))

	detail, err := admin.Get(ctx, "ana@x.com")
	require.NoError(t, err)
	require.True(t, detail.SenhaDefinida)
}

func TestGetHydratesServicos(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	admin, _, blobs := newAdminFixture()

	require.NoError(t, blobs.Put(ctx, ServicoPrefix+"ensaio-1.json",
		[]byte(`{"id":"ensaio-1","nome":"Ensaio Gestante"}`)))

	require.NoError(t, blobs.Put(ctx, store.IndexKey,
		[]byte(`{"ana@x.com":"clientes/a.json"}`)))
	require.NoError(t, blobs.Put(ctx, "clientes/a.json",
		[]byte(`{"nome":"Ana","email":"ana@x.com","servicos":["ensaio-1","ensaio-2"]}`)))

	detail, err := admin.Get(ctx, "ana@x.com")
	require.NoError(t, err)
	require.Len(t, detail.Servicos, 2)
	require.Equal(t, "Ensaio Gestante", detail.Servicos[0].Nome)
	// Missing service degrades to a placeholder, not an error.
	require.Equal(t, domain.PlaceholderServico("ensaio-2"), detail.Servicos[1])
}

func TestListSkipsUnresolvableEntries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	admin, _, blobs := newAdminFixture()

	_, err := admin.Create(ctx, "Ana", "ana@x.com", "123")
	require.NoError(t, err)
	_, err = admin.Create(ctx, "Bia", "bia@x.com", "456")
	require.NoError(t, err)

	// Point a third entry at a record that doesn't exist.
	index, err := admin.Dir.Index(ctx)
	require.NoError(t, err)
	data := `{"ana@x.com":"` + index["ana@x.com"] + `","bia@x.com":"` + index["bia@x.com"] + `","ghost@x.com":"clientes/gone.json"}`
	require.NoError(t, blobs.Put(ctx, store.IndexKey, []byte(data)))

	clientes, err := admin.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []ClienteSummary{
		{Email: "ana@x.com", Nome: "Ana", Telefone: "123"},
		{Email: "bia@x.com", Nome: "Bia", Telefone: "456"},
	}, clientes)
}

func TestUpdateIgnoresUnknownAndKeepsCredential(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	admin, dir, _ := newAdminFixture()

	require.ErrorIs(t, admin.Update(ctx, "ghost@x.com", "X", "1"), store.ErrNotFound)

	_, err := admin.Create(ctx, "Ana", "ana@x.com", "123")
	require.NoError(t, err)
	require.NoError(t, dir.RegisterCredential(ctx, "ana@x.com", "$argon2id$hash"))

	require.NoError(t, admin.Update(ctx, "ana@x.com", "Ana Maria", "999"))

	c, _, err := dir.GetByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	require.Equal(t, "Ana Maria", c.Nome)
	require.Equal(t, "999", c.Telefone)
	require.Equal(t, "$argon2id$hash", c.Senha)
}

func TestDeleteThenGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	admin, dir, _ := newAdminFixture()

	_, err := admin.Create(ctx, "Ana", "ana@x.com", "123")
	require.NoError(t, err)

	require.NoError(t, admin.Delete(ctx, "ana@x.com"))

	_, err = admin.Get(ctx, "ana@x.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = dir.Lookup(ctx, "ana@x.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, admin.Delete(ctx, "ana@x.com"), store.ErrNotFound)
}
