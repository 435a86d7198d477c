package service

import (
	"context"
	"testing"

	"github.com/fotosdotap/studio/internal/studio/domain"
	"github.com/fotosdotap/studio/pkg/blob"
	"github.com/stretchr/testify/require"
)

func TestGetServicoByID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	blobs := blob.NewMemory()
	catalog := &CatalogService{Blobs: blobs}

	require.NoError(t, blobs.Put(ctx, ServicoPrefix+"ensaio-1.json",
		[]byte(`{"id":"ensaio-1","nome":"Ensaio Gestante","data":"2024-06-01"}`)))
	require.NoError(t, blobs.Put(ctx, ServicoPrefix+"quebrado.json", []byte(`{broken`)))

	got := catalog.GetServicoByID(ctx, "ensaio-1")
	require.Equal(t, "Ensaio Gestante", got.Nome)
	require.Equal(t, "2024-06-01", got.Data)

	// Missing and unparseable both degrade to the placeholder.
	require.Equal(t, domain.PlaceholderServico("nao-existe"), catalog.GetServicoByID(ctx, "nao-existe"))
	require.Equal(t, domain.PlaceholderServico("quebrado"), catalog.GetServicoByID(ctx, "quebrado"))
}

func TestHydratePreservesOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	blobs := blob.NewMemory()
	catalog := &CatalogService{Blobs: blobs}

	require.NoError(t, blobs.Put(ctx, ServicoPrefix+"b.json", []byte(`{"id":"b","nome":"B"}`)))
	require.NoError(t, blobs.Put(ctx, ServicoPrefix+"a.json", []byte(`{"id":"a","nome":"A"}`)))

	servicos := catalog.Hydrate(ctx, []string{"b", "a"})
	require.Len(t, servicos, 2)
	require.Equal(t, "B", servicos[0].Nome)
	require.Equal(t, "A", servicos[1].Nome)
}
