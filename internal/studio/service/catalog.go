package service

import (
	"context"
	"encoding/json"

	"github.com/fotosdotap/studio/internal/studio/domain"
	"github.com/fotosdotap/studio/pkg/blob"
	"github.com/fotosdotap/studio/pkg/slogx"
)

// ServicoPrefix namespaces service-booking documents in storage.
const ServicoPrefix = "servicos/"

// CatalogService resolves the service ids referenced by client records.
// A reference that can't be fetched or parsed degrades to a placeholder
// instead of failing the whole response.
type CatalogService struct {
	Blobs blob.Store
}

// GetServicoByID fetches one service document, or its placeholder.
func (s *CatalogService) GetServicoByID(ctx context.Context, id string) domain.Servico {
	data, err := s.Blobs.Get(ctx, ServicoPrefix+id+".json")
	if err != nil {
		slogx.FromContext(ctx).Warn("servico unavailable", "id", id, "error", err)
		return domain.PlaceholderServico(id)
	}

	var servico domain.Servico
	if err := json.Unmarshal(data, &servico); err != nil {
		slogx.FromContext(ctx).Warn("servico unparseable", "id", id, "error", err)
		return domain.PlaceholderServico(id)
	}
	if servico.ID == "" {
		servico.ID = id
	}
	return servico
}

// Hydrate resolves every id in order.
func (s *CatalogService) Hydrate(ctx context.Context, ids []string) []domain.Servico {
	servicos := make([]domain.Servico, 0, len(ids))
	for _, id := range ids {
		servicos = append(servicos, s.GetServicoByID(ctx, id))
	}
	return servicos
}
