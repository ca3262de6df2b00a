package repository

import (
	"context"

	"github.com/flight-poi-service/internal/domain"
)

// WikidataRepository запрашивает метаданные сущностей через SPARQL
type WikidataRepository interface {
	GetEntities(ctx context.Context, qids []string, lang string) ([]*domain.Entity, error)
}
