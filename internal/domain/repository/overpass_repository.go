package repository

import (
	"context"

	"github.com/flight-poi-service/internal/domain"
)

// OverpassRepository выполняет запросы к Overpass API в терминах домена:
// трансляция условий в Overpass QL - забота реализации
type OverpassRepository interface {
	// SearchNodes ищет узлы по условиям фильтрации внутри полигона
	SearchNodes(ctx context.Context, filters []domain.FilterCondition, poly string) ([]domain.Element, error)
	// GetNodesByIDs возвращает узлы по списку идентификаторов.
	// Отсутствующие идентификаторы просто не попадают в результат.
	GetNodesByIDs(ctx context.Context, ids []int64) ([]domain.Element, error)
}
