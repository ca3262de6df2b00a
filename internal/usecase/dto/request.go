package dto

import "github.com/flight-poi-service/internal/domain"

// FlightPOIRequest - запрос на поиск POI вдоль маршрута полёта.
// distance и overpass_filters получают значения по умолчанию в use case.
type FlightPOIRequest struct {
	Distance          *int                     `json:"distance" validate:"omitempty,min=0"`
	OverpassFilters   []domain.FilterCondition `json:"overpass_filters" validate:"omitempty,dive"`
	WithSummarization bool                     `json:"with_summarization"`
}

// PoiDetailsRequest - запрос подробной информации по списку идентификаторов POI
type PoiDetailsRequest struct {
	PoiIDs []int64 `json:"poi_ids"`
}

// EntitiesRequest - запрос метаданных сущностей Wikidata
type EntitiesRequest struct {
	QIDs     []string `json:"q_ids" validate:"omitempty,dive,required"`
	Language string   `json:"language" validate:"omitempty,min=2,max=8"`
}
