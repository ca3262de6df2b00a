package dto

import "github.com/flight-poi-service/internal/domain"

// FlightPOIResponse - агрегированный список POI вдоль маршрута
type FlightPOIResponse struct {
	Aggregations map[string]int `json:"aggregations"`
	POIs         []domain.POI   `json:"pois"`
}

// EntitiesResponse - список сущностей Wikidata
type EntitiesResponse struct {
	Entities []*domain.Entity `json:"entities"`
}
