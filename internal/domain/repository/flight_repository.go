package repository

import (
	"context"

	"github.com/flight-poi-service/internal/domain"
)

// FlightRepository ищет текущее состояние полёта по ICAO24.
// Возвращает (nil, nil), если полёт не найден.
type FlightRepository interface {
	GetByICAO24(ctx context.Context, icao24 string) (*domain.Flight, error)
}
