package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/flight-poi-service/internal/domain"
	"github.com/flight-poi-service/internal/domain/repository"
	"github.com/flight-poi-service/internal/pkg/errors"
	"github.com/flight-poi-service/internal/pkg/utils"
	"github.com/flight-poi-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// defaultDistance - буфер поиска в метрах, если клиент его не задал
const defaultDistance = 400

// defaultFilters применяются при пустом списке условий в запросе
var defaultFilters = []domain.FilterCondition{
	{Key: "place", Operator: domain.OperatorEq, Value: filterValue("city")},
	{Key: "place", Operator: domain.OperatorEq, Value: filterValue("village")},
	{Key: "nature", Operator: domain.OperatorEq, Value: filterValue("water")},
	{Key: "nature", Operator: domain.OperatorEq, Value: filterValue("mountain")},
}

func filterValue(s string) *domain.FilterValue {
	v := domain.FilterValue(s)
	return &v
}

// POIUseCase - use case поиска точек интереса вдоль маршрута полёта
type POIUseCase struct {
	flightRepo   repository.FlightRepository
	overpassRepo repository.OverpassRepository
	cacheRepo    repository.CacheRepository
	logger       *zap.Logger
	flightTTL    time.Duration
	overpassTTL  time.Duration
}

// NewPOIUseCase - создание нового POIUseCase
func NewPOIUseCase(
	flightRepo repository.FlightRepository,
	overpassRepo repository.OverpassRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	flightTTL time.Duration,
	overpassTTL time.Duration,
) *POIUseCase {
	return &POIUseCase{
		flightRepo:   flightRepo,
		overpassRepo: overpassRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
		flightTTL:    flightTTL,
		overpassTTL:  overpassTTL,
	}
}

// GetFlightPOIs находит полёт по ICAO24, строит полигон поиска вокруг позиции
// борта и возвращает минимальный список POI с агрегацией по типам
func (uc *POIUseCase) GetFlightPOIs(
	ctx context.Context,
	icao24 string,
	req dto.FlightPOIRequest,
) (*dto.FlightPOIResponse, error) {
	distance := defaultDistance
	if req.Distance != nil {
		if *req.Distance < 0 {
			return nil, errors.ErrInvalidDistance
		}
		distance = *req.Distance
	}

	// Отсутствующее поле получает набор по умолчанию,
	// явно переданный пустой список - ошибка клиента
	filters := req.OverpassFilters
	if filters == nil {
		filters = defaultFilters
	} else if len(filters) == 0 {
		return nil, errors.ErrEmptyFilters
	}

	flight, err := uc.lookupFlight(ctx, icao24)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, errors.ErrFlightNotFound
	}

	poly := utils.PolyString(flight.Lat, flight.Lon, flight.Track, float64(distance))

	elems, err := uc.searchNodes(ctx, filters, poly)
	if err != nil {
		uc.logger.Error("Failed to search POIs along flight",
			zap.String("icao24", icao24),
			zap.Error(err))
		return nil, err
	}

	resp := &dto.FlightPOIResponse{
		Aggregations: make(map[string]int),
		POIs:         make([]domain.POI, 0, len(elems)),
	}

	// Приоритет тегов типа: place, historic, natural, tourism.
	// Элементы без единого из них молча исключаются из обоих представлений.
	for _, elem := range elems {
		poiType, ok := domain.ResolveType(elem.Tags)
		if !ok {
			continue
		}
		resp.POIs = append(resp.POIs, domain.POI{
			ID:   elem.ID,
			Name: elem.Name(),
			Type: poiType,
		})
		resp.Aggregations[poiType]++
	}

	return resp, nil
}

// GetPOIDetails возвращает подробные карточки POI по списку идентификаторов.
// Идентификаторы без найденного узла отсутствуют в результате.
func (uc *POIUseCase) GetPOIDetails(
	ctx context.Context,
	req dto.PoiDetailsRequest,
) (map[int64]domain.PoiDetail, error) {
	if len(req.PoiIDs) == 0 {
		return nil, errors.ErrEmptyPOIIDs
	}

	elems, err := uc.overpassRepo.GetNodesByIDs(ctx, req.PoiIDs)
	if err != nil {
		uc.logger.Error("Failed to fetch POI details", zap.Error(err))
		return nil, err
	}
	if len(elems) == 0 {
		return nil, errors.ErrPOIsNotFound
	}

	result := make(map[int64]domain.PoiDetail, len(elems))
	for _, elem := range elems {
		result[elem.ID] = elem.Detail()
	}

	return result, nil
}

// lookupFlight ищет полёт с коротким кешированием: позиция борта устаревает
// быстро, поэтому TTL измеряется секундами
func (uc *POIUseCase) lookupFlight(ctx context.Context, icao24 string) (*domain.Flight, error) {
	key := "flight:" + strings.ToLower(icao24)

	if data, err := uc.cacheRepo.Get(ctx, key); err == nil && data != nil {
		var flight domain.Flight
		if err := json.Unmarshal(data, &flight); err == nil {
			return &flight, nil
		}
		uc.logger.Warn("Failed to unmarshal cached flight", zap.String("key", key))
	}

	flight, err := uc.flightRepo.GetByICAO24(ctx, icao24)
	if err != nil {
		uc.logger.Error("Flight lookup failed", zap.String("icao24", icao24), zap.Error(err))
		return nil, err
	}
	if flight == nil {
		return nil, nil
	}

	if data, err := json.Marshal(flight); err == nil {
		if err := uc.cacheRepo.Set(ctx, key, data, uc.flightTTL); err != nil {
			uc.logger.Warn("Failed to cache flight", zap.String("key", key), zap.Error(err))
		}
	}

	return flight, nil
}

// searchNodes выполняет поиск с кешированием результата по хешу запроса.
// Ошибки кеша деградируют до живого запроса и никогда не валят обработку.
func (uc *POIUseCase) searchNodes(
	ctx context.Context,
	filters []domain.FilterCondition,
	poly string,
) ([]domain.Element, error) {
	key := overpassCacheKey(filters, poly)

	if data, err := uc.cacheRepo.Get(ctx, key); err == nil && data != nil {
		var elems []domain.Element
		if err := json.Unmarshal(data, &elems); err == nil {
			return elems, nil
		}
		uc.logger.Warn("Failed to unmarshal cached elements", zap.String("key", key))
	}

	elems, err := uc.overpassRepo.SearchNodes(ctx, filters, poly)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(elems); err == nil {
		if err := uc.cacheRepo.Set(ctx, key, data, uc.overpassTTL); err != nil {
			uc.logger.Warn("Failed to cache elements", zap.String("key", key), zap.Error(err))
		}
	}

	return elems, nil
}

func overpassCacheKey(filters []domain.FilterCondition, poly string) string {
	encoded, _ := json.Marshal(filters)
	sum := sha256.Sum256(append(encoded, []byte(poly)...))
	return fmt.Sprintf("overpass:%x", sum)
}
