package opensky

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/flight-poi-service/internal/config"
	"github.com/flight-poi-service/internal/domain"
	"github.com/flight-poi-service/internal/domain/repository"
	"github.com/flight-poi-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewOpenSkyClient создает новый клиент для OpenSky Network API
func NewOpenSkyClient(cfg *config.OpenSkyConfig, logger *zap.Logger) repository.FlightRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.URL,
		logger:  logger,
	}
}

// statesResponse - ответ /states/all: вектор состояния кодируется позиционным массивом
type statesResponse struct {
	Time   int64           `json:"time"`
	States [][]interface{} `json:"states"`
}

// Индексы полей вектора состояния OpenSky
const (
	idxICAO24        = 0
	idxCallsign      = 1
	idxOriginCountry = 2
	idxLastContact   = 4
	idxLongitude     = 5
	idxLatitude      = 6
	idxBaroAltitude  = 7
	idxOnGround      = 8
	idxVelocity      = 9
	idxTrueTrack     = 10
)

// GetByICAO24 возвращает текущее состояние полёта или (nil, nil), если борт не виден
func (c *client) GetByICAO24(ctx context.Context, icao24 string) (*domain.Flight, error) {
	endpoint := fmt.Sprintf("%s/states/all?icao24=%s", c.baseURL, url.QueryEscape(strings.ToLower(icao24)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, errors.ErrFlightServiceUnavailable
	}

	c.logger.Debug("Calling OpenSky API", zap.String("icao24", icao24))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, errors.ErrFlightServiceUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("OpenSky API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, errors.ErrFlightServiceUnavailable
	}

	var statesResp statesResponse
	if err := json.NewDecoder(resp.Body).Decode(&statesResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, errors.ErrFlightServiceUnavailable
	}

	if len(statesResp.States) == 0 {
		c.logger.Debug("No state vector for aircraft", zap.String("icao24", icao24))
		return nil, nil
	}

	flight, ok := parseState(statesResp.States[0])
	if !ok {
		// Борт виден, но позиция ещё не передана - для поиска POI он бесполезен
		c.logger.Debug("State vector without position", zap.String("icao24", icao24))
		return nil, nil
	}

	return flight, nil
}

// parseState разбирает позиционный массив вектора состояния.
// Возвращает false, если отсутствуют координаты.
func parseState(state []interface{}) (*domain.Flight, bool) {
	lon, lonOK := asFloat(at(state, idxLongitude))
	lat, latOK := asFloat(at(state, idxLatitude))
	if !lonOK || !latOK {
		return nil, false
	}

	flight := &domain.Flight{
		ICAO24: asString(at(state, idxICAO24)),
		Lat:    lat,
		Lon:    lon,
	}

	flight.Callsign = strings.TrimSpace(asString(at(state, idxCallsign)))
	flight.OriginCountry = asString(at(state, idxOriginCountry))

	if v, ok := asFloat(at(state, idxBaroAltitude)); ok {
		flight.BaroAltitude = v
	}
	if v, ok := asFloat(at(state, idxVelocity)); ok {
		flight.Velocity = v
	}
	if v, ok := asFloat(at(state, idxTrueTrack)); ok {
		flight.Track = v
	}
	if v, ok := at(state, idxOnGround).(bool); ok {
		flight.OnGround = v
	}
	if v, ok := asFloat(at(state, idxLastContact)); ok {
		flight.LastContact = time.Unix(int64(v), 0).UTC()
	}

	return flight, true
}

func at(state []interface{}, idx int) interface{} {
	if idx >= len(state) {
		return nil
	}
	return state[idx]
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asFloat(v interface{}) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}
