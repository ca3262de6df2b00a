package overpass

import (
	"context"
	"encoding/json"
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

// NewOverpassClient создает новый клиент для Overpass API
func NewOverpassClient(cfg *config.OverpassConfig, logger *zap.Logger) repository.OverpassRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.URL,
		logger:  logger,
	}
}

// overpassResponse - структура ответа интерпретатора Overpass
type overpassResponse struct {
	Elements []domain.Element `json:"elements"`
}

// SearchNodes транслирует условия фильтрации в Overpass QL и выполняет запрос
func (c *client) SearchNodes(ctx context.Context, filters []domain.FilterCondition, poly string) ([]domain.Element, error) {
	query, err := BuildPOIQuery(filters, poly)
	if err != nil {
		return nil, err
	}
	return c.execute(ctx, query)
}

// GetNodesByIDs запрашивает узлы по списку идентификаторов
func (c *client) GetNodesByIDs(ctx context.Context, ids []int64) ([]domain.Element, error) {
	query, err := BuildDetailsQuery(ids)
	if err != nil {
		return nil, err
	}
	return c.execute(ctx, query)
}

func (c *client) execute(ctx context.Context, query string) ([]domain.Element, error) {
	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, errors.ErrOverpassUnavailable
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	c.logger.Debug("Calling Overpass API",
		zap.String("url", c.baseURL),
		zap.Int("query_len", len(query)))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded || isTimeout(err) {
			c.logger.Error("Overpass API request timed out", zap.Error(err))
			return nil, errors.ErrOverpassTimeout
		}
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, errors.ErrOverpassUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Overpass API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, errors.ErrOverpassUnavailable
	}

	var overpassResp overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&overpassResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, errors.ErrOverpassUnavailable
	}

	c.logger.Debug("Overpass API call successful",
		zap.Int("elements", len(overpassResp.Elements)),
		zap.Duration("elapsed", time.Since(start)))

	return overpassResp.Elements, nil
}

func isTimeout(err error) bool {
	type timeout interface {
		Timeout() bool
	}
	if te, ok := err.(timeout); ok {
		return te.Timeout()
	}
	return false
}
