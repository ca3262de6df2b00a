package wikidata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

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

// NewWikidataClient создает новый SPARQL-клиент для Wikidata
func NewWikidataClient(cfg *config.WikidataConfig, logger *zap.Logger) repository.WikidataRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.URL,
		logger:  logger,
	}
}

// sparqlResponse - результат SPARQL в формате application/sparql-results+json
type sparqlResponse struct {
	Results struct {
		Bindings []map[string]sparqlValue `json:"bindings"`
	} `json:"results"`
}

type sparqlValue struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// GetEntities возвращает метаданные сущностей по списку Q-идентификаторов
func (c *client) GetEntities(ctx context.Context, qids []string, lang string) ([]*domain.Entity, error) {
	if len(qids) == 0 {
		return nil, errors.ErrEmptyEntityIDs
	}
	if lang == "" {
		lang = "ru"
	}

	query := buildQuery(qids, lang)

	endpoint := c.baseURL + "?" + url.Values{
		"query":  {query},
		"format": {"json"},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, errors.ErrWikidataUnavailable
	}
	req.Header.Set("Accept", "application/sparql-results+json")

	c.logger.Debug("Calling Wikidata SPARQL endpoint",
		zap.Int("qids", len(qids)),
		zap.String("lang", lang))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, errors.ErrWikidataUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Wikidata returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, errors.ErrWikidataUnavailable
	}

	var sparqlResp sparqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&sparqlResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, errors.ErrWikidataUnavailable
	}

	return collectEntities(sparqlResp.Results.Bindings), nil
}

// buildQuery формирует SPARQL-запрос с VALUES-блоком и опциональными свойствами:
// P18 изображение, P31 тип объекта, P625 координаты, P131 административное
// деление, P856 официальный сайт, P571 дата основания.
func buildQuery(qids []string, lang string) string {
	values := make([]string, 0, len(qids))
	for _, qid := range qids {
		values = append(values, "wd:"+qid)
	}

	return fmt.Sprintf(`SELECT ?item ?itemLabel ?description ?image ?instanceOf ?instanceOfLabel ?coordinates ?admin ?adminLabel ?website ?inception WHERE {
  VALUES ?item { %s }

  OPTIONAL {
    ?item schema:description ?description .
    FILTER(LANG(?description) = "%s")
  }
  OPTIONAL { ?item wdt:P18 ?image. }
  OPTIONAL { ?item wdt:P31 ?instanceOf. }
  OPTIONAL { ?item wdt:P625 ?coordinates. }
  OPTIONAL { ?item wdt:P131 ?admin. }
  OPTIONAL { ?item wdt:P856 ?website. }
  OPTIONAL { ?item wdt:P571 ?inception. }

  SERVICE wikibase:label { bd:serviceParam wikibase:language "%s,en". }
}`, strings.Join(values, " "), lang, lang)
}

// collectEntities сводит строки результата к одной сущности на Q-идентификатор,
// сохраняя порядок первого появления
func collectEntities(bindings []map[string]sparqlValue) []*domain.Entity {
	entities := make([]*domain.Entity, 0, len(bindings))
	seen := make(map[string]*domain.Entity)

	for _, b := range bindings {
		item, ok := b["item"]
		if !ok {
			continue
		}
		qid := lastSegment(item.Value)

		entity, exists := seen[qid]
		if !exists {
			entity = &domain.Entity{QID: qid}
			seen[qid] = entity
			entities = append(entities, entity)
		}

		if v, ok := b["itemLabel"]; ok && entity.Label == "" {
			entity.Label = v.Value
		}
		setOptional(&entity.Description, b, "description")
		setOptional(&entity.Image, b, "image")
		setOptional(&entity.InstanceOfLabel, b, "instanceOfLabel")
		setOptional(&entity.AdminLabel, b, "adminLabel")
		setOptional(&entity.Website, b, "website")
		setOptional(&entity.Inception, b, "inception")

		if v, ok := b["instanceOf"]; ok && entity.InstanceOf == nil {
			s := lastSegment(v.Value)
			entity.InstanceOf = &s
		}
		if v, ok := b["admin"]; ok && entity.Admin == nil {
			s := lastSegment(v.Value)
			entity.Admin = &s
		}
		if v, ok := b["coordinates"]; ok && entity.Coordinates == nil {
			if coords, ok := parsePoint(v.Value); ok {
				entity.Coordinates = coords
			}
		}
	}

	return entities
}

func setOptional(dst **string, b map[string]sparqlValue, key string) {
	if *dst != nil {
		return
	}
	if v, ok := b[key]; ok {
		s := v.Value
		*dst = &s
	}
}

func lastSegment(uri string) string {
	if idx := strings.LastIndex(uri, "/"); idx >= 0 {
		return uri[idx+1:]
	}
	return uri
}

// parsePoint разбирает WKT-литерал вида "Point(lon lat)"
func parsePoint(wkt string) (*domain.Coordinates, bool) {
	s := strings.TrimSpace(wkt)
	if !strings.HasPrefix(s, "Point(") || !strings.HasSuffix(s, ")") {
		return nil, false
	}

	parts := strings.Fields(s[len("Point(") : len(s)-1])
	if len(parts) != 2 {
		return nil, false
	}

	lon, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, false
	}
	lat, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, false
	}

	return &domain.Coordinates{Latitude: lat, Longitude: lon}, true
}
