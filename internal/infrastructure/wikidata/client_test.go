package wikidata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/flight-poi-service/internal/config"
	"github.com/flight-poi-service/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClient_GetEntities(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("successful request", func(t *testing.T) {
		var receivedQuery string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			receivedQuery = r.URL.Query().Get("query")
			assert.Equal(t, "json", r.URL.Query().Get("format"))

			w.Header().Set("Content-Type", "application/sparql-results+json")
			w.Write([]byte(`{
				"results": {
					"bindings": [
						{
							"item": {"type": "uri", "value": "http://www.wikidata.org/entity/Q64"},
							"itemLabel": {"type": "literal", "value": "Берлин"},
							"description": {"type": "literal", "value": "столица Германии"},
							"coordinates": {"type": "literal", "value": "Point(13.383333333 52.516666666)"},
							"website": {"type": "uri", "value": "https://www.berlin.de/"},
							"instanceOf": {"type": "uri", "value": "http://www.wikidata.org/entity/Q5119"},
							"instanceOfLabel": {"type": "literal", "value": "столица"}
						},
						{
							"item": {"type": "uri", "value": "http://www.wikidata.org/entity/Q64"},
							"instanceOf": {"type": "uri", "value": "http://www.wikidata.org/entity/Q1549591"}
						},
						{
							"item": {"type": "uri", "value": "http://www.wikidata.org/entity/Q42"},
							"itemLabel": {"type": "literal", "value": "Дуглас Адамс"}
						}
					]
				}
			}`))
		}))
		defer server.Close()

		cfg := &config.WikidataConfig{
			URL:            server.URL,
			RequestTimeout: 5 * time.Second,
		}

		client := NewWikidataClient(cfg, logger)

		entities, err := client.GetEntities(context.Background(), []string{"Q64", "Q42"}, "ru")
		require.NoError(t, err)
		require.Len(t, entities, 2, "duplicate bindings collapse into one entity")

		assert.Contains(t, receivedQuery, "VALUES ?item { wd:Q64 wd:Q42 }")
		assert.Contains(t, receivedQuery, `FILTER(LANG(?description) = "ru")`)
		assert.Contains(t, receivedQuery, `wikibase:language "ru,en"`)

		berlin := entities[0]
		assert.Equal(t, "Q64", berlin.QID)
		assert.Equal(t, "Берлин", berlin.Label)
		require.NotNil(t, berlin.Description)
		assert.Equal(t, "столица Германии", *berlin.Description)
		require.NotNil(t, berlin.Coordinates)
		assert.InDelta(t, 52.5167, berlin.Coordinates.Latitude, 0.001)
		assert.InDelta(t, 13.3833, berlin.Coordinates.Longitude, 0.001)
		require.NotNil(t, berlin.InstanceOf)
		assert.Equal(t, "Q5119", *berlin.InstanceOf, "first binding wins")
		require.NotNil(t, berlin.Website)
		assert.Equal(t, "https://www.berlin.de/", *berlin.Website)

		adams := entities[1]
		assert.Equal(t, "Q42", adams.QID)
		assert.Equal(t, "Дуглас Адамс", adams.Label)
		assert.Nil(t, adams.Coordinates)
	})

	t.Run("empty qids rejected before request", func(t *testing.T) {
		cfg := &config.WikidataConfig{
			URL:            "http://127.0.0.1:1",
			RequestTimeout: time.Second,
		}

		client := NewWikidataClient(cfg, logger)

		_, err := client.GetEntities(context.Background(), nil, "ru")
		assert.ErrorIs(t, err, errors.ErrEmptyEntityIDs)
	})

	t.Run("endpoint error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		cfg := &config.WikidataConfig{
			URL:            server.URL,
			RequestTimeout: 5 * time.Second,
		}

		client := NewWikidataClient(cfg, logger)

		_, err := client.GetEntities(context.Background(), []string{"Q42"}, "ru")
		assert.ErrorIs(t, err, errors.ErrWikidataUnavailable)
	})
}

func TestParsePoint(t *testing.T) {
	t.Run("valid point", func(t *testing.T) {
		coords, ok := parsePoint("Point(37.6173 55.7558)")

		require.True(t, ok)
		assert.Equal(t, 55.7558, coords.Latitude)
		assert.Equal(t, 37.6173, coords.Longitude)
	})

	t.Run("garbage", func(t *testing.T) {
		_, ok := parsePoint("POLYGON((1 2, 3 4))")
		assert.False(t, ok)
	})
}
