package overpass

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/flight-poi-service/internal/config"
	"github.com/flight-poi-service/internal/domain"
	"github.com/flight-poi-service/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClient_SearchNodes(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	poly := "55.76 37.61 55.75 37.62 55.74 37.60"
	filters := []domain.FilterCondition{
		{Key: "place", Operator: domain.OperatorEq, Value: filterValue("city")},
	}

	t.Run("successful request", func(t *testing.T) {
		var receivedQuery string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			receivedQuery = r.FormValue("data")

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"elements": [
					{"type": "node", "id": 1, "lat": 55.75, "lon": 37.61, "tags": {"place": "city", "name": "Москва"}},
					{"type": "node", "id": 2, "tags": {"natural": "water"}}
				]
			}`))
		}))
		defer server.Close()

		cfg := &config.OverpassConfig{
			URL:            server.URL,
			RequestTimeout: 5 * time.Second,
		}

		client := NewOverpassClient(cfg, logger)

		elems, err := client.SearchNodes(context.Background(), filters, poly)
		require.NoError(t, err)
		require.Len(t, elems, 2)

		assert.Contains(t, receivedQuery, `node["place"="city"]`)
		assert.Contains(t, receivedQuery, poly)

		assert.Equal(t, int64(1), elems[0].ID)
		assert.Equal(t, "Москва", elems[0].Tags["name"])
		require.NotNil(t, elems[0].Lat)
		assert.Equal(t, 55.75, *elems[0].Lat)

		assert.Nil(t, elems[1].Lat)
		assert.Nil(t, elems[1].Lon)
	})

	t.Run("api error response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("parse error: unexpected token"))
		}))
		defer server.Close()

		cfg := &config.OverpassConfig{
			URL:            server.URL,
			RequestTimeout: 5 * time.Second,
		}

		client := NewOverpassClient(cfg, logger)

		elems, err := client.SearchNodes(context.Background(), filters, poly)
		assert.Nil(t, elems)
		assert.ErrorIs(t, err, errors.ErrOverpassUnavailable)
	})

	t.Run("malformed response body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		cfg := &config.OverpassConfig{
			URL:            server.URL,
			RequestTimeout: 5 * time.Second,
		}

		client := NewOverpassClient(cfg, logger)

		_, err := client.SearchNodes(context.Background(), filters, poly)
		assert.ErrorIs(t, err, errors.ErrOverpassUnavailable)
	})

	t.Run("timeout maps to gateway timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		cfg := &config.OverpassConfig{
			URL:            server.URL,
			RequestTimeout: 50 * time.Millisecond,
		}

		client := NewOverpassClient(cfg, logger)

		_, err := client.SearchNodes(context.Background(), filters, poly)
		assert.ErrorIs(t, err, errors.ErrOverpassTimeout)
	})

	t.Run("empty filters rejected before request", func(t *testing.T) {
		cfg := &config.OverpassConfig{
			URL:            "http://127.0.0.1:1", // никакого сервера - запрос не должен уйти
			RequestTimeout: time.Second,
		}

		client := NewOverpassClient(cfg, logger)

		_, err := client.SearchNodes(context.Background(), nil, poly)
		assert.ErrorIs(t, err, errors.ErrEmptyFilters)
	})
}

func TestClient_GetNodesByIDs(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("missing ids are absent from result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			query := r.FormValue("data")
			assert.Contains(t, query, "node(1);")
			assert.Contains(t, query, "node(2);")

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"elements": [{"type": "node", "id": 1, "tags": {"name": "Town"}}]}`))
		}))
		defer server.Close()

		cfg := &config.OverpassConfig{
			URL:            server.URL,
			RequestTimeout: 5 * time.Second,
		}

		client := NewOverpassClient(cfg, logger)

		elems, err := client.GetNodesByIDs(context.Background(), []int64{1, 2})
		require.NoError(t, err)
		require.Len(t, elems, 1)
		assert.Equal(t, int64(1), elems[0].ID)
	})

	t.Run("empty ids rejected before request", func(t *testing.T) {
		cfg := &config.OverpassConfig{
			URL:            "http://127.0.0.1:1",
			RequestTimeout: time.Second,
		}

		client := NewOverpassClient(cfg, logger)

		_, err := client.GetNodesByIDs(context.Background(), nil)
		assert.ErrorIs(t, err, errors.ErrEmptyPOIIDs)
	})
}
