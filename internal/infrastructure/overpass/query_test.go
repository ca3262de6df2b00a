package overpass

import (
	"strings"
	"testing"

	"github.com/flight-poi-service/internal/domain"
	"github.com/flight-poi-service/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterValue(s string) *domain.FilterValue {
	v := domain.FilterValue(s)
	return &v
}

func TestBuildPOIQuery(t *testing.T) {
	poly := "55.76 37.61 55.75 37.62 55.74 37.60"

	t.Run("one clause per condition", func(t *testing.T) {
		filters := []domain.FilterCondition{
			{Key: "place", Operator: domain.OperatorEq, Value: filterValue("city")},
			{Key: "place", Operator: domain.OperatorEq, Value: filterValue("village")},
			{Key: "natural", Operator: domain.OperatorEq, Value: filterValue("water")},
		}

		query, err := BuildPOIQuery(filters, poly)
		require.NoError(t, err)

		assert.Equal(t, 3, strings.Count(query, "node["))
		assert.Contains(t, query, `node["place"="city"](poly:"`+poly+`");`)
		assert.Contains(t, query, `node["place"="village"](poly:"`+poly+`");`)
		assert.Contains(t, query, `node["natural"="water"](poly:"`+poly+`");`)
		assert.True(t, strings.HasPrefix(query, "[out:json];"))
		assert.True(t, strings.HasSuffix(query, "out body;"))
	})

	t.Run("absent value emits presence clause", func(t *testing.T) {
		filters := []domain.FilterCondition{
			{Key: "historic"},
		}

		query, err := BuildPOIQuery(filters, poly)
		require.NoError(t, err)

		assert.Contains(t, query, `node["historic"](poly:"`+poly+`");`)
		assert.NotContains(t, query, `"historic"=`)
	})

	t.Run("default operator is equality", func(t *testing.T) {
		filters := []domain.FilterCondition{
			{Key: "place", Value: filterValue("town")},
		}

		query, err := BuildPOIQuery(filters, poly)
		require.NoError(t, err)

		assert.Contains(t, query, `["place"="town"]`)
	})

	t.Run("negation and regex supported", func(t *testing.T) {
		filters := []domain.FilterCondition{
			{Key: "place", Operator: domain.OperatorNeq, Value: filterValue("hamlet")},
			{Key: "name", Operator: domain.OperatorRegex, Value: filterValue("^Moscow")},
		}

		query, err := BuildPOIQuery(filters, poly)
		require.NoError(t, err)

		assert.Contains(t, query, `["place"!="hamlet"]`)
		assert.Contains(t, query, `["name"~"^Moscow"]`)
	})

	t.Run("comparison operators rejected", func(t *testing.T) {
		for _, op := range []domain.Operator{
			domain.OperatorLt, domain.OperatorGt, domain.OperatorLte, domain.OperatorGte,
		} {
			filters := []domain.FilterCondition{
				{Key: "population", Operator: op, Value: filterValue("10000")},
			}

			_, err := BuildPOIQuery(filters, poly)
			assert.ErrorIs(t, err, errors.ErrUnsupportedOperator)
		}
	})

	t.Run("empty filter list rejected", func(t *testing.T) {
		_, err := BuildPOIQuery(nil, poly)

		assert.ErrorIs(t, err, errors.ErrEmptyFilters)
	})

	t.Run("empty key rejected", func(t *testing.T) {
		filters := []domain.FilterCondition{{Key: ""}}

		_, err := BuildPOIQuery(filters, poly)
		assert.ErrorIs(t, err, errors.ErrInvalidRequest)
	})
}

func TestBuildDetailsQuery(t *testing.T) {
	t.Run("one existence clause per id", func(t *testing.T) {
		query, err := BuildDetailsQuery([]int64{240109189, 26691396})
		require.NoError(t, err)

		assert.Contains(t, query, "node(240109189);")
		assert.Contains(t, query, "node(26691396);")
		assert.True(t, strings.HasPrefix(query, "[out:json];"))
		assert.True(t, strings.HasSuffix(query, "out body;"))
	})

	t.Run("empty id list rejected", func(t *testing.T) {
		_, err := BuildDetailsQuery(nil)

		assert.ErrorIs(t, err, errors.ErrEmptyPOIIDs)
	})
}
