package utils

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestinationPoint(t *testing.T) {
	t.Run("north keeps longitude", func(t *testing.T) {
		lat, lon := DestinationPoint(55.0, 37.0, 0, 1000)

		assert.InDelta(t, 55.009, lat, 0.001)
		assert.InDelta(t, 37.0, lon, 0.0001)
	})

	t.Run("east keeps latitude", func(t *testing.T) {
		lat, lon := DestinationPoint(0.0, 10.0, 90, 1000)

		assert.InDelta(t, 0.0, lat, 0.0001)
		assert.InDelta(t, 10.009, lon, 0.001)
	})

	t.Run("round trip distance", func(t *testing.T) {
		lat, lon := DestinationPoint(48.8566, 2.3522, 135, 5000)

		assert.InDelta(t, 5000, HaversineDistance(48.8566, 2.3522, lat, lon), 1.0)
	})
}

func TestPolyString(t *testing.T) {
	poly := PolyString(55.7558, 37.6173, 90, 400)

	fields := strings.Fields(poly)
	require.Len(t, fields, 32, "16 vertices, lat lon pairs")

	for i := 0; i < len(fields); i += 2 {
		lat, err := strconv.ParseFloat(fields[i], 64)
		require.NoError(t, err)
		lon, err := strconv.ParseFloat(fields[i+1], 64)
		require.NoError(t, err)

		assert.True(t, ValidateCoordinates(lat, lon))

		// Вершины лежат между базовым радиусом и вытянутым вдоль курса
		dist := HaversineDistance(55.7558, 37.6173, lat, lon)
		assert.GreaterOrEqual(t, dist, 390.0)
		assert.LessOrEqual(t, dist, 810.0)
	}
}

func TestPolyStringStretchedAlongTrack(t *testing.T) {
	// Курс на север: первая вершина (азимут 0) должна быть дальше,
	// чем вершина на траверзе (азимут 90)
	poly := PolyString(50.0, 10.0, 0, 400)
	fields := strings.Fields(poly)
	require.Len(t, fields, 32)

	northLat, _ := strconv.ParseFloat(fields[0], 64)
	northLon, _ := strconv.ParseFloat(fields[1], 64)
	// Вершина 4 из 16 - азимут 90
	eastLat, _ := strconv.ParseFloat(fields[8], 64)
	eastLon, _ := strconv.ParseFloat(fields[9], 64)

	distNorth := HaversineDistance(50.0, 10.0, northLat, northLon)
	distEast := HaversineDistance(50.0, 10.0, eastLat, eastLon)

	assert.Greater(t, distNorth, distEast)
	assert.InDelta(t, 800, distNorth, 5.0)
	assert.InDelta(t, 400, distEast, 5.0)
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(55.7558, 37.6173))
	assert.True(t, ValidateCoordinates(-90, 180))
	assert.False(t, ValidateCoordinates(91, 0))
	assert.False(t, ValidateCoordinates(0, -181))
}
