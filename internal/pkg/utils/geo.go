package utils

import (
	"fmt"
	"math"
	"strings"
)

const earthRadiusM = 6371000.0

// polySegments - число вершин полигона поиска
const polySegments = 16

// trackStretch - во сколько раз полигон вытягивается вдоль курса полёта
const trackStretch = 2.0

// HaversineDistance вычисляет расстояние между двумя точками в метрах
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

// DestinationPoint возвращает точку на заданном расстоянии и азимуте от исходной
func DestinationPoint(lat, lon, bearingDeg, distanceM float64) (float64, float64) {
	latRad := lat * math.Pi / 180.0
	lonRad := lon * math.Pi / 180.0
	bearing := bearingDeg * math.Pi / 180.0
	angular := distanceM / earthRadiusM

	destLat := math.Asin(math.Sin(latRad)*math.Cos(angular) +
		math.Cos(latRad)*math.Sin(angular)*math.Cos(bearing))
	destLon := lonRad + math.Atan2(
		math.Sin(bearing)*math.Sin(angular)*math.Cos(latRad),
		math.Cos(angular)-math.Sin(latRad)*math.Sin(destLat),
	)

	// Normalize longitude to [-180, 180)
	destLonDeg := math.Mod(destLon*180.0/math.Pi+540.0, 360.0) - 180.0

	return destLat * 180.0 / math.Pi, destLonDeg
}

// PolyString строит замкнутый контур поиска вокруг позиции воздушного судна
// в формате Overpass (poly:"lat lon lat lon ..."). Контур вытянут вдоль курса:
// радиус вершины растёт от distanceM на траверзе до trackStretch*distanceM
// по направлению полёта и против него.
func PolyString(lat, lon, trackDeg, distanceM float64) string {
	var b strings.Builder
	for i := 0; i < polySegments; i++ {
		bearing := float64(i) * 360.0 / polySegments
		rel := (bearing - trackDeg) * math.Pi / 180.0
		radius := distanceM * (1 + (trackStretch-1)*math.Abs(math.Cos(rel)))

		pLat, pLon := DestinationPoint(lat, lon, bearing, radius)
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.6f %.6f", pLat, pLon)
	}
	return b.String()
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
