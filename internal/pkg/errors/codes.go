package errors

import "net/http"

var (
	ErrFlightNotFound = New(
		"FLIGHT_NOT_FOUND",
		"Flight not found",
		http.StatusNotFound,
	)

	ErrPOIsNotFound = New(
		"POIS_NOT_FOUND",
		"POIs not found",
		http.StatusNotFound,
	)

	ErrEmptyPOIIDs = New(
		"EMPTY_POI_IDS",
		"No POI IDs provided",
		http.StatusBadRequest,
	)

	ErrEmptyFilters = New(
		"EMPTY_FILTERS",
		"Filter list cannot be empty",
		http.StatusBadRequest,
	)

	ErrUnsupportedOperator = New(
		"UNSUPPORTED_OPERATOR",
		"Comparison operators are not supported by Overpass tag filters",
		http.StatusBadRequest,
	)

	ErrInvalidDistance = New(
		"INVALID_DISTANCE",
		"Distance must be non-negative",
		http.StatusBadRequest,
	)

	ErrEmptyEntityIDs = New(
		"EMPTY_ENTITY_IDS",
		"No entity IDs provided",
		http.StatusBadRequest,
	)

	ErrEntitiesNotFound = New(
		"ENTITIES_NOT_FOUND",
		"Entities not found",
		http.StatusNotFound,
	)

	ErrOverpassUnavailable = New(
		"OVERPASS_UNAVAILABLE",
		"Overpass API request failed",
		http.StatusBadGateway,
	)

	ErrOverpassTimeout = New(
		"OVERPASS_TIMEOUT",
		"Overpass API request timed out",
		http.StatusGatewayTimeout,
	)

	ErrWikidataUnavailable = New(
		"WIKIDATA_UNAVAILABLE",
		"Wikidata SPARQL request failed",
		http.StatusBadGateway,
	)

	ErrFlightServiceUnavailable = New(
		"FLIGHT_SERVICE_UNAVAILABLE",
		"Flight lookup request failed",
		http.StatusBadGateway,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
