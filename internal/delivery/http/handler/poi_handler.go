package handler

import (
	"github.com/flight-poi-service/internal/pkg/errors"
	"github.com/flight-poi-service/internal/pkg/utils"
	"github.com/flight-poi-service/internal/pkg/validator"
	"github.com/flight-poi-service/internal/usecase"
	"github.com/flight-poi-service/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// POIHandler - обработчик для POI (точки интереса) запросов
type POIHandler struct {
	poiUC  *usecase.POIUseCase
	logger *zap.Logger
}

// NewPOIHandler - создание нового POIHandler
func NewPOIHandler(poiUC *usecase.POIUseCase, logger *zap.Logger) *POIHandler {
	return &POIHandler{
		poiUC:  poiUC,
		logger: logger,
	}
}

// GetFlightPOIs - поиск POI вдоль маршрута полёта с агрегацией по типам
// @Summary POI вдоль маршрута полёта
// @Tags poi
// @Accept json
// @Produce json
// @Param icao24 path string true "ICAO24 идентификатор борта"
// @Param filter body dto.FlightPOIRequest true "Фильтры поиска"
// @Success 200 {object} dto.FlightPOIResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /poi/flight/{icao24}/pois [post]
func (h *POIHandler) GetFlightPOIs(c *fiber.Ctx) error {
	icao24 := c.Params("icao24")

	var req dto.FlightPOIRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.poiUC.GetFlightPOIs(c.Context(), icao24, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.POIs),
	})
}

// GetPOIDetails - подробная информация по списку идентификаторов POI
// @Summary Детали POI по списку идентификаторов
// @Tags poi
// @Accept json
// @Produce json
// @Param request body dto.PoiDetailsRequest true "Список идентификаторов"
// @Success 200 {object} map[int64]domain.PoiDetail
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /poi/pois/details [post]
func (h *POIHandler) GetPOIDetails(c *fiber.Ctx) error {
	var req dto.PoiDetailsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.poiUC.GetPOIDetails(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result),
	})
}
