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

// EntityHandler - обработчик запросов метаданных сущностей Wikidata
type EntityHandler struct {
	entityUC *usecase.EntityUseCase
	logger   *zap.Logger
}

// NewEntityHandler - создание нового EntityHandler
func NewEntityHandler(entityUC *usecase.EntityUseCase, logger *zap.Logger) *EntityHandler {
	return &EntityHandler{
		entityUC: entityUC,
		logger:   logger,
	}
}

// GetEntities - данные сущностей Wikidata по списку Q-идентификаторов
// @Summary Метаданные сущностей Wikidata
// @Tags poi
// @Accept json
// @Produce json
// @Param request body dto.EntitiesRequest true "Q-идентификаторы и язык"
// @Success 200 {object} dto.EntitiesResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /poi/entities [post]
func (h *EntityHandler) GetEntities(c *fiber.Ctx) error {
	var req dto.EntitiesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.entityUC.GetEntities(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Entities),
	})
}
