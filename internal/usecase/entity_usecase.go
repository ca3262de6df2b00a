package usecase

import (
	"context"

	"github.com/flight-poi-service/internal/domain/repository"
	"github.com/flight-poi-service/internal/pkg/errors"
	"github.com/flight-poi-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// defaultEntityLanguage - язык меток и описаний по умолчанию
const defaultEntityLanguage = "ru"

// EntityUseCase - use case получения метаданных сущностей Wikidata
type EntityUseCase struct {
	wikidataRepo repository.WikidataRepository
	logger       *zap.Logger
}

// NewEntityUseCase - создание нового EntityUseCase
func NewEntityUseCase(
	wikidataRepo repository.WikidataRepository,
	logger *zap.Logger,
) *EntityUseCase {
	return &EntityUseCase{
		wikidataRepo: wikidataRepo,
		logger:       logger,
	}
}

// GetEntities возвращает данные сущностей по списку Q-идентификаторов
func (uc *EntityUseCase) GetEntities(
	ctx context.Context,
	req dto.EntitiesRequest,
) (*dto.EntitiesResponse, error) {
	if len(req.QIDs) == 0 {
		return nil, errors.ErrEmptyEntityIDs
	}

	lang := req.Language
	if lang == "" {
		lang = defaultEntityLanguage
	}

	entities, err := uc.wikidataRepo.GetEntities(ctx, req.QIDs, lang)
	if err != nil {
		uc.logger.Error("Failed to fetch entities",
			zap.Int("qids", len(req.QIDs)),
			zap.Error(err))
		return nil, err
	}

	return &dto.EntitiesResponse{Entities: entities}, nil
}
