package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"wadi/internal/models/db_models"
	"wadi/internal/models/request_models"
	"wadi/internal/models/response_models"
	"wadi/internal/repositories"
	"wadi/pkg/utils"
)

type AttractionServiceInterface interface {
	GetAttractionByID(ctx context.Context, id string) (response_models.Attraction, error)
	ListAttractions(ctx context.Context, page, pageSize int) ([]response_models.Attraction, error)
	CreateAttraction(ctx context.Context, req request_models.CreateAttractionRequest) error
	UpdateAttraction(ctx context.Context, req request_models.UpdateAttractionRequest) error
	DeleteAttraction(ctx context.Context, id uuid.UUID) error
}

type AttractionService struct {
	attractionRepo repositories.AttractionRepository
}

func NewAttractionService(attractionRepo repositories.AttractionRepository) AttractionServiceInterface {
	return &AttractionService{attractionRepo: attractionRepo}
}

func (s *AttractionService) GetAttractionByID(ctx context.Context, id string) (response_models.Attraction, error) {
	attraction, err := s.attractionRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching attraction: %v", err)
		return response_models.Attraction{}, utils.ErrDatabaseError
	}
	if attraction == nil {
		return response_models.Attraction{}, utils.ErrAttractionNotFound
	}

	return toAttractionResponse(*attraction), nil
}

func (s *AttractionService) ListAttractions(ctx context.Context, page, pageSize int) ([]response_models.Attraction, error) {
	attractions, err := s.attractionRepo.List(ctx, page, pageSize)
	if err != nil {
		log.Printf("Error listing attractions: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.Attraction, 0, len(attractions))
	for _, attraction := range attractions {
		responses = append(responses, toAttractionResponse(attraction))
	}
	return responses, nil
}

func (s *AttractionService) CreateAttraction(ctx context.Context, req request_models.CreateAttractionRequest) error {
	newAttraction := &db_models.Attraction{
		Name:                 req.Name,
		Description:          req.Description,
		AttractionType:       req.AttractionType,
		VisitDurationMinutes: req.VisitDurationMinutes,
		OpeningTime:          req.OpeningTime,
		ClosingTime:          req.ClosingTime,
		TicketPrice:          req.TicketPrice,
		ImagePath:            req.ImagePath,
		ImageURL:             req.ImageURL,
	}

	if err := s.attractionRepo.Create(ctx, newAttraction); err != nil {
		log.Printf("Error creating attraction: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *AttractionService) UpdateAttraction(ctx context.Context, req request_models.UpdateAttractionRequest) error {
	existing, err := s.attractionRepo.GetByID(ctx, req.ID.String())
	if err != nil {
		log.Printf("Error fetching attraction: %v", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrAttractionNotFound
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.AttractionType = req.AttractionType
	existing.VisitDurationMinutes = req.VisitDurationMinutes
	existing.OpeningTime = req.OpeningTime
	existing.ClosingTime = req.ClosingTime
	existing.TicketPrice = req.TicketPrice
	existing.ImagePath = req.ImagePath
	existing.ImageURL = req.ImageURL

	if err := s.attractionRepo.Update(ctx, existing); err != nil {
		log.Printf("Error updating attraction: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *AttractionService) DeleteAttraction(ctx context.Context, id uuid.UUID) error {
	existing, err := s.attractionRepo.GetByID(ctx, id.String())
	if err != nil {
		log.Printf("Error fetching attraction: %v", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrAttractionNotFound
	}

	if err := s.attractionRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting attraction: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func toAttractionResponse(a db_models.Attraction) response_models.Attraction {
	return response_models.Attraction{
		ID:                   a.ID.String(),
		Name:                 a.Name,
		Description:          a.Description,
		AttractionType:       a.AttractionType,
		VisitDurationMinutes: a.VisitDurationMinutes,
		OpeningTime:          a.OpeningTime,
		ClosingTime:          a.ClosingTime,
		TicketPrice:          a.TicketPrice,
		Image:                utils.ResolveImage(a.ImagePath, a.ImageURL, ""),
	}
}
