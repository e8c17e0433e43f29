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

type LodgingServiceInterface interface {
	GetLodgingByID(ctx context.Context, id string) (response_models.Lodging, error)
	ListLodgings(ctx context.Context, page, pageSize int) ([]response_models.Lodging, error)
	CreateLodging(ctx context.Context, req request_models.CreateLodgingRequest) error
	UpdateLodging(ctx context.Context, req request_models.UpdateLodgingRequest) error
	DeleteLodging(ctx context.Context, id uuid.UUID) error
}

type LodgingService struct {
	lodgingRepo repositories.LodgingRepository
}

func NewLodgingService(lodgingRepo repositories.LodgingRepository) LodgingServiceInterface {
	return &LodgingService{lodgingRepo: lodgingRepo}
}

func (s *LodgingService) GetLodgingByID(ctx context.Context, id string) (response_models.Lodging, error) {
	lodging, err := s.lodgingRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching lodging: %v", err)
		return response_models.Lodging{}, utils.ErrDatabaseError
	}
	if lodging == nil {
		return response_models.Lodging{}, utils.ErrLodgingNotFound
	}

	return toLodgingResponse(*lodging), nil
}

func (s *LodgingService) ListLodgings(ctx context.Context, page, pageSize int) ([]response_models.Lodging, error) {
	lodgings, err := s.lodgingRepo.List(ctx, page, pageSize)
	if err != nil {
		log.Printf("Error listing lodgings: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.Lodging, 0, len(lodgings))
	for _, lodging := range lodgings {
		responses = append(responses, toLodgingResponse(lodging))
	}
	return responses, nil
}

func (s *LodgingService) CreateLodging(ctx context.Context, req request_models.CreateLodgingRequest) error {
	newLodging := &db_models.Lodging{
		Name:         req.Name,
		Description:  req.Description,
		Stars:        req.Stars,
		PriceRange:   req.PriceRange,
		BookingURL:   req.BookingURL,
		GoogleMapURL: req.GoogleMapURL,
		ContactEmail: req.ContactEmail,
		PhoneNumber:  req.PhoneNumber,
		ImagePath:    req.ImagePath,
		ImageURL:     req.ImageURL,
	}

	if err := s.lodgingRepo.Create(ctx, newLodging); err != nil {
		log.Printf("Error creating lodging: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *LodgingService) UpdateLodging(ctx context.Context, req request_models.UpdateLodgingRequest) error {
	existing, err := s.lodgingRepo.GetByID(ctx, req.ID.String())
	if err != nil {
		log.Printf("Error fetching lodging: %v", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrLodgingNotFound
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Stars = req.Stars
	existing.PriceRange = req.PriceRange
	existing.BookingURL = req.BookingURL
	existing.GoogleMapURL = req.GoogleMapURL
	existing.ContactEmail = req.ContactEmail
	existing.PhoneNumber = req.PhoneNumber
	existing.ImagePath = req.ImagePath
	existing.ImageURL = req.ImageURL

	if err := s.lodgingRepo.Update(ctx, existing); err != nil {
		log.Printf("Error updating lodging: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *LodgingService) DeleteLodging(ctx context.Context, id uuid.UUID) error {
	existing, err := s.lodgingRepo.GetByID(ctx, id.String())
	if err != nil {
		log.Printf("Error fetching lodging: %v", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrLodgingNotFound
	}

	if err := s.lodgingRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting lodging: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func toLodgingResponse(l db_models.Lodging) response_models.Lodging {
	return response_models.Lodging{
		ID:           l.ID.String(),
		Name:         l.Name,
		Description:  l.Description,
		Stars:        l.Stars,
		PriceRange:   l.PriceRange,
		BookingURL:   l.BookingURL,
		GoogleMapURL: l.GoogleMapURL,
		ContactEmail: l.ContactEmail,
		PhoneNumber:  l.PhoneNumber,
		Image:        utils.ResolveImage(l.ImagePath, l.ImageURL, ""),
	}
}
