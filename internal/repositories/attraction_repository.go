package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wadi/internal/models/db_models"
)

type AttractionRepository interface {
	ListAll(ctx context.Context) ([]db_models.Attraction, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Attraction, error)
	GetByID(ctx context.Context, id string) (*db_models.Attraction, error)
	Create(ctx context.Context, attraction *db_models.Attraction) error
	Update(ctx context.Context, attraction *db_models.Attraction) error
	Delete(ctx context.Context, id uuid.UUID) error
}

func NewAttractionRepository(db *gorm.DB) AttractionRepository {
	return &attractionRepository{db: db}
}

type attractionRepository struct {
	db *gorm.DB
}

// ListAll returns every attraction ordered by name. The planner and the
// search engine both consume this as their per-request snapshot.
func (r *attractionRepository) ListAll(ctx context.Context) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	err := r.db.WithContext(ctx).Order("name asc").Find(&attractions).Error
	if err != nil {
		return nil, err
	}
	return attractions, nil
}

func (r *attractionRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	err := r.db.WithContext(ctx).Scopes(func(db *gorm.DB) *gorm.DB {
		offset := (page - 1) * pageSize
		return db.Offset(offset).Limit(pageSize)
	}).Order("name asc").Find(&attractions).Error
	if err != nil {
		return nil, err
	}
	return attractions, nil
}

func (r *attractionRepository) GetByID(ctx context.Context, id string) (*db_models.Attraction, error) {
	var attraction db_models.Attraction
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&attraction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attraction, nil
}

func (r *attractionRepository) Create(ctx context.Context, attraction *db_models.Attraction) error {
	return r.db.WithContext(ctx).Create(attraction).Error
}

func (r *attractionRepository) Update(ctx context.Context, attraction *db_models.Attraction) error {
	return r.db.WithContext(ctx).Save(attraction).Error
}

func (r *attractionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Attraction{}, "id = ?", id).Error
}
