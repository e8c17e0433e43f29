package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wadi/internal/models/db_models"
)

type LodgingRepository interface {
	ListAll(ctx context.Context) ([]db_models.Lodging, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Lodging, error)
	GetByID(ctx context.Context, id string) (*db_models.Lodging, error)
	Create(ctx context.Context, lodging *db_models.Lodging) error
	Update(ctx context.Context, lodging *db_models.Lodging) error
	Delete(ctx context.Context, id uuid.UUID) error
}

func NewLodgingRepository(db *gorm.DB) LodgingRepository {
	return &lodgingRepository{db: db}
}

type lodgingRepository struct {
	db *gorm.DB
}

func (r *lodgingRepository) ListAll(ctx context.Context) ([]db_models.Lodging, error) {
	var lodgings []db_models.Lodging
	err := r.db.WithContext(ctx).Order("name asc").Find(&lodgings).Error
	if err != nil {
		return nil, err
	}
	return lodgings, nil
}

func (r *lodgingRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Lodging, error) {
	var lodgings []db_models.Lodging
	err := r.db.WithContext(ctx).Scopes(func(db *gorm.DB) *gorm.DB {
		offset := (page - 1) * pageSize
		return db.Offset(offset).Limit(pageSize)
	}).Order("name asc").Find(&lodgings).Error
	if err != nil {
		return nil, err
	}
	return lodgings, nil
}

func (r *lodgingRepository) GetByID(ctx context.Context, id string) (*db_models.Lodging, error) {
	var lodging db_models.Lodging
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&lodging).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &lodging, nil
}

func (r *lodgingRepository) Create(ctx context.Context, lodging *db_models.Lodging) error {
	return r.db.WithContext(ctx).Create(lodging).Error
}

func (r *lodgingRepository) Update(ctx context.Context, lodging *db_models.Lodging) error {
	return r.db.WithContext(ctx).Save(lodging).Error
}

func (r *lodgingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Lodging{}, "id = ?", id).Error
}
