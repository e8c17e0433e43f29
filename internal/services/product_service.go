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

type ProductServiceInterface interface {
	GetProductByID(ctx context.Context, id string) (response_models.Product, error)
	ListProducts(ctx context.Context, page, pageSize int) ([]response_models.Product, error)
	CreateProduct(ctx context.Context, req request_models.CreateProductRequest) error
	UpdateProduct(ctx context.Context, req request_models.UpdateProductRequest) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type ProductService struct {
	productRepo repositories.ProductRepository
}

func NewProductService(productRepo repositories.ProductRepository) ProductServiceInterface {
	return &ProductService{productRepo: productRepo}
}

func (s *ProductService) GetProductByID(ctx context.Context, id string) (response_models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching product: %v", err)
		return response_models.Product{}, utils.ErrDatabaseError
	}
	if product == nil {
		return response_models.Product{}, utils.ErrProductNotFound
	}

	return toProductResponse(*product), nil
}

func (s *ProductService) ListProducts(ctx context.Context, page, pageSize int) ([]response_models.Product, error) {
	products, err := s.productRepo.List(ctx, page, pageSize)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.Product, 0, len(products))
	for _, product := range products {
		responses = append(responses, toProductResponse(product))
	}
	return responses, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, req request_models.CreateProductRequest) error {
	newProduct := &db_models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImagePath:   req.ImagePath,
		ImageURL:    req.ImageURL,
	}

	if err := s.productRepo.Create(ctx, newProduct); err != nil {
		log.Printf("Error creating product: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, req request_models.UpdateProductRequest) error {
	existing, err := s.productRepo.GetByID(ctx, req.ID.String())
	if err != nil {
		log.Printf("Error fetching product: %v", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrProductNotFound
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Price = req.Price
	existing.ImagePath = req.ImagePath
	existing.ImageURL = req.ImageURL

	if err := s.productRepo.Update(ctx, existing); err != nil {
		log.Printf("Error updating product: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	existing, err := s.productRepo.GetByID(ctx, id.String())
	if err != nil {
		log.Printf("Error fetching product: %v", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrProductNotFound
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting product: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func toProductResponse(p db_models.Product) response_models.Product {
	return response_models.Product{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Image:       utils.ResolveImage(p.ImagePath, p.ImageURL, ""),
	}
}
