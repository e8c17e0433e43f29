package request_models

import "github.com/google/uuid"

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImagePath   string  `json:"image_path"`
	ImageURL    string  `json:"image_url"`
}

type UpdateProductRequest struct {
	ID uuid.UUID `json:"id" binding:"required"`
	CreateProductRequest
}
