package request_models

import "github.com/google/uuid"

type CreateLodgingRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	Stars        int    `json:"stars"`
	PriceRange   string `json:"price_range"`
	BookingURL   string `json:"booking_url"`
	GoogleMapURL string `json:"google_map_url"`
	ContactEmail string `json:"contact_email"`
	PhoneNumber  string `json:"phone_number"`
	ImagePath    string `json:"image_path"`
	ImageURL     string `json:"image_url"`
}

type UpdateLodgingRequest struct {
	ID uuid.UUID `json:"id" binding:"required"`
	CreateLodgingRequest
}
