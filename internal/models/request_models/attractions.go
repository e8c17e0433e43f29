package request_models

import "github.com/google/uuid"

type CreateAttractionRequest struct {
	Name                 string  `json:"name" binding:"required"`
	Description          string  `json:"description"`
	AttractionType       string  `json:"attraction_type"`
	VisitDurationMinutes uint    `json:"visit_duration_minutes"`
	OpeningTime          string  `json:"opening_time"`
	ClosingTime          string  `json:"closing_time"`
	TicketPrice          float64 `json:"ticket_price"`
	ImagePath            string  `json:"image_path"`
	ImageURL             string  `json:"image_url"`
}

type UpdateAttractionRequest struct {
	ID uuid.UUID `json:"id" binding:"required"`
	CreateAttractionRequest
}
