package response_models

type Attraction struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Description          string  `json:"description"`
	AttractionType       string  `json:"attraction_type"`
	VisitDurationMinutes uint    `json:"visit_duration_minutes"`
	OpeningTime          string  `json:"opening_time"`
	ClosingTime          string  `json:"closing_time"`
	TicketPrice          float64 `json:"ticket_price"`
	Image                *string `json:"image"`
}
