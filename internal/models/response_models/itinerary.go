package response_models

type ItineraryActivity struct {
	Name        string  `json:"name"`
	Time        string  `json:"time"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
	Price       float64 `json:"price"`
}

type ItineraryDay struct {
	Day        int                 `json:"day"`
	Activities []ItineraryActivity `json:"activities"`
}

type ItineraryResult struct {
	Itinerary          []ItineraryDay `json:"itinerary"`
	TotalEstimatedCost float64        `json:"total_estimated_cost"`
}
