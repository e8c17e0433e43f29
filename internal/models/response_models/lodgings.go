package response_models

type Lodging struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Stars        int     `json:"stars"`
	PriceRange   string  `json:"price_range"`
	BookingURL   string  `json:"booking_url"`
	GoogleMapURL string  `json:"google_map_url,omitempty"`
	ContactEmail string  `json:"contact_email,omitempty"`
	PhoneNumber  string  `json:"phone_number,omitempty"`
	Image        *string `json:"image"`
}
