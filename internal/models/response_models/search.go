package response_models

const (
	HitTypeAttraction = "attraction"
	HitTypeLodging    = "lodging"
	HitTypeProduct    = "product"
)

type SearchHit struct {
	Type        string  `json:"type"`
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       *string `json:"image"`

	Category string   `json:"category,omitempty"`
	Rating   int      `json:"rating,omitempty"`
	Price    *float64 `json:"price,omitempty"`
}

type SearchResult struct {
	Results []SearchHit `json:"results"`
	Count   int         `json:"count"`
	Query   string      `json:"query"`
}
