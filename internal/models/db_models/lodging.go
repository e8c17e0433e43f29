package db_models

const (
	PriceRangeBudget   = "$"
	PriceRangeModerate = "$$"
	PriceRangeLuxury   = "$$$"
)

type Lodging struct {
	BaseModel
	Name         string `gorm:"not null"`
	Description  string
	Stars        int    `gorm:"default:3"`
	PriceRange   string `gorm:"size:3;default:$$"`
	BookingURL   string
	GoogleMapURL string
	ContactEmail string
	PhoneNumber  string `gorm:"size:20"`
	ImagePath    string
	ImageURL     string
}
