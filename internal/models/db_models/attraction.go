package db_models

const (
	AttractionTypeNatural    = "natural"
	AttractionTypeHistorical = "historical"
	AttractionTypeCultural   = "cultural"
)

type Attraction struct {
	BaseModel
	Name                 string `gorm:"not null"`
	Description          string
	AttractionType       string `gorm:"size:50"`
	VisitDurationMinutes uint
	OpeningTime          string `gorm:"size:5"`
	ClosingTime          string `gorm:"size:5"`
	TicketPrice          float64
	ImagePath            string
	ImageURL             string
}
