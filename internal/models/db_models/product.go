package db_models

type Product struct {
	BaseModel
	Name        string `gorm:"not null"`
	Description string
	Price       float64
	ImagePath   string
	ImageURL    string
}
