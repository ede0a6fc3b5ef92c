package models

// Product is a catalog entry. Price is stored as text, matching the upstream
// storefront which formats it client-side.
type Product struct {
	BaseModel
	Name        string `json:"name"`
	Category    string `gorm:"index" json:"category"`
	Image       string `json:"image"`
	Price       string `json:"price"`
	Description string `json:"description"`
}
