package entities

// Restaurant is a place to eat, optionally flagged as recommended.
type Restaurant struct {
	ID            int64   `json:"id" yaml:"id" db:"id"`
	Name          string  `json:"name" yaml:"name" db:"name"`
	Description   string  `json:"description" yaml:"description" db:"description"`
	Cuisine       string  `json:"cuisine" yaml:"cuisine" db:"cuisine"`
	City          string  `json:"city" yaml:"city" db:"city"`
	Address       string  `json:"address" yaml:"address" db:"address"`
	ImageURL      string  `json:"imageUrl" yaml:"imageUrl" db:"image_url"`
	Rating        string  `json:"rating" yaml:"rating" db:"rating"`
	ReviewCount   int     `json:"reviewCount" yaml:"reviewCount" db:"review_count"`
	PriceRange    string  `json:"priceRange" yaml:"priceRange" db:"price_range"`
	OpenHours     string  `json:"openHours" yaml:"openHours" db:"open_hours"`
	PhoneNumber   *string `json:"phoneNumber" yaml:"phoneNumber" db:"phone_number"`
	Latitude      *string `json:"latitude" yaml:"latitude" db:"latitude"`
	Longitude     *string `json:"longitude" yaml:"longitude" db:"longitude"`
	IsRecommended bool    `json:"isRecommended" yaml:"isRecommended" db:"is_recommended"`
}

func (r *Restaurant) GetID() int64   { return r.ID }
func (r *Restaurant) SetID(id int64) { r.ID = id }
