package entities

// Attraction is a sightseeing spot (monument, temple, park, ...).
type Attraction struct {
	ID               int64   `json:"id" yaml:"id" db:"id"`
	Name             string  `json:"name" yaml:"name" db:"name"`
	Description      string  `json:"description" yaml:"description" db:"description"`
	ShortDescription string  `json:"shortDescription" yaml:"shortDescription" db:"short_description"`
	Category         string  `json:"category" yaml:"category" db:"category"`
	City             string  `json:"city" yaml:"city" db:"city"`
	ImageURL         string  `json:"imageUrl" yaml:"imageUrl" db:"image_url"`
	Rating           string  `json:"rating" yaml:"rating" db:"rating"` // one decimal place, e.g. "4.6"
	ReviewCount      int     `json:"reviewCount" yaml:"reviewCount" db:"review_count"`
	EntryFee         string  `json:"entryFee" yaml:"entryFee" db:"entry_fee"`
	OpenHours        string  `json:"openHours" yaml:"openHours" db:"open_hours"`
	Location         string  `json:"location" yaml:"location" db:"location"`
	Latitude         *string `json:"latitude" yaml:"latitude" db:"latitude"`
	Longitude        *string `json:"longitude" yaml:"longitude" db:"longitude"`
	IsTrending       bool    `json:"isTrending" yaml:"isTrending" db:"is_trending"`
	IsFeatured       bool    `json:"isFeatured" yaml:"isFeatured" db:"is_featured"`
}

func (a *Attraction) GetID() int64   { return a.ID }
func (a *Attraction) SetID(id int64) { a.ID = id }
