package entities

import "time"

// Offer is a promotional deal redeemable with a promo code.
//
// DiscountPercentage and DiscountAmount are independent; usually only one is set.
type Offer struct {
	ID                 int64     `json:"id" yaml:"id" db:"id"`
	Title              string    `json:"title" yaml:"title" db:"title"`
	Description        string    `json:"description" yaml:"description" db:"description"`
	Category           string    `json:"category" yaml:"category" db:"category"`
	DiscountPercentage *int      `json:"discountPercentage" yaml:"discountPercentage" db:"discount_percentage"`
	DiscountAmount     *string   `json:"discountAmount" yaml:"discountAmount" db:"discount_amount"`
	Code               string    `json:"code" yaml:"code" db:"code"`
	ValidUntil         time.Time `json:"validUntil" yaml:"validUntil" db:"valid_until"`
	IsActive           bool      `json:"isActive" yaml:"isActive" db:"is_active"`
	BackgroundColor    string    `json:"backgroundColor" yaml:"backgroundColor" db:"background_color"`
}

func (o *Offer) GetID() int64   { return o.ID }
func (o *Offer) SetID(id int64) { o.ID = id }

// RedeemableAt reports whether the offer is switched on and not yet expired.
func (o *Offer) RedeemableAt(now time.Time) bool {
	return o.IsActive && !o.ValidUntil.Before(now)
}
