package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    string     `gorm:"uniqueIndex" json:"user_id"` // one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is one line of a cart. PriceAtAddition is captured when the
// line is created and never follows later price changes on the product.
type CartItem struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CartID          uint      `gorm:"index" json:"cart_id"`
	ProductID       uint      `gorm:"index" json:"product_id"`
	Product         Product   `json:"product"`
	ProductName     string    `json:"product_name"`
	ProductPhoto    string    `json:"product_photo"`
	Quantity        int       `json:"quantity"`
	PriceAtAddition float64   `json:"priceAtAddition"`
	AddedAt         time.Time `json:"added_at"`
}

// Total sums quantity x price-at-addition over all lines. Lines whose
// product is known to be out of stock are skipped, matching what the
// storefront shows as the payable amount.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		if item.Product.ID != 0 && item.Product.Quantity <= 0 {
			continue
		}
		total += float64(item.Quantity) * item.PriceAtAddition
	}
	return total
}
