package models

import "gorm.io/gorm"

const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
)

// Order identifies a purchase. Buyer and product are optional: payments
// initiated straight from checkout create an anonymous order that the
// marketplace links up later.
type Order struct {
	gorm.Model
	BuyerID   *uint  `json:"buyer_id"`
	ProductID *uint  `json:"product_id"`
	Quantity  int    `gorm:"not null;default:1" json:"quantity"`
	Status    string `gorm:"not null" json:"status"`
}
