package models

import "gorm.io/gorm"

// MpesaRequest is one outbound STK push attempt. Amount is kept as an exact
// decimal column; it is only ever converted to a whole number at the wire
// boundary. A request exclusively owns the order it was created with and is
// immutable after creation.
type MpesaRequest struct {
	gorm.Model
	PhoneNumber      string         `gorm:"not null" json:"phone_number"`
	Amount           string         `gorm:"type:decimal(12,2);not null" json:"amount"`
	AccountReference string         `gorm:"not null" json:"account_reference"`
	Transaction      string         `gorm:"not null" json:"transaction"`
	OrderID          uint           `gorm:"not null" json:"order_id"`
	Order            Order          `json:"-"`
	MpesaResponse    *MpesaResponse `json:"mpesa_response,omitempty"`
}
