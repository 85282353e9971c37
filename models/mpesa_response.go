package models

import "gorm.io/gorm"

// MpesaResponse stores the gateway's synchronous acknowledgment for a push
// attempt. ResultCode and ResultDesc stay nil until the asynchronous
// callback arrives; CheckoutRequestID is the only key the callback is
// matched on, so a blank one means the attempt can never be reconciled.
type MpesaResponse struct {
	gorm.Model
	MpesaRequestID      uint    `gorm:"uniqueIndex;not null" json:"mpesa_request_id"`
	MerchantRequestID   string  `json:"merchant_request_id"`
	CheckoutRequestID   string  `gorm:"index" json:"checkout_request_id"`
	ResponseCode        string  `json:"response_code"`
	ResponseDescription string  `json:"response_description"`
	CustomerMessage     string  `json:"customer_message"`
	ResultCode          *int    `json:"result_code"`
	ResultDesc          *string `json:"result_desc"`
}
