package payments

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Ngosoman/DevSoko/models"
	"github.com/Ngosoman/DevSoko/mpesa"
)

// Handler wires the payment endpoints to their collaborators. Everything is
// injected from main so tests can swap in an in-memory database and a fake
// gateway.
type Handler struct {
	DB       *gorm.DB
	Client   *mpesa.Client
	Registry *mpesa.CallbackURLRegistry
}

type stkPushRequest struct {
	PhoneNumber      string `json:"phone_number" binding:"required"`
	AccountReference string `json:"account_reference" binding:"required"`
	Transaction      string `json:"transaction" binding:"required"`
	// Amount arrives as a JSON number or string; decimal.Decimal accepts
	// both. Positivity is checked in the handler.
	Amount decimal.Decimal `json:"amount"`
	// Accepted for frontend compatibility, not stored.
	ProductID *uint `json:"product_id"`
}

// StkPush initiates a push-to-pay prompt on the customer's phone and records
// the attempt. Each attempt owns a freshly created pending order, and the
// gateway's acknowledgment is persisted whether it succeeded or not.
func (h *Handler) StkPush(c *gin.Context) {
	var req stkPushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !req.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be greater than zero"})
		return
	}

	order := models.Order{Quantity: 1, Status: models.OrderStatusPending}
	if err := h.DB.Create(&order).Error; err != nil {
		log.Printf("Failed to create order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	request := models.MpesaRequest{
		PhoneNumber:      req.PhoneNumber,
		Amount:           req.Amount.String(),
		AccountReference: req.AccountReference,
		Transaction:      req.Transaction,
		OrderID:          order.ID,
	}
	if err := h.DB.Create(&request).Error; err != nil {
		log.Printf("Failed to record payment request: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment request"})
		return
	}

	result := h.Client.STKPush(&request)

	response := models.MpesaResponse{
		MpesaRequestID:      request.ID,
		MerchantRequestID:   result.MerchantRequestID,
		CheckoutRequestID:   result.CheckoutRequestID,
		ResponseCode:        result.ResponseCode,
		ResponseDescription: result.ResponseDescription,
		CustomerMessage:     result.CustomerMessage,
	}
	if err := h.DB.Create(&response).Error; err != nil {
		log.Printf("Failed to record payment response: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment response"})
		return
	}

	if !result.OK() {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "STK push failed", "error": result.Raw})
		return
	}

	c.JSON(http.StatusCreated, response)
}

type stkCallbackEnvelope struct {
	Body struct {
		StkCallback struct {
			CheckoutRequestID string  `json:"CheckoutRequestID"`
			ResultCode        *int    `json:"ResultCode"`
			ResultDesc        *string `json:"ResultDesc"`
		} `json:"stkCallback"`
	} `json:"Body"`
}

// MpesaCallback reconciles the gateway's asynchronous payment result with a
// stored attempt. The gateway retries anything but a success acknowledgment,
// so this answers 200 no matter what, including for checkout ids it has
// never seen.
func (h *Handler) MpesaCallback(c *gin.Context) {
	ack := gin.H{"ResultCode": 0, "ResultDesc": "Success"}

	var envelope stkCallbackEnvelope
	if err := c.ShouldBindJSON(&envelope); err != nil {
		log.Printf("Ignoring malformed Mpesa callback: %v", err)
		c.JSON(http.StatusOK, ack)
		return
	}

	callback := envelope.Body.StkCallback
	// Failed pushes are stored with a blank checkout id; a blank callback id
	// must not match them.
	if callback.CheckoutRequestID == "" {
		c.JSON(http.StatusOK, ack)
		return
	}

	var response models.MpesaResponse
	if err := h.DB.Where("checkout_request_id = ?", callback.CheckoutRequestID).First(&response).Error; err != nil {
		log.Printf("No payment attempt matches checkout id %q", callback.CheckoutRequestID)
		c.JSON(http.StatusOK, ack)
		return
	}

	response.ResultCode = callback.ResultCode
	response.ResultDesc = callback.ResultDesc
	if err := h.DB.Save(&response).Error; err != nil {
		log.Printf("Failed to update payment response %d: %v", response.ID, err)
		c.JSON(http.StatusOK, ack)
		return
	}

	if callback.ResultCode != nil && *callback.ResultCode == 0 {
		var request models.MpesaRequest
		if err := h.DB.First(&request, response.MpesaRequestID).Error; err != nil {
			log.Printf("Payment response %d has no request: %v", response.ID, err)
		} else if err := h.DB.Model(&models.Order{}).Where("id = ?", request.OrderID).
			Update("status", models.OrderStatusPaid).Error; err != nil {
			log.Printf("Failed to mark order %d paid: %v", request.OrderID, err)
		}
	}

	c.JSON(http.StatusOK, ack)
}
