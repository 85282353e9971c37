package payments

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/mpesa/stk-push/", h.StkPush)
	r.POST("/mpesa/callback/", h.MpesaCallback)
	r.GET("/mpesa/get-ngrok-url/", h.GetNgrokURL)
	r.POST("/mpesa/set-callback-url/", h.SetCallbackURL)
}
