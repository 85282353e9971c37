package payments

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetNgrokURL reports the callback URL the gateway is currently pointed at
// and whether it is a runtime override.
func (h *Handler) GetNgrokURL(c *gin.Context) {
	url, dynamic := h.Registry.Current()
	c.JSON(http.StatusOK, gin.H{
		"current_callback_url": url,
		"is_dynamic":           dynamic,
	})
}

// SetCallbackURL installs a runtime callback URL override, e.g. a fresh
// ngrok address during local testing. The override is not persisted.
func (h *Handler) SetCallbackURL(c *gin.Context) {
	var req struct {
		CallbackURL string `json:"callback_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.CallbackURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "callback_url is required"})
		return
	}

	if err := h.Registry.Set(req.CallbackURL); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid URL format"})
		return
	}

	log.Printf("Updated callback URL to: %s", req.CallbackURL)
	c.JSON(http.StatusOK, gin.H{"success": true, "callback_url": req.CallbackURL})
}
