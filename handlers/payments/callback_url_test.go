package payments_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetNgrokURLDefault(t *testing.T) {
	r, _ := setup(t, successAck())

	w := doJSON(t, r, http.MethodGet, "/mpesa/get-ngrok-url/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "https://devsoko.co.ke/api/mpesa/callback/", body["current_callback_url"])
	assert.Equal(t, false, body["is_dynamic"])
}

func TestSetCallbackURLRoundTrip(t *testing.T) {
	r, _ := setup(t, successAck())

	w := doJSON(t, r, http.MethodPost, "/mpesa/set-callback-url/", map[string]string{
		"callback_url": "https://tunnel.example/cb",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "https://tunnel.example/cb", body["callback_url"])

	w = doJSON(t, r, http.MethodGet, "/mpesa/get-ngrok-url/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "https://tunnel.example/cb", body["current_callback_url"])
	assert.Equal(t, true, body["is_dynamic"])
}

func TestSetCallbackURLRejectsBadInput(t *testing.T) {
	r, _ := setup(t, successAck())

	w := doJSON(t, r, http.MethodPost, "/mpesa/set-callback-url/", map[string]string{
		"callback_url": "ftp://x",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/mpesa/set-callback-url/", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Rejected writes leave the static URL in effect.
	w = doJSON(t, r, http.MethodGet, "/mpesa/get-ngrok-url/", nil)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["is_dynamic"])
}
