package mpesa

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ngosoman/DevSoko/models"
)

// Client talks to the Safaricom Daraja API. Every failure on the push path
// degrades to a structured result; nothing escapes as a panic or an
// unhandled error into the HTTP layer.
type Client struct {
	cfg        Config
	registry   *CallbackURLRegistry
	httpClient *http.Client
	now        func() time.Time
}

func NewClient(cfg Config, registry *CallbackURLRegistry) *Client {
	return &Client{
		cfg:      cfg,
		registry: registry,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		now: time.Now,
	}
}

// STKPushResult is the gateway's acknowledgment of a push attempt, either
// decoded from its response or synthesized locally when the attempt never
// produced one. ResponseCode "0" is the only success value.
type STKPushResult struct {
	MerchantRequestID   string
	CheckoutRequestID   string
	ResponseCode        string
	ResponseDescription string
	CustomerMessage     string
	ErrorMessage        string
	// Raw is the payload exactly as the gateway sent it (or the synthesized
	// equivalent), kept for audit trails and error responses.
	Raw map[string]interface{}
}

func (r *STKPushResult) OK() bool { return r.ResponseCode == "0" }

func failureResult(description, errMsg string) *STKPushResult {
	return &STKPushResult{
		ResponseCode:        "1",
		ResponseDescription: description,
		ErrorMessage:        errMsg,
		Raw: map[string]interface{}{
			"ResponseCode":        "1",
			"ResponseDescription": description,
			"ErrorMessage":        errMsg,
		},
	}
}

// AccessToken exchanges the configured consumer key/secret for a short-lived
// bearer token. Placeholder credentials are refused before any network call.
func (c *Client) AccessToken() (string, error) {
	if c.cfg.ConsumerKey == placeholderConsumerKey || c.cfg.ConsumerSecret == placeholderConsumerSecret {
		return "", errors.New("mpesa credentials not configured")
	}

	req, err := http.NewRequest(http.MethodGet, c.cfg.AuthURL, nil)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.cfg.ConsumerKey, c.cfg.ConsumerSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to parse token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}
	if body.AccessToken == "" {
		return "", errors.New("no access token in response")
	}

	return body.AccessToken, nil
}

// stkPushPayload mirrors the Daraja STK push request body.
type stkPushPayload struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int64  `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

// STKPush prompts the payer's phone to authorize the charge described by
// request. It never returns an error: configuration, transport and decoding
// failures all come back as a ResponseCode "1" result so the attempt can be
// persisted for audit either way. The callback URL is resolved through the
// registry, preferring a runtime override over static configuration.
func (c *Client) STKPush(request *models.MpesaRequest) *STKPushResult {
	token, err := c.AccessToken()
	if err != nil {
		return failureResult("Failed to get Mpesa access token. Please check your credentials.", err.Error())
	}

	if c.cfg.Shortcode == placeholderShortcode {
		return failureResult("Mpesa shortcode not configured", "Please configure MPESA_SHORTCODE in .env file")
	}

	amount, err := decimal.NewFromString(request.Amount)
	if err != nil {
		return failureResult("Invalid amount", err.Error())
	}

	phone := FormatPhoneNumber(request.PhoneNumber)
	callbackURL, _ := c.registry.Current()
	password, timestamp := GeneratePassword(c.cfg.Shortcode, c.cfg.Passkey, c.now())

	// The gateway only accepts whole-number amounts; fractional cents are
	// dropped here. Known precision loss, pending a product decision.
	payload := stkPushPayload{
		BusinessShortCode: c.cfg.Shortcode,
		Password:          password,
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            amount.IntPart(),
		PartyA:            phone,
		PartyB:            c.cfg.Shortcode,
		PhoneNumber:       phone,
		CallBackURL:       callbackURL,
		AccountReference:  request.AccountReference,
		TransactionDesc:   request.Transaction,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return failureResult("Invalid request payload", err.Error())
	}

	log.Printf("STK push: phone=%s amount=%d callback=%s token=%s...", phone, amount.IntPart(), callbackURL, truncate(token, 8))

	req, err := http.NewRequest(http.MethodPost, c.cfg.STKPushURL, bytes.NewBuffer(body))
	if err != nil {
		return failureResult("Network error occurred", err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return failureResult("Network error occurred", err.Error())
	}
	defer resp.Body.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return failureResult("Invalid response from Mpesa", err.Error())
	}

	return &STKPushResult{
		MerchantRequestID:   stringField(raw, "MerchantRequestID"),
		CheckoutRequestID:   stringField(raw, "CheckoutRequestID"),
		ResponseCode:        stringField(raw, "ResponseCode"),
		ResponseDescription: stringField(raw, "ResponseDescription"),
		CustomerMessage:     stringField(raw, "CustomerMessage"),
		ErrorMessage:        stringField(raw, "errorMessage"),
		Raw:                 raw,
	}
}

func stringField(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
