package mpesa

import (
	"errors"
	"strings"
	"sync"
)

var ErrInvalidCallbackURL = errors.New("callback URL must start with http")

// CallbackURLRegistry holds a runtime override for the URL the gateway
// posts payment results to, for when the server sits behind a local tunnel
// whose public address changes between runs. The override lives in memory
// only and is dropped on restart.
type CallbackURLRegistry struct {
	mu       sync.RWMutex
	override string
	fallback string
}

// NewCallbackURLRegistry returns a registry that falls back to the
// statically configured URL until an override is set.
func NewCallbackURLRegistry(fallback string) *CallbackURLRegistry {
	return &CallbackURLRegistry{fallback: fallback}
}

// Current returns the effective callback URL and whether it comes from a
// runtime override rather than static configuration.
func (r *CallbackURLRegistry) Current() (url string, dynamic bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.override != "" {
		return r.override, true
	}
	return r.fallback, false
}

// Set installs a new override. Only a scheme sanity check is done here;
// whether the gateway can actually reach the URL is up to the operator.
func (r *CallbackURLRegistry) Set(url string) error {
	if url == "" || !strings.HasPrefix(url, "http") {
		return ErrInvalidCallbackURL
	}
	r.mu.Lock()
	r.override = url
	r.mu.Unlock()
	return nil
}
