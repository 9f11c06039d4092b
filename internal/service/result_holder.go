package service

import (
	"sync"

	"github.com/MKhiriev/go-cipher-desk/models"
)

// ResultHolder keeps the artifact of the last successful submission. It is
// written by submit commands running off the UI goroutine and read by
// download and copy commands, so access is serialised.
type ResultHolder struct {
	mu     sync.RWMutex
	result *models.SubmissionResult
}

func NewResultHolder() *ResultHolder {
	return &ResultHolder{}
}

// Set stores result. Failed results are never held.
func (h *ResultHolder) Set(result models.SubmissionResult) {
	if !result.Success {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.result = &result
}

// Get returns the held result and whether one is present.
func (h *ResultHolder) Get() (models.SubmissionResult, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.result == nil {
		return models.SubmissionResult{}, false
	}
	return *h.result, true
}

func (h *ResultHolder) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.result = nil
}
