package dto

import "time"

// APIResponse is the standard envelope for every endpoint. Exactly one of
// Data and Error is set; partial failures (e.g. calendar upload falling back
// to text) still return Data.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2026-08-29T12:01:05.123Z"`
}

