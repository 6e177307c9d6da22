package dto

import "encoding/json"

// ChatRequest keeps Message raw so a non-string message is reported the same
// way as a missing one.
type ChatRequest struct {
	PatientID *int64          `json:"patient_id"`
	Message   json.RawMessage `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type ChatErrorResponse struct {
	Error string `json:"error"`
}
