package dto

import "time"

// CreatePrescriptionRequest leaves Physician empty to use the configured
// default physician.
type CreatePrescriptionRequest struct {
	Date      string `json:"date" validate:"omitempty,recorddate"`
	Physician string `json:"physician" validate:"max=200"`
	Content   string `json:"content" validate:"required"`
}

type UpdatePrescriptionRequest struct {
	Dispensed *bool `json:"dispensed" validate:"required"`
}

type PrescriptionResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Physician string    `json:"physician"`
	Content   string    `json:"content"`
	Dispensed bool      `json:"dispensed"`
	CreatedAt time.Time `json:"created_at"`
}
