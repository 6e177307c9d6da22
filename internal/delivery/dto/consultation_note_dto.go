package dto

import "time"

type CreateNoteRequest struct {
	Date    string `json:"date" validate:"omitempty,recorddate"`
	Content string `json:"content" validate:"required"`
}

type NoteResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
