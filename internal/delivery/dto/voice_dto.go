package dto

type SpeechRequest struct {
	Text string `json:"text" validate:"required,max=5000"`
}

type TranscriptionResponse struct {
	Text string `json:"text"`
}
