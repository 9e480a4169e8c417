package dto

type RecognizeRequest struct {
	FileName string `json:"file_name" validate:"required"`
	MimeType string `json:"mime_type" validate:"required"`
	Data     string `json:"data" validate:"required"` // base64 image bytes
}

type RecognizeResponse struct {
	Text      string            `json:"text"`
	Extracted map[string]string `json:"extracted"`
}
