package dto

// DocumentDTO is an uploaded attachment accompanying a chat message. Binary
// uploads carry base64 Data; text documents carry Text.
type DocumentDTO struct {
	FileName string `json:"file_name" validate:"required"`
	MimeType string `json:"mime_type" validate:"required"`
	Data     string `json:"data,omitempty"`
	Text     string `json:"text,omitempty"`
}

type ChatRequest struct {
	MerchantId string       `json:"merchant_id" validate:"required,uuid"`
	Message    string       `json:"message"`
	Document   *DocumentDTO `json:"document,omitempty"`
}

// ChatResponse covers every assistant outcome. Type is one of:
// "answer" (conversational reply), "smart-navigation-offer" (changes staged,
// navigation pending), "no-action" (nothing extractable).
type ChatResponse struct {
	Type       string       `json:"type"`
	Message    string       `json:"message"`
	Navigation *NavOfferDTO `json:"navigation,omitempty"`
}

type NavOfferDTO struct {
	TargetPage  string  `json:"target_page"`
	Category    string  `json:"category"`
	ChangeCount int     `json:"change_count"`
	Confidence  float64 `json:"confidence"`
}

// NavigateRequest stages externally computed extraction results, used when
// the dashboard re-submits a previously offered extraction.
type NavigateRequest struct {
	MerchantId    string         `json:"merchant_id" validate:"required,uuid"`
	DataType      string         `json:"data_type" validate:"required"`
	ExtractedData map[string]any `json:"extracted_data" validate:"required"`
	Order         []string       `json:"order,omitempty"`
}

type NavigateResponse struct {
	TargetPage string `json:"target_page"`
	Message    string `json:"message"`
}
