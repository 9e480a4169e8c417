package dto

// ReviewChangeDTO is one proposed field change with its selection state.
type ReviewChangeDTO struct {
	Key      string `json:"key"`
	Field    string `json:"field"`
	Old      string `json:"old"`
	New      string `json:"new"`
	Selected bool   `json:"selected"`
}

type ReviewResponse struct {
	Category   string            `json:"category"`
	TargetPage string            `json:"target_page"`
	Confidence float64           `json:"confidence"`
	Changes    []ReviewChangeDTO `json:"changes"`
	Navigation *NavOfferDTO      `json:"navigation,omitempty"`
	Message    string            `json:"message,omitempty"`
}

type ToggleRequest struct {
	Key string `json:"key" validate:"required"`
}

type ApplyRequest struct {
	MerchantId string `json:"merchant_id" validate:"required,uuid"`
}

type ApplyResponse struct {
	Applied []ReviewChangeDTO `json:"applied"`
	Message string            `json:"message"`
}
