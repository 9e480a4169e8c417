package dto

type MerchantResourceResponse struct {
	Resource string         `json:"resource"`
	Data     map[string]any `json:"data"`
}

type MenuItemDTO struct {
	Id          string     `json:"id"`
	Position    int        `json:"position"`
	Name        string     `json:"name"`
	Picture     string     `json:"picture,omitempty"`
	Price       float64    `json:"price"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	Disabled    bool       `json:"disabled"`
	AddOns      []AddOnDTO `json:"add_ons,omitempty"`
}

type AddOnDTO struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type DocumentLinkDTO struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}
