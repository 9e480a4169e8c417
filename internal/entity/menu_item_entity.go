package entity

import (
	"time"

	"github.com/google/uuid"
)

// MenuAddOn is one optional extra on a menu item.
type MenuAddOn struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// MenuItem is one dish or drink on the merchant's menu. Position is the
// item's index in the menu as the dashboard displays it; extracted menu
// change keys ({index}_{field}) address items by this position.
type MenuItem struct {
	Id          uuid.UUID
	MerchantId  uuid.UUID
	Position    int
	Name        string
	Picture     string
	Price       float64
	Description string
	Category    string
	Disabled    bool
	AddOns      []MenuAddOn
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
