package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MenuItem struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MerchantId  uuid.UUID      `gorm:"type:uuid;not null;index"`
	Position    int            `gorm:"not null"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Picture     string         `gorm:"type:text"`
	Price       float64        `gorm:"type:numeric(10,2)"`
	Description string         `gorm:"type:text"`
	Category    string         `gorm:"type:varchar(100)"`
	Disabled    bool           `gorm:"not null;default:false"`
	AddOns      datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}
