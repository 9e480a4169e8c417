package model

import (
	"time"

	"github.com/google/uuid"
)

type Merchant struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BusinessName   string    `gorm:"type:varchar(255);not null"`
	OutletName     string    `gorm:"type:varchar(255)"`
	OutletAddress  string    `gorm:"type:text"`
	OutletType     string    `gorm:"type:varchar(100)"`
	OutletCategory string    `gorm:"type:varchar(100)"`
	SsmNumber      string    `gorm:"type:varchar(50);index"`
	OpenTime       string    `gorm:"type:varchar(20)"`
	CloseTime      string    `gorm:"type:varchar(20)"`
	DeliveryRadius string    `gorm:"type:varchar(20)"`
	ServiceType    string    `gorm:"type:varchar(100)"`
	OwnerName      string    `gorm:"type:varchar(255)"`
	OwnerId        string    `gorm:"type:varchar(50)"`
	Dob            string    `gorm:"type:varchar(20)"`
	Nationality    string    `gorm:"type:varchar(100)"`
	OwnerEmail     string    `gorm:"type:varchar(255)"`
	OwnerPhone     string    `gorm:"type:varchar(50)"`
	Position       string    `gorm:"type:varchar(100)"`
	CompanyEmail   string    `gorm:"type:varchar(255)"`
	CompanyPhone   string    `gorm:"type:varchar(50)"`
	SupportContact string    `gorm:"type:varchar(255)"`
	BankName       string    `gorm:"type:varchar(255)"`
	BankAccount    string    `gorm:"type:varchar(50)"`
	AccountHolder  string    `gorm:"type:varchar(255)"`
	AccountType    string    `gorm:"type:varchar(50)"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Merchant) TableName() string {
	return "merchant_data"
}
