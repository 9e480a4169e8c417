package entity

import (
	"time"

	"github.com/google/uuid"
)

// Merchant is the full profile record backing every settings page.
type Merchant struct {
	Id             uuid.UUID
	BusinessName   string
	OutletName     string
	OutletAddress  string
	OutletType     string
	OutletCategory string
	SsmNumber      string
	OpenTime       string
	CloseTime      string
	DeliveryRadius string
	ServiceType    string
	OwnerName      string
	OwnerId        string
	Dob            string
	Nationality    string
	OwnerEmail     string
	OwnerPhone     string
	OwnerPosition  string
	CompanyEmail   string
	CompanyPhone   string
	SupportContact string
	BankName       string
	BankAccount    string
	AccountHolder  string
	AccountType    string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// Snapshot renders the profile as the flat camelCase key/value map the
// extraction pipeline diffs against. Every key present here is an editable
// field; extracted keys outside this set are dropped at diff time.
func (m *Merchant) Snapshot() map[string]string {
	return map[string]string{
		"businessName":   m.BusinessName,
		"outletName":     m.OutletName,
		"outletAddress":  m.OutletAddress,
		"outletType":     m.OutletType,
		"outletCategory": m.OutletCategory,
		"ssmNumber":      m.SsmNumber,
		"openTime":       m.OpenTime,
		"closeTime":      m.CloseTime,
		"deliveryRadius": m.DeliveryRadius,
		"serviceType":    m.ServiceType,
		"ownerName":      m.OwnerName,
		"ownerId":        m.OwnerId,
		"dob":            m.Dob,
		"nationality":    m.Nationality,
		"ownerEmail":     m.OwnerEmail,
		"ownerPhone":     m.OwnerPhone,
		"ownerPosition":  m.OwnerPosition,
		"companyEmail":   m.CompanyEmail,
		"companyPhone":   m.CompanyPhone,
		"supportContact": m.SupportContact,
		"bankName":       m.BankName,
		"bankAccount":    m.BankAccount,
		"accountHolder":  m.AccountHolder,
		"accountType":    m.AccountType,
	}
}

// ApplyField writes one extracted field back to the profile. Unknown keys
// are ignored and reported false.
func (m *Merchant) ApplyField(key, value string) bool {
	switch key {
	case "businessName":
		m.BusinessName = value
	case "outletName":
		m.OutletName = value
	case "outletAddress":
		m.OutletAddress = value
	case "outletType":
		m.OutletType = value
	case "outletCategory":
		m.OutletCategory = value
	case "ssmNumber":
		m.SsmNumber = value
	case "openTime":
		m.OpenTime = value
	case "closeTime":
		m.CloseTime = value
	case "deliveryRadius":
		m.DeliveryRadius = value
	case "serviceType":
		m.ServiceType = value
	case "ownerName":
		m.OwnerName = value
	case "ownerId":
		m.OwnerId = value
	case "dob":
		m.Dob = value
	case "nationality":
		m.Nationality = value
	case "ownerEmail":
		m.OwnerEmail = value
	case "ownerPhone":
		m.OwnerPhone = value
	case "ownerPosition":
		m.OwnerPosition = value
	case "companyEmail":
		m.CompanyEmail = value
	case "companyPhone":
		m.CompanyPhone = value
	case "supportContact":
		m.SupportContact = value
	case "bankName":
		m.BankName = value
	case "bankAccount":
		m.BankAccount = value
	case "accountHolder":
		m.AccountHolder = value
	case "accountType":
		m.AccountType = value
	default:
		return false
	}
	return true
}
