package mapper

import (
	"time"

	"merchant-dashboard-be/internal/entity"
	"merchant-dashboard-be/internal/model"
)

type MerchantMapper struct{}

func NewMerchantMapper() *MerchantMapper {
	return &MerchantMapper{}
}

func (m *MerchantMapper) ToEntity(r *model.Merchant) *entity.Merchant {
	if r == nil {
		return nil
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	return &entity.Merchant{
		Id:             r.Id,
		BusinessName:   r.BusinessName,
		OutletName:     r.OutletName,
		OutletAddress:  r.OutletAddress,
		OutletType:     r.OutletType,
		OutletCategory: r.OutletCategory,
		SsmNumber:      r.SsmNumber,
		OpenTime:       r.OpenTime,
		CloseTime:      r.CloseTime,
		DeliveryRadius: r.DeliveryRadius,
		ServiceType:    r.ServiceType,
		OwnerName:      r.OwnerName,
		OwnerId:        r.OwnerId,
		Dob:            r.Dob,
		Nationality:    r.Nationality,
		OwnerEmail:     r.OwnerEmail,
		OwnerPhone:     r.OwnerPhone,
		OwnerPosition:  r.Position,
		CompanyEmail:   r.CompanyEmail,
		CompanyPhone:   r.CompanyPhone,
		SupportContact: r.SupportContact,
		BankName:       r.BankName,
		BankAccount:    r.BankAccount,
		AccountHolder:  r.AccountHolder,
		AccountType:    r.AccountType,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *MerchantMapper) ToModel(e *entity.Merchant) *model.Merchant {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.Merchant{
		Id:             e.Id,
		BusinessName:   e.BusinessName,
		OutletName:     e.OutletName,
		OutletAddress:  e.OutletAddress,
		OutletType:     e.OutletType,
		OutletCategory: e.OutletCategory,
		SsmNumber:      e.SsmNumber,
		OpenTime:       e.OpenTime,
		CloseTime:      e.CloseTime,
		DeliveryRadius: e.DeliveryRadius,
		ServiceType:    e.ServiceType,
		OwnerName:      e.OwnerName,
		OwnerId:        e.OwnerId,
		Dob:            e.Dob,
		Nationality:    e.Nationality,
		OwnerEmail:     e.OwnerEmail,
		OwnerPhone:     e.OwnerPhone,
		Position:       e.OwnerPosition,
		CompanyEmail:   e.CompanyEmail,
		CompanyPhone:   e.CompanyPhone,
		SupportContact: e.SupportContact,
		BankName:       e.BankName,
		BankAccount:    e.BankAccount,
		AccountHolder:  e.AccountHolder,
		AccountType:    e.AccountType,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}
