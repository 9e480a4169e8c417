package mapper

import (
	"encoding/json"
	"time"

	"merchant-dashboard-be/internal/entity"
	"merchant-dashboard-be/internal/model"

	"gorm.io/datatypes"
)

type MenuItemMapper struct{}

func NewMenuItemMapper() *MenuItemMapper {
	return &MenuItemMapper{}
}

func (m *MenuItemMapper) ToEntity(item *model.MenuItem) *entity.MenuItem {
	if item == nil {
		return nil
	}

	var addOns []entity.MenuAddOn
	if len(item.AddOns) > 0 {
		// A malformed add-ons blob degrades to no add-ons rather than
		// failing the whole menu read.
		_ = json.Unmarshal(item.AddOns, &addOns)
	}

	var updatedAt *time.Time
	if !item.UpdatedAt.IsZero() {
		t := item.UpdatedAt
		updatedAt = &t
	}

	return &entity.MenuItem{
		Id:          item.Id,
		MerchantId:  item.MerchantId,
		Position:    item.Position,
		Name:        item.Name,
		Picture:     item.Picture,
		Price:       item.Price,
		Description: item.Description,
		Category:    item.Category,
		Disabled:    item.Disabled,
		AddOns:      addOns,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *MenuItemMapper) ToModel(item *entity.MenuItem) *model.MenuItem {
	if item == nil {
		return nil
	}

	var addOns datatypes.JSON
	if len(item.AddOns) > 0 {
		raw, err := json.Marshal(item.AddOns)
		if err == nil {
			addOns = raw
		}
	}

	var updatedAt time.Time
	if item.UpdatedAt != nil {
		updatedAt = *item.UpdatedAt
	}

	return &model.MenuItem{
		Id:          item.Id,
		MerchantId:  item.MerchantId,
		Position:    item.Position,
		Name:        item.Name,
		Picture:     item.Picture,
		Price:       item.Price,
		Description: item.Description,
		Category:    item.Category,
		Disabled:    item.Disabled,
		AddOns:      addOns,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *MenuItemMapper) ToEntities(items []*model.MenuItem) []*entity.MenuItem {
	entities := make([]*entity.MenuItem, len(items))
	for i, item := range items {
		entities[i] = m.ToEntity(item)
	}
	return entities
}
