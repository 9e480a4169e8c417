package implementation

import (
	"context"

	"merchant-dashboard-be/internal/entity"
	"merchant-dashboard-be/internal/mapper"
	"merchant-dashboard-be/internal/model"
	"merchant-dashboard-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MenuRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MenuItemMapper
}

func NewMenuRepository(db *gorm.DB) contract.MenuRepository {
	return &MenuRepositoryImpl{
		db:     db,
		mapper: mapper.NewMenuItemMapper(),
	}
}

func (r *MenuRepositoryImpl) FindAllByMerchantId(ctx context.Context, merchantId uuid.UUID) ([]*entity.MenuItem, error) {
	var models []*model.MenuItem
	err := r.db.WithContext(ctx).
		Where("merchant_id = ?", merchantId).
		Order("position ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MenuRepositoryImpl) Update(ctx context.Context, item *entity.MenuItem) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}
