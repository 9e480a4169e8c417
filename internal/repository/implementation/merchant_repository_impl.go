package implementation

import (
	"context"
	"errors"

	"merchant-dashboard-be/internal/entity"
	"merchant-dashboard-be/internal/mapper"
	"merchant-dashboard-be/internal/model"
	"merchant-dashboard-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MerchantRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MerchantMapper
}

func NewMerchantRepository(db *gorm.DB) contract.MerchantRepository {
	return &MerchantRepositoryImpl{
		db:     db,
		mapper: mapper.NewMerchantMapper(),
	}
}

func (r *MerchantRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.Merchant, error) {
	var m model.Merchant
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MerchantRepositoryImpl) Update(ctx context.Context, merchant *entity.Merchant) error {
	m := r.mapper.ToModel(merchant)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*merchant = *r.mapper.ToEntity(m)
	return nil
}
