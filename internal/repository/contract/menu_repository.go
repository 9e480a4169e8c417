package contract

import (
	"context"

	"merchant-dashboard-be/internal/entity"

	"github.com/google/uuid"
)

type MenuRepository interface {
	// FindAllByMerchantId returns the merchant's menu ordered by position.
	FindAllByMerchantId(ctx context.Context, merchantId uuid.UUID) ([]*entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
}
