package contract

import (
	"context"

	"merchant-dashboard-be/internal/entity"

	"github.com/google/uuid"
)

type MerchantRepository interface {
	FindById(ctx context.Context, id uuid.UUID) (*entity.Merchant, error)
	Update(ctx context.Context, merchant *entity.Merchant) error
}
