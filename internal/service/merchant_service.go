package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"merchant-dashboard-be/internal/dto"
	"merchant-dashboard-be/internal/entity"
	"merchant-dashboard-be/internal/pkg/logger"
	"merchant-dashboard-be/internal/pkg/serverutils"
	"merchant-dashboard-be/internal/repository/contract"
	"merchant-dashboard-be/pkg/schema"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type IMerchantService interface {
	GetResource(ctx context.Context, merchantId uuid.UUID, resource string) (*dto.MerchantResourceResponse, error)
	InvalidateProfile(ctx context.Context, merchantId uuid.UUID)
}

const profileCacheTTL = 5 * time.Minute

type merchantService struct {
	merchantRepo   contract.MerchantRepository
	menuRepo       contract.MenuRepository
	rdb            *redis.Client
	storageBaseURL string
	logger         logger.ILogger
}

func NewMerchantService(
	merchantRepo contract.MerchantRepository,
	menuRepo contract.MenuRepository,
	rdb *redis.Client,
	storageBaseURL string,
	log logger.ILogger,
) IMerchantService {
	return &merchantService{
		merchantRepo:   merchantRepo,
		menuRepo:       menuRepo,
		rdb:            rdb,
		storageBaseURL: storageBaseURL,
		logger:         log,
	}
}

// GetResource serves one dashboard settings page worth of data. The resource
// name is the page key the shell routes on; unknown resources are a 404, a
// missing merchant is a 404, storage failures are 500s.
func (s *merchantService) GetResource(ctx context.Context, merchantId uuid.UUID, resource string) (*dto.MerchantResourceResponse, error) {
	switch resource {
	case "menu":
		return s.menuResource(ctx, merchantId)
	case "full-profile":
		return s.fullProfile(ctx, merchantId)
	case "documents":
		return s.documents(ctx, merchantId)
	case "owner-name":
		merchant, err := s.findMerchant(ctx, merchantId)
		if err != nil {
			return nil, err
		}
		return &dto.MerchantResourceResponse{
			Resource: resource,
			Data:     map[string]any{"ownerName": merchant.OwnerName},
		}, nil
	}

	// Page-scoped field slices (business-info, personal-info, ...).
	category := schema.PageDisplayName(resource)
	fields := schema.FieldsFor(category)
	if fields == nil || schema.CategoryToPage(category) != resource {
		return nil, serverutils.NewApiError(fiber.StatusNotFound, fmt.Sprintf("Unknown resource %q", resource))
	}

	merchant, err := s.findMerchant(ctx, merchantId)
	if err != nil {
		return nil, err
	}

	snapshot := merchant.Snapshot()
	data := make(map[string]any, len(fields))
	for _, field := range fields {
		data[field] = snapshot[field]
	}

	return &dto.MerchantResourceResponse{Resource: resource, Data: data}, nil
}

func (s *merchantService) menuResource(ctx context.Context, merchantId uuid.UUID) (*dto.MerchantResourceResponse, error) {
	items, err := s.menuRepo.FindAllByMerchantId(ctx, merchantId)
	if err != nil {
		return nil, err
	}

	menu := make([]dto.MenuItemDTO, 0, len(items))
	for _, item := range items {
		addOns := make([]dto.AddOnDTO, 0, len(item.AddOns))
		for _, addOn := range item.AddOns {
			addOns = append(addOns, dto.AddOnDTO{Name: addOn.Name, Price: addOn.Price})
		}
		menu = append(menu, dto.MenuItemDTO{
			Id:          item.Id.String(),
			Position:    item.Position,
			Name:        item.Name,
			Picture:     item.Picture,
			Price:       item.Price,
			Description: item.Description,
			Category:    item.Category,
			Disabled:    item.Disabled,
			AddOns:      addOns,
		})
	}

	return &dto.MerchantResourceResponse{
		Resource: "menu",
		Data:     map[string]any{"items": menu},
	}, nil
}

// fullProfile is cache-aside on Redis: the dashboard shell fetches it on
// every page mount, while the underlying row changes only through the review
// gate (which invalidates the key).
func (s *merchantService) fullProfile(ctx context.Context, merchantId uuid.UUID) (*dto.MerchantResourceResponse, error) {
	cacheKey := profileCacheKey(merchantId)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var data map[string]any
			if err := json.Unmarshal([]byte(cached), &data); err == nil {
				return &dto.MerchantResourceResponse{Resource: "full-profile", Data: data}, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn("MerchantService", "Profile cache read failed", map[string]interface{}{
				"error": err, "merchant_id": merchantId,
			})
		}
	}

	merchant, err := s.findMerchant(ctx, merchantId)
	if err != nil {
		return nil, err
	}

	snapshot := merchant.Snapshot()
	data := make(map[string]any, len(snapshot))
	for key, value := range snapshot {
		data[key] = value
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(data); err == nil {
			if err := s.rdb.Set(ctx, cacheKey, payload, profileCacheTTL).Err(); err != nil {
				s.logger.Warn("MerchantService", "Profile cache write failed", map[string]interface{}{
					"error": err, "merchant_id": merchantId,
				})
			}
		}
	}

	return &dto.MerchantResourceResponse{Resource: "full-profile", Data: data}, nil
}

func (s *merchantService) documents(ctx context.Context, merchantId uuid.UUID) (*dto.MerchantResourceResponse, error) {
	merchant, err := s.findMerchant(ctx, merchantId)
	if err != nil {
		return nil, err
	}

	// Uploaded verification documents live in object storage under the
	// merchant's id; the dashboard only needs stable public links.
	prefix := fmt.Sprintf("%s/%s", s.storageBaseURL, merchant.Id)
	links := []dto.DocumentLinkDTO{
		{Name: "Business Registration (SSM)", Url: prefix + "/business-registration.pdf"},
		{Name: "Owner Identification", Url: prefix + "/owner-id.png"},
		{Name: "Bank Statement", Url: prefix + "/bank-statement.pdf"},
	}

	return &dto.MerchantResourceResponse{
		Resource: "documents",
		Data:     map[string]any{"documents": links},
	}, nil
}

// InvalidateProfile drops the cached full profile after a write. Best-effort:
// the TTL bounds staleness if Redis is unreachable.
func (s *merchantService) InvalidateProfile(ctx context.Context, merchantId uuid.UUID) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, profileCacheKey(merchantId)).Err(); err != nil {
		s.logger.Warn("MerchantService", "Profile cache invalidation failed", map[string]interface{}{
			"error": err, "merchant_id": merchantId,
		})
	}
}

func (s *merchantService) findMerchant(ctx context.Context, merchantId uuid.UUID) (*entity.Merchant, error) {
	merchant, err := s.merchantRepo.FindById(ctx, merchantId)
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, serverutils.NewApiError(fiber.StatusNotFound, "Merchant not found")
	}
	return merchant, nil
}

func profileCacheKey(merchantId uuid.UUID) string {
	return "merchant:profile:" + merchantId.String()
}
