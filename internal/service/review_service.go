package service

import (
	"context"
	"strconv"

	"merchant-dashboard-be/internal/dto"
	"merchant-dashboard-be/internal/pkg/logger"
	"merchant-dashboard-be/internal/pkg/serverutils"
	"merchant-dashboard-be/internal/repository/contract"
	"merchant-dashboard-be/internal/repository/memory"
	"merchant-dashboard-be/pkg/changeset"
	"merchant-dashboard-be/pkg/events"
	"merchant-dashboard-be/pkg/schema"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IReviewService interface {
	Open(ctx context.Context, sessionId string) (*dto.ReviewResponse, error)
	Toggle(ctx context.Context, sessionId, key string) (*dto.ReviewResponse, error)
	Apply(ctx context.Context, sessionId string, merchantId uuid.UUID) (*dto.ApplyResponse, error)
	Cancel(ctx context.Context, sessionId string) error
}

// reviewService runs the approval gate: staged changes are listed with
// per-field selection, and only the selected subset is ever written back.
// Nothing reaches the database without passing through Apply.
type reviewService struct {
	staging         *memory.StagingRepository
	review          *memory.ReviewRepository
	merchantRepo    contract.MerchantRepository
	menuRepo        contract.MenuRepository
	merchantService IMerchantService
	publisher       IPublisherService
	logger          logger.ILogger
}

func NewReviewService(
	staging *memory.StagingRepository,
	review *memory.ReviewRepository,
	merchantRepo contract.MerchantRepository,
	menuRepo contract.MenuRepository,
	merchantService IMerchantService,
	publisher IPublisherService,
	log logger.ILogger,
) IReviewService {
	return &reviewService{
		staging:         staging,
		review:          review,
		merchantRepo:    merchantRepo,
		menuRepo:        menuRepo,
		merchantService: merchantService,
		publisher:       publisher,
		logger:          log,
	}
}

// Open returns the session's staged changes for review. The first Open after
// staging initializes the selection (everything selected) and consumes the
// pending navigation; re-opening keeps existing toggles and returns no
// navigation, so a page refresh never resets the user's choices.
func (s *reviewService) Open(ctx context.Context, sessionId string) (*dto.ReviewResponse, error) {
	set, found := s.staging.Staged(sessionId)
	if !found {
		// Explicit empty state: the gate renders "nothing to review" rather
		// than erroring on a refresh after apply/cancel.
		return &dto.ReviewResponse{
			Changes: []dto.ReviewChangeDTO{},
			Message: "No changes awaiting review",
		}, nil
	}

	selection, found := s.review.Selection(sessionId)
	if !found {
		s.review.InitSelection(sessionId, set.Order)
		selection, _ = s.review.Selection(sessionId)
	}

	resp := s.buildResponse(set, selection)
	if nav, found := s.staging.ConsumeNavigation(sessionId); found {
		resp.Navigation = &dto.NavOfferDTO{
			TargetPage:  nav.TargetPage,
			Category:    set.Category,
			ChangeCount: len(set.Changes),
			Confidence:  set.Confidence,
		}
		resp.Message = nav.Message
	}

	return resp, nil
}

// Toggle flips one change's selection and returns the updated gate state.
func (s *reviewService) Toggle(ctx context.Context, sessionId, key string) (*dto.ReviewResponse, error) {
	set, err := s.staged(sessionId)
	if err != nil {
		return nil, err
	}

	if !s.review.Toggle(sessionId, key) {
		return nil, serverutils.NewApiError(fiber.StatusBadRequest, "Unknown change key")
	}

	selection, _ := s.review.Selection(sessionId)
	return s.buildResponse(set, selection), nil
}

// Apply persists the selected subset and closes the gate. At least one
// change must be selected; deselected changes are discarded with the rest of
// the staging, not kept for later.
func (s *reviewService) Apply(ctx context.Context, sessionId string, merchantId uuid.UUID) (*dto.ApplyResponse, error) {
	set, err := s.staged(sessionId)
	if err != nil {
		return nil, err
	}

	selection, found := s.review.Selection(sessionId)
	if !found {
		// Apply without a prior Open: treat everything as selected.
		s.review.InitSelection(sessionId, set.Order)
		selection, _ = s.review.Selection(sessionId)
	}

	var selectedKeys []string
	for _, key := range set.Order {
		if selection[key] {
			selectedKeys = append(selectedKeys, key)
		}
	}
	if len(selectedKeys) == 0 {
		return nil, serverutils.NewApiError(fiber.StatusBadRequest, "Select at least one change to apply")
	}

	if set.Category == schema.CategoryMenu {
		err = s.applyMenuChanges(ctx, merchantId, set, selectedKeys)
	} else {
		err = s.applyProfileChanges(ctx, merchantId, set, selectedKeys)
	}
	if err != nil {
		return nil, err
	}

	applied := make([]dto.ReviewChangeDTO, 0, len(selectedKeys))
	for _, key := range selectedKeys {
		change := set.Changes[key]
		applied = append(applied, dto.ReviewChangeDTO{
			Key:      key,
			Field:    change.Field,
			Old:      change.Old,
			New:      change.New,
			Selected: true,
		})
	}

	s.staging.ClearStaged(sessionId)
	s.review.Clear(sessionId)
	s.merchantService.InvalidateProfile(ctx, merchantId)

	s.publishAudit(ctx, events.TypeChangesApplied, map[string]interface{}{
		"session_id":    sessionId,
		"merchant_id":   merchantId,
		"category":      set.Category,
		"applied_count": len(applied),
	})

	return &dto.ApplyResponse{
		Applied: applied,
		Message: "Your changes have been saved.",
	}, nil
}

// Cancel discards the staged changes without writing anything. Idempotent.
func (s *reviewService) Cancel(ctx context.Context, sessionId string) error {
	if _, found := s.staging.Staged(sessionId); !found {
		return nil
	}
	s.staging.ClearStaged(sessionId)
	s.review.Clear(sessionId)
	s.publishAudit(ctx, events.TypeChangesDiscarded, map[string]interface{}{
		"session_id": sessionId,
		"reason":     "cancelled",
	})
	return nil
}

func (s *reviewService) applyProfileChanges(ctx context.Context, merchantId uuid.UUID, set *changeset.Set, keys []string) error {
	merchant, err := s.merchantRepo.FindById(ctx, merchantId)
	if err != nil {
		return err
	}
	if merchant == nil {
		return serverutils.NewApiError(fiber.StatusNotFound, "Merchant not found")
	}

	for _, key := range keys {
		change := set.Changes[key]
		if !merchant.ApplyField(key, change.New) {
			s.logger.Warn("ReviewService", "Staged change references unknown profile field", map[string]interface{}{
				"key": key, "merchant_id": merchantId,
			})
		}
	}

	return s.merchantRepo.Update(ctx, merchant)
}

func (s *reviewService) applyMenuChanges(ctx context.Context, merchantId uuid.UUID, set *changeset.Set, keys []string) error {
	items, err := s.menuRepo.FindAllByMerchantId(ctx, merchantId)
	if err != nil {
		return err
	}

	touched := make(map[int]bool)
	for _, key := range keys {
		index, field, ok := splitMenuKey(key)
		if !ok || index >= len(items) {
			s.logger.Warn("ReviewService", "Staged menu change references unknown item", map[string]interface{}{
				"key": key, "merchant_id": merchantId,
			})
			continue
		}

		change := set.Changes[key]
		item := items[index]
		switch field {
		case "name":
			item.Name = change.New
		case "description":
			item.Description = change.New
		case "price":
			price, err := strconv.ParseFloat(change.New, 64)
			if err != nil {
				continue
			}
			item.Price = price
		case "disabled":
			item.Disabled = change.New == changeset.StatusDisabled
		default:
			continue
		}
		touched[index] = true
	}

	for index := range touched {
		if err := s.menuRepo.Update(ctx, items[index]); err != nil {
			return err
		}
	}
	return nil
}

func (s *reviewService) buildResponse(set *changeset.Set, selection map[string]bool) *dto.ReviewResponse {
	changes := make([]dto.ReviewChangeDTO, 0, len(set.Order))
	for _, key := range set.Order {
		change := set.Changes[key]
		changes = append(changes, dto.ReviewChangeDTO{
			Key:      key,
			Field:    change.Field,
			Old:      change.Old,
			New:      change.New,
			Selected: selection[key],
		})
	}

	return &dto.ReviewResponse{
		Category:   set.Category,
		TargetPage: schema.CategoryToPage(set.Category),
		Confidence: set.Confidence,
		Changes:    changes,
	}
}

func (s *reviewService) staged(sessionId string) (*changeset.Set, error) {
	set, found := s.staging.Staged(sessionId)
	if !found {
		return nil, serverutils.NewApiError(fiber.StatusNotFound, "No changes awaiting review")
	}
	return set, nil
}

func (s *reviewService) publishAudit(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events.NewAuditEvent(eventType, data)); err != nil {
		s.logger.Warn("ReviewService", "Audit publish failed", map[string]interface{}{
			"error": err, "event_type": eventType,
		})
	}
}
