package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"merchant-dashboard-be/internal/constant"
	"merchant-dashboard-be/internal/dto"
	"merchant-dashboard-be/internal/entity"
	"merchant-dashboard-be/internal/pkg/logger"
	"merchant-dashboard-be/internal/pkg/serverutils"
	"merchant-dashboard-be/internal/repository/contract"
	"merchant-dashboard-be/internal/repository/memory"
	"merchant-dashboard-be/pkg/changeset"
	"merchant-dashboard-be/pkg/events"
	"merchant-dashboard-be/pkg/genai"
	"merchant-dashboard-be/pkg/intent"
	"merchant-dashboard-be/pkg/schema"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// NavigationPusher delivers navigation offers to connected dashboard shells.
// Implemented by the websocket hub; nil-safe for headless deployments.
type NavigationPusher interface {
	PushNavigation(merchantId uuid.UUID, targetPage, message string)
}

type IAssistantService interface {
	Chat(ctx context.Context, sessionId string, req *dto.ChatRequest) (*dto.ChatResponse, error)
	Navigate(ctx context.Context, sessionId string, req *dto.NavigateRequest) (*dto.NavigateResponse, error)
	Dismiss(ctx context.Context, sessionId string) (*dto.ChatResponse, error)
}

// Response type discriminators the dashboard switches on.
const (
	ResponseTypeAnswer          = "answer"
	ResponseTypeNavigationOffer = "smart-navigation-offer"
	ResponseTypeNoAction        = "no-action"
)

// extractionConfidence is attached to every staged set. The completion API
// exposes no per-field confidence, so a single fixed score stands in for it.
const extractionConfidence = 0.95

type assistantService struct {
	extractor    *genai.Extractor
	merchantRepo contract.MerchantRepository
	menuRepo     contract.MenuRepository
	staging      *memory.StagingRepository
	review       *memory.ReviewRepository
	publisher    IPublisherService
	pusher       NavigationPusher
	logger       logger.ILogger

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewAssistantService(
	extractor *genai.Extractor,
	merchantRepo contract.MerchantRepository,
	menuRepo contract.MenuRepository,
	staging *memory.StagingRepository,
	review *memory.ReviewRepository,
	publisher IPublisherService,
	pusher NavigationPusher,
	log logger.ILogger,
) IAssistantService {
	return &assistantService{
		extractor:    extractor,
		merchantRepo: merchantRepo,
		menuRepo:     menuRepo,
		staging:      staging,
		review:       review,
		publisher:    publisher,
		pusher:       pusher,
		logger:       log,
		inFlight:     make(map[string]bool),
	}
}

// Chat is the single assistant entry point: free text, uploaded documents,
// or both. At most one Chat is processed per session at a time; a second
// request while one is running is rejected with a 409 instead of queueing,
// because the earlier result would silently overwrite the later staging.
func (s *assistantService) Chat(ctx context.Context, sessionId string, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	if !s.acquire(sessionId) {
		return nil, serverutils.NewApiError(fiber.StatusConflict, "A previous request is still being processed. Please wait for it to finish.")
	}
	defer s.release(sessionId)

	merchantId, err := uuid.Parse(req.MerchantId)
	if err != nil {
		return nil, serverutils.NewApiError(fiber.StatusBadRequest, "Invalid merchant id")
	}
	merchant, err := s.merchantRepo.FindById(ctx, merchantId)
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, serverutils.NewApiError(fiber.StatusNotFound, "Merchant not found")
	}

	if req.Document != nil {
		return s.handleDocument(ctx, sessionId, merchant, req)
	}
	return s.handleMessage(ctx, sessionId, merchant, req.Message)
}

func (s *assistantService) handleMessage(ctx context.Context, sessionId string, merchant *entity.Merchant, message string) (*dto.ChatResponse, error) {
	if intent.IsQuestion(message) {
		reply, err := s.extractor.Complete(ctx, fmt.Sprintf(constant.ConversationalPromptV1, message))
		if err != nil {
			s.logger.Error("AssistantService", "Conversational completion failed", map[string]interface{}{
				"error": err, "session_id": sessionId,
			})
			return answer(constant.MsgGenericFailure), nil
		}
		return answer(reply), nil
	}

	result, err := s.extractor.Extract(ctx, message, merchant.Snapshot())
	if err != nil {
		s.logger.Error("AssistantService", "Extraction call failed", map[string]interface{}{
			"error": err, "session_id": sessionId,
		})
		return answer(constant.MsgGenericFailure), nil
	}

	if !result.IsValidJSON || result.Category == schema.CategoryUnknown || len(result.Extracted) == 0 {
		return s.profileHelp(ctx, message), nil
	}

	return s.stageResult(ctx, sessionId, merchant, result, false)
}

func (s *assistantService) handleDocument(ctx context.Context, sessionId string, merchant *entity.Merchant, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	content := formatDocumentPayload(req)

	result, err := s.extractor.Extract(ctx, content, merchant.Snapshot())
	if err != nil {
		s.logger.Error("AssistantService", "Document extraction failed", map[string]interface{}{
			"error": err, "session_id": sessionId, "file_name": req.Document.FileName,
		})
		return answer(constant.MsgUnreadableFile), nil
	}

	if !result.IsValidJSON {
		s.logger.Warn("AssistantService", "Extraction response broke the output contract", map[string]interface{}{
			"session_id": sessionId, "raw": result.RawText,
		})
		return answer(constant.MsgMalformedExtraction), nil
	}
	if result.Category == schema.CategoryUnknown || len(result.Extracted) == 0 {
		return answer(constant.MsgNoActionableFileData), nil
	}

	return s.stageResult(ctx, sessionId, merchant, result, true)
}

// stageResult diffs the extraction against the live record, stages the
// change-set, and offers navigation. A diff with zero effective changes is
// reported as no-action rather than opening an empty review gate.
func (s *assistantService) stageResult(ctx context.Context, sessionId string, merchant *entity.Merchant, result *genai.Result, fromDocument bool) (*dto.ChatResponse, error) {
	changes, order, err := s.computeChanges(ctx, merchant, result)
	if err != nil {
		return nil, err
	}

	if len(changes) == 0 {
		if fromDocument {
			return &dto.ChatResponse{Type: ResponseTypeNoAction, Message: constant.MsgNoActionableFileData}, nil
		}
		return &dto.ChatResponse{Type: ResponseTypeNoAction, Message: constant.MsgNoActionableRequest}, nil
	}

	set := &changeset.Set{
		Category:   result.Category,
		Extracted:  result.Extracted,
		Changes:    changes,
		Order:      order,
		Confidence: extractionConfidence,
		CreatedAt:  time.Now(),
	}

	targetPage := schema.CategoryToPage(result.Category)
	s.staging.SetStaged(sessionId, set)
	s.staging.SetPendingNavigation(sessionId, targetPage, constant.MsgStagedForReview)
	s.review.Clear(sessionId) // new staging invalidates any open gate

	s.publishAudit(ctx, events.TypeDataExtracted, map[string]interface{}{
		"session_id":  sessionId,
		"merchant_id": merchant.Id,
		"category":    result.Category,
		"field_count": len(result.Extracted),
	})
	s.publishAudit(ctx, events.TypeChangesStaged, map[string]interface{}{
		"session_id":   sessionId,
		"merchant_id":  merchant.Id,
		"category":     result.Category,
		"change_count": len(changes),
		"target_page":  targetPage,
	})

	if s.pusher != nil {
		s.pusher.PushNavigation(merchant.Id, targetPage, constant.MsgStagedForReview)
	}

	return &dto.ChatResponse{
		Type:    ResponseTypeNavigationOffer,
		Message: constant.MsgStagedForReview,
		Navigation: &dto.NavOfferDTO{
			TargetPage:  targetPage,
			Category:    result.Category,
			ChangeCount: len(changes),
			Confidence:  extractionConfidence,
		},
	}, nil
}

// Navigate stages an extraction payload the dashboard already holds, for
// example when the user accepts an offer that was produced on an earlier
// page. The same diff rules as Chat apply.
func (s *assistantService) Navigate(ctx context.Context, sessionId string, req *dto.NavigateRequest) (*dto.NavigateResponse, error) {
	merchantId, err := uuid.Parse(req.MerchantId)
	if err != nil {
		return nil, serverutils.NewApiError(fiber.StatusBadRequest, "Invalid merchant id")
	}
	merchant, err := s.merchantRepo.FindById(ctx, merchantId)
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, serverutils.NewApiError(fiber.StatusNotFound, "Merchant not found")
	}

	result := &genai.Result{
		Category:    req.DataType,
		Extracted:   req.ExtractedData,
		Order:       req.Order,
		IsValidJSON: true,
	}

	resp, err := s.stageResult(ctx, sessionId, merchant, result, false)
	if err != nil {
		return nil, err
	}
	if resp.Type != ResponseTypeNavigationOffer {
		return nil, serverutils.NewApiError(fiber.StatusUnprocessableEntity, "No effective changes to stage")
	}

	return &dto.NavigateResponse{
		TargetPage: resp.Navigation.TargetPage,
		Message:    resp.Message,
	}, nil
}

// Dismiss drops the session's staged changes and pending navigation.
// Idempotent: dismissing an empty session is still a success.
func (s *assistantService) Dismiss(ctx context.Context, sessionId string) (*dto.ChatResponse, error) {
	if _, found := s.staging.Staged(sessionId); found {
		s.staging.ClearStaged(sessionId)
		s.review.Clear(sessionId)
		s.publishAudit(ctx, events.TypeChangesDiscarded, map[string]interface{}{
			"session_id": sessionId,
			"reason":     "dismissed",
		})
	}
	return answer(constant.MsgNavigationDismissed), nil
}

// computeChanges picks the diff strategy per category: profile categories
// diff against the whitelisted snapshot slice, the menu category resolves
// positional and bulk keys against the menu rows.
func (s *assistantService) computeChanges(ctx context.Context, merchant *entity.Merchant, result *genai.Result) (map[string]changeset.Change, []string, error) {
	if result.Category == schema.CategoryMenu {
		items, err := s.menuRepo.FindAllByMerchantId(ctx, merchant.Id)
		if err != nil {
			return nil, nil, err
		}
		changes, order := computeMenuChanges(items, result.Extracted, result.Order)
		return changes, order, nil
	}

	current := merchant.Snapshot()
	if fields := schema.FieldsFor(result.Category); fields != nil {
		scoped := make(map[string]string, len(fields))
		for _, field := range fields {
			scoped[field] = current[field]
		}
		current = scoped
	}

	changes, order := changeset.Compute(current, result.Extracted, result.Order)
	return changes, order, nil
}

// computeMenuChanges resolves extracted menu keys against the menu rows.
// Two key shapes are understood: BULK_{enable|disable}_{criteria}, expanded
// by the bulk matcher, and {index}_{field} addressing one item by its menu
// position.
func computeMenuChanges(items []*entity.MenuItem, extracted map[string]any, order []string) (map[string]changeset.Change, []string) {
	records := make([]changeset.MenuRecord, len(items))
	for i, item := range items {
		records[i] = changeset.MenuRecord{
			Name:        item.Name,
			Description: item.Description,
			Disabled:    item.Disabled,
		}
	}

	changes := make(map[string]changeset.Change)
	var changeOrder []string
	add := func(key string, change changeset.Change) {
		if _, dup := changes[key]; dup {
			return
		}
		changes[key] = change
		changeOrder = append(changeOrder, key)
	}

	for _, key := range menuKeyOrder(extracted, order) {
		if changeset.IsBulkKey(key) {
			bulkChanges, bulkOrder := changeset.ExpandBulk(key, records)
			for _, bulkKey := range bulkOrder {
				add(bulkKey, bulkChanges[bulkKey])
			}
			continue
		}

		index, field, ok := splitMenuKey(key)
		if !ok || index >= len(items) {
			continue
		}
		item := items[index]
		newValue := changeset.Stringify(extracted[key])
		if newValue == "" {
			continue
		}

		var oldValue string
		switch field {
		case "name":
			oldValue = item.Name
		case "price":
			oldValue = changeset.Stringify(item.Price)
		case "description":
			oldValue = item.Description
		case "disabled":
			oldValue = menuStatusLabel(item.Disabled)
			newValue = menuStatusLabel(parseBool(extracted[key]))
		default:
			continue
		}
		if newValue == oldValue {
			continue
		}

		label := fmt.Sprintf("%s - %s", item.Name, schema.FieldLabel(field))
		if field == "disabled" {
			label = fmt.Sprintf("%s - Status", item.Name)
		}
		add(key, changeset.Change{Field: label, Old: oldValue, New: newValue})
	}

	return changes, changeOrder
}

func menuKeyOrder(extracted map[string]any, order []string) []string {
	if len(order) > 0 {
		return order
	}
	keys := make([]string, 0, len(extracted))
	for key := range extracted {
		keys = append(keys, key)
	}
	return keys
}

func splitMenuKey(key string) (int, string, bool) {
	parts := strings.SplitN(key, "_", 2)
	if len(parts) != 2 {
		return 0, "", false
	}
	index, err := strconv.Atoi(parts[0])
	if err != nil || index < 0 {
		return 0, "", false
	}
	return index, parts[1], true
}

func parseBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		normalized := strings.ToLower(strings.TrimSpace(t))
		return normalized == "true" || normalized == changeset.StatusDisabled || normalized == "disabled" || normalized == "yes"
	default:
		return false
	}
}

func menuStatusLabel(disabled bool) string {
	if disabled {
		return changeset.StatusDisabled
	}
	return changeset.StatusEnabled
}

func (s *assistantService) profileHelp(ctx context.Context, message string) *dto.ChatResponse {
	reply, err := s.extractor.Complete(ctx, fmt.Sprintf(constant.ProfileHelpPromptV1, message))
	if err != nil {
		return answer(constant.MsgGenericFailure)
	}
	return answer(reply)
}

func (s *assistantService) publishAudit(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events.NewAuditEvent(eventType, data)); err != nil {
		s.logger.Warn("AssistantService", "Audit publish failed", map[string]interface{}{
			"error": err, "event_type": eventType,
		})
	}
}

func (s *assistantService) acquire(sessionId string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[sessionId] {
		return false
	}
	s.inFlight[sessionId] = true
	return true
}

func (s *assistantService) release(sessionId string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, sessionId)
}

func answer(message string) *dto.ChatResponse {
	return &dto.ChatResponse{Type: ResponseTypeAnswer, Message: message}
}

// formatDocumentPayload rebuilds the marker protocol the extraction client
// splits on. Binary uploads contribute the File/Base64 marker lines; text
// documents are inlined after the user's message.
func formatDocumentPayload(req *dto.ChatRequest) string {
	doc := req.Document
	var b strings.Builder
	if strings.TrimSpace(req.Message) != "" {
		b.WriteString(req.Message)
		b.WriteString("\n\n")
	}

	if doc.Data != "" {
		b.WriteString(fmt.Sprintf("%s%s (%s)\n", constant.DocumentFileMarker, doc.FileName, doc.MimeType))
		b.WriteString(fmt.Sprintf("%s %s\n", constant.DocumentBase64Marker, doc.Data))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Document %q:\n", doc.FileName))
	b.WriteString(doc.Text)
	return b.String()
}
