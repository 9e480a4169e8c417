package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"merchant-dashboard-be/internal/constant"
	"merchant-dashboard-be/internal/dto"
	"merchant-dashboard-be/internal/entity"
	"merchant-dashboard-be/internal/pkg/serverutils"
	"merchant-dashboard-be/internal/repository/memory"
	"merchant-dashboard-be/pkg/events"
	"merchant-dashboard-be/pkg/genai"
	"merchant-dashboard-be/pkg/schema"

	"github.com/google/uuid"
)

// --- shared fakes ---

type fakeMerchantRepo struct {
	merchant *entity.Merchant
	updated  *entity.Merchant
}

func (f *fakeMerchantRepo) FindById(ctx context.Context, id uuid.UUID) (*entity.Merchant, error) {
	if f.merchant == nil || f.merchant.Id != id {
		return nil, nil
	}
	return f.merchant, nil
}

func (f *fakeMerchantRepo) Update(ctx context.Context, merchant *entity.Merchant) error {
	f.updated = merchant
	return nil
}

type fakeMenuRepo struct {
	items   []*entity.MenuItem
	updated []*entity.MenuItem
}

func (f *fakeMenuRepo) FindAllByMerchantId(ctx context.Context, merchantId uuid.UUID) ([]*entity.MenuItem, error) {
	return f.items, nil
}

func (f *fakeMenuRepo) Update(ctx context.Context, item *entity.MenuItem) error {
	f.updated = append(f.updated, item)
	return nil
}

type fakeCompletion struct {
	mu       sync.Mutex
	response string
	err      error
	calls    int
	parts    [][]genai.Part
	block    chan struct{} // when set, GenerateContent waits until closed
}

func (f *fakeCompletion) GenerateContent(ctx context.Context, parts []genai.Part) (string, error) {
	f.mu.Lock()
	f.calls++
	f.parts = append(f.parts, parts)
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	return f.response, f.err
}

type fakePublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (f *fakePublisher) Publish(ctx context.Context, event events.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakePublisher) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.events))
	for i, e := range f.events {
		out[i] = e.EventType()
	}
	return out
}

type fakePusher struct {
	pages []string
}

func (f *fakePusher) PushNavigation(merchantId uuid.UUID, targetPage, message string) {
	f.pages = append(f.pages, targetPage)
}

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

type assistantFixture struct {
	service    IAssistantService
	merchant   *entity.Merchant
	completion *fakeCompletion
	staging    *memory.StagingRepository
	review     *memory.ReviewRepository
	publisher  *fakePublisher
	pusher     *fakePusher
	menuRepo   *fakeMenuRepo
}

func newAssistantFixture(completion *fakeCompletion) *assistantFixture {
	merchant := &entity.Merchant{
		Id:           uuid.New(),
		BusinessName: "Warung Lama",
		OwnerName:    "Aminah",
	}
	f := &assistantFixture{
		merchant:   merchant,
		completion: completion,
		staging:    memory.NewStagingRepository(),
		review:     memory.NewReviewRepository(),
		publisher:  &fakePublisher{},
		pusher:     &fakePusher{},
		menuRepo:   &fakeMenuRepo{},
	}
	f.service = NewAssistantService(
		genai.NewExtractor(completion),
		&fakeMerchantRepo{merchant: merchant},
		f.menuRepo,
		f.staging,
		f.review,
		f.publisher,
		f.pusher,
		noopLogger{},
	)
	return f
}

// --- tests ---

func TestChatDataChangeStagesForReview(t *testing.T) {
	completion := &fakeCompletion{
		response: `{"dataType":"Business Information","extractedData":{"businessName":"Warung Baru"}}`,
	}
	f := newAssistantFixture(completion)

	res, err := f.service.Chat(context.Background(), "session-1", &dto.ChatRequest{
		MerchantId: f.merchant.Id.String(),
		Message:    "update my business name to 'Warung Baru'",
	})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}

	if res.Type != ResponseTypeNavigationOffer {
		t.Fatalf("response type = %q, want %q", res.Type, ResponseTypeNavigationOffer)
	}
	if res.Navigation == nil || res.Navigation.TargetPage != schema.PageBusinessInfo {
		t.Errorf("navigation = %+v, want target %q", res.Navigation, schema.PageBusinessInfo)
	}
	if res.Navigation.ChangeCount != 1 {
		t.Errorf("change count = %d, want 1", res.Navigation.ChangeCount)
	}

	staged, found := f.staging.Staged("session-1")
	if !found {
		t.Fatal("expected staged change-set")
	}
	change, ok := staged.Changes["businessName"]
	if !ok {
		t.Fatalf("staged changes = %v, want businessName", staged.Changes)
	}
	if change.Old != "Warung Lama" || change.New != "Warung Baru" {
		t.Errorf("change = %+v", change)
	}

	types := f.publisher.types()
	if len(types) != 2 || types[0] != events.TypeDataExtracted || types[1] != events.TypeChangesStaged {
		t.Errorf("published events = %v", types)
	}
	if len(f.pusher.pages) != 1 || f.pusher.pages[0] != schema.PageBusinessInfo {
		t.Errorf("pushed pages = %v", f.pusher.pages)
	}
}

func TestChatQuestionSkipsExtraction(t *testing.T) {
	completion := &fakeCompletion{response: "You can edit it on the Business Information page."}
	f := newAssistantFixture(completion)

	res, err := f.service.Chat(context.Background(), "session-1", &dto.ChatRequest{
		MerchantId: f.merchant.Id.String(),
		Message:    "how do I update my business name?",
	})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}

	if res.Type != ResponseTypeAnswer {
		t.Errorf("response type = %q, want answer", res.Type)
	}
	if completion.calls != 1 {
		t.Errorf("completion calls = %d, want 1 (conversational only)", completion.calls)
	}
	if _, found := f.staging.Staged("session-1"); found {
		t.Error("question must not stage anything")
	}
	// The conversational prompt never carries the JSON contract.
	if strings.Contains(completion.parts[0][0].Text, "dataType") {
		t.Error("conversational prompt leaked the extraction contract")
	}
}

func TestChatSecondRequestWhileBusyConflicts(t *testing.T) {
	block := make(chan struct{})
	completion := &fakeCompletion{
		response: `{"dataType":"Unknown","extractedData":{}}`,
		block:    block,
	}
	f := newAssistantFixture(completion)
	req := &dto.ChatRequest{MerchantId: f.merchant.Id.String(), Message: "set my open time to 8am"}

	started := make(chan struct{})
	done := make(chan struct{})
	go func() {
		close(started)
		f.service.Chat(context.Background(), "session-1", req)
		close(done)
	}()
	<-started
	// Wait for the first request to reach the blocked completion call.
	for {
		completion.mu.Lock()
		calls := completion.calls
		completion.mu.Unlock()
		if calls > 0 {
			break
		}
		time.Sleep(time.Millisecond)
	}

	_, err := f.service.Chat(context.Background(), "session-1", req)
	var apiErr *serverutils.ApiError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 409 {
		t.Errorf("concurrent Chat() error = %v, want 409 ApiError", err)
	}

	close(block)
	<-done

	// A different session is not affected by the guard.
	if _, err := f.service.Chat(context.Background(), "session-2", req); err != nil {
		t.Errorf("other session Chat() error = %v", err)
	}
}

func TestChatBinaryDocumentSplitsAttachment(t *testing.T) {
	completion := &fakeCompletion{
		response: `{"dataType":"Business Information","extractedData":{"ssmNumber":"002312345-K"}}`,
	}
	f := newAssistantFixture(completion)

	res, err := f.service.Chat(context.Background(), "session-1", &dto.ChatRequest{
		MerchantId: f.merchant.Id.String(),
		Message:    "here is my certificate",
		Document: &dto.DocumentDTO{
			FileName: "ssm.jpg",
			MimeType: "image/jpeg",
			Data:     "aGVsbG8=",
		},
	})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if res.Type != ResponseTypeNavigationOffer {
		t.Fatalf("response type = %q", res.Type)
	}

	parts := completion.parts[0]
	if len(parts) != 2 {
		t.Fatalf("parts = %d, want text + inline attachment", len(parts))
	}
	if strings.Contains(parts[0].Text, "aGVsbG8=") {
		t.Error("base64 payload leaked into the text prompt")
	}
	if parts[1].InlineData == nil || parts[1].InlineData.MimeType != "image/jpeg" {
		t.Errorf("inline data = %+v", parts[1].InlineData)
	}
}

func TestChatMalformedExtractionDegrades(t *testing.T) {
	completion := &fakeCompletion{response: "I think the business name is Warung Baru"}
	f := newAssistantFixture(completion)

	res, err := f.service.Chat(context.Background(), "session-1", &dto.ChatRequest{
		MerchantId: f.merchant.Id.String(),
		Document:   &dto.DocumentDTO{FileName: "doc.txt", MimeType: "text/plain", Text: "business name Warung Baru"},
	})
	if err != nil {
		t.Fatalf("Chat() error = %v, contract violations must not be errors", err)
	}
	if res.Type != ResponseTypeAnswer {
		t.Errorf("response type = %q, want answer", res.Type)
	}
	if _, found := f.staging.Staged("session-1"); found {
		t.Error("malformed extraction must not stage anything")
	}
}

func TestChatTextRequestWithNoEffectiveChanges(t *testing.T) {
	// The extraction proposes the value the profile already has, so the
	// diff is empty. No file was uploaded, so the reply must not talk
	// about one.
	completion := &fakeCompletion{
		response: `{"dataType":"Business Information","extractedData":{"businessName":"Warung Lama"}}`,
	}
	f := newAssistantFixture(completion)

	res, err := f.service.Chat(context.Background(), "session-1", &dto.ChatRequest{
		MerchantId: f.merchant.Id.String(),
		Message:    "set my business name to Warung Lama",
	})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}

	if res.Type != ResponseTypeNoAction {
		t.Fatalf("response type = %q, want no-action", res.Type)
	}
	if res.Message != constant.MsgNoActionableRequest {
		t.Errorf("message = %q, want %q", res.Message, constant.MsgNoActionableRequest)
	}
	if strings.Contains(strings.ToLower(res.Message), "file") {
		t.Error("text-request guidance must not mention a file")
	}
	if _, found := f.staging.Staged("session-1"); found {
		t.Error("empty diff must not stage anything")
	}
}

func TestDismissClearsStagingAndAudits(t *testing.T) {
	completion := &fakeCompletion{
		response: `{"dataType":"Business Information","extractedData":{"businessName":"Warung Baru"}}`,
	}
	f := newAssistantFixture(completion)

	_, err := f.service.Chat(context.Background(), "session-1", &dto.ChatRequest{
		MerchantId: f.merchant.Id.String(),
		Message:    "change my business name to 'Warung Baru'",
	})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}

	res, err := f.service.Dismiss(context.Background(), "session-1")
	if err != nil {
		t.Fatalf("Dismiss() error = %v", err)
	}
	if res.Type != ResponseTypeAnswer {
		t.Errorf("response type = %q", res.Type)
	}
	if _, found := f.staging.Staged("session-1"); found {
		t.Error("dismiss must clear staging")
	}

	types := f.publisher.types()
	if types[len(types)-1] != events.TypeChangesDiscarded {
		t.Errorf("last event = %q, want %q", types[len(types)-1], events.TypeChangesDiscarded)
	}

	// Dismissing again is a no-op success without another audit event.
	before := len(f.publisher.types())
	if _, err := f.service.Dismiss(context.Background(), "session-1"); err != nil {
		t.Fatalf("second Dismiss() error = %v", err)
	}
	if len(f.publisher.types()) != before {
		t.Error("idempotent dismiss must not re-publish")
	}
}

func TestChatBulkMenuRequest(t *testing.T) {
	completion := &fakeCompletion{
		response: `{"dataType":"Food Menu","extractedData":{"BULK_disable_nasi":"true"}}`,
	}
	f := newAssistantFixture(completion)
	f.menuRepo.items = []*entity.MenuItem{
		{Name: "Nasi Lemak", Description: "Coconut rice", Disabled: false},
		{Name: "Teh Tarik", Description: "Milk tea", Disabled: false},
	}

	res, err := f.service.Chat(context.Background(), "session-1", &dto.ChatRequest{
		MerchantId: f.merchant.Id.String(),
		Message:    "please disable all nasi dishes",
	})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if res.Type != ResponseTypeNavigationOffer {
		t.Fatalf("response type = %q", res.Type)
	}
	if res.Navigation.TargetPage != schema.PageFoodMenu {
		t.Errorf("target = %q, want %q", res.Navigation.TargetPage, schema.PageFoodMenu)
	}

	staged, _ := f.staging.Staged("session-1")
	change, ok := staged.Changes["0_disabled"]
	if !ok {
		t.Fatalf("changes = %v, want 0_disabled", staged.Changes)
	}
	if change.Old != "Enabled" || change.New != "Disabled" {
		t.Errorf("change = %+v", change)
	}
	if _, ok := staged.Changes["1_disabled"]; ok {
		t.Error("non-matching item must not be touched")
	}
}
