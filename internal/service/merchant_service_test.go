package service

import (
	"context"
	"errors"
	"testing"

	"merchant-dashboard-be/internal/entity"
	"merchant-dashboard-be/internal/pkg/serverutils"

	"github.com/google/uuid"
)

func newMerchantFixture() (IMerchantService, *entity.Merchant, *fakeMenuRepo) {
	merchant := &entity.Merchant{
		Id:           uuid.New(),
		BusinessName: "Warung Sedap",
		SsmNumber:    "002312345-K",
		BankName:     "Maybank",
		OwnerName:    "Aminah",
	}
	menuRepo := &fakeMenuRepo{items: []*entity.MenuItem{
		{Id: uuid.New(), Position: 0, Name: "Nasi Lemak", Price: 12.5},
	}}
	svc := NewMerchantService(&fakeMerchantRepo{merchant: merchant}, menuRepo, nil, "http://storage.local/docs", noopLogger{})
	return svc, merchant, menuRepo
}

func TestGetResourcePageSlices(t *testing.T) {
	svc, merchant, _ := newMerchantFixture()

	res, err := svc.GetResource(context.Background(), merchant.Id, "business-info")
	if err != nil {
		t.Fatalf("GetResource() error = %v", err)
	}
	if res.Data["businessName"] != "Warung Sedap" || res.Data["ssmNumber"] != "002312345-K" {
		t.Errorf("data = %v", res.Data)
	}
	if _, leaked := res.Data["bankName"]; leaked {
		t.Error("bank fields must not leak into the business page")
	}

	bank, err := svc.GetResource(context.Background(), merchant.Id, "bank-info")
	if err != nil {
		t.Fatalf("GetResource() error = %v", err)
	}
	if bank.Data["bankName"] != "Maybank" {
		t.Errorf("bank data = %v", bank.Data)
	}
}

func TestGetResourceOwnerNameAndMenu(t *testing.T) {
	svc, merchant, _ := newMerchantFixture()

	owner, err := svc.GetResource(context.Background(), merchant.Id, "owner-name")
	if err != nil {
		t.Fatalf("GetResource() error = %v", err)
	}
	if owner.Data["ownerName"] != "Aminah" {
		t.Errorf("owner data = %v", owner.Data)
	}

	menu, err := svc.GetResource(context.Background(), merchant.Id, "menu")
	if err != nil {
		t.Fatalf("GetResource() error = %v", err)
	}
	if menu.Data["items"] == nil {
		t.Error("menu items missing")
	}
}

func TestGetResourceFullProfileWithoutCache(t *testing.T) {
	svc, merchant, _ := newMerchantFixture()

	res, err := svc.GetResource(context.Background(), merchant.Id, "full-profile")
	if err != nil {
		t.Fatalf("GetResource() error = %v", err)
	}
	if len(res.Data) != len(merchant.Snapshot()) {
		t.Errorf("full profile has %d fields, want %d", len(res.Data), len(merchant.Snapshot()))
	}
}

func TestGetResourceErrors(t *testing.T) {
	svc, merchant, _ := newMerchantFixture()

	_, err := svc.GetResource(context.Background(), merchant.Id, "no-such-page")
	var apiErr *serverutils.ApiError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 404 {
		t.Errorf("unknown resource error = %v, want 404", err)
	}

	_, err = svc.GetResource(context.Background(), uuid.New(), "business-info")
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 404 {
		t.Errorf("missing merchant error = %v, want 404", err)
	}
}
