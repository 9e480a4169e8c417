package memory

import (
	"testing"
	"time"

	"merchant-dashboard-be/pkg/changeset"
	"merchant-dashboard-be/pkg/schema"
)

func testSet(name string) *changeset.Set {
	return &changeset.Set{
		Category:  schema.CategoryBusiness,
		Extracted: map[string]any{"businessName": name},
		Changes: map[string]changeset.Change{
			"businessName": {Field: "Business Name", Old: "Old", New: name},
		},
		Order:      []string{"businessName"},
		Confidence: 0.95,
		CreatedAt:  time.Now(),
	}
}

func TestStagingOverwriteAndClear(t *testing.T) {
	repo := NewStagingRepository()
	const session = "session-1"

	repo.SetStaged(session, testSet("A"))
	repo.SetStaged(session, testSet("B"))

	staged, found := repo.Staged(session)
	if !found {
		t.Fatal("expected staged data")
	}
	if staged.Changes["businessName"].New != "B" {
		t.Errorf("staged new = %q, want last write B", staged.Changes["businessName"].New)
	}

	repo.SetPendingNavigation(session, schema.PageBusinessInfo, "ready for review")
	repo.ClearStaged(session)

	if _, found := repo.Staged(session); found {
		t.Error("staged data should be gone after clear")
	}
	if _, found := repo.Navigation(session); found {
		t.Error("pending navigation should be cleared together with staged data")
	}
}

func TestStagingSessionsAreIsolated(t *testing.T) {
	repo := NewStagingRepository()

	repo.SetStaged("session-1", testSet("A"))

	if _, found := repo.Staged("session-2"); found {
		t.Error("session-2 must not see session-1 staging")
	}
}

func TestConsumeNavigation(t *testing.T) {
	repo := NewStagingRepository()
	const session = "session-1"

	repo.SetStaged(session, testSet("A"))
	repo.SetPendingNavigation(session, schema.PageBankInfo, "go")

	nav, found := repo.ConsumeNavigation(session)
	if !found {
		t.Fatal("expected navigation")
	}
	if nav.TargetPage != schema.PageBankInfo {
		t.Errorf("target = %q", nav.TargetPage)
	}

	// Consumed navigation does not re-fire, but staged data survives.
	if _, found := repo.ConsumeNavigation(session); found {
		t.Error("navigation should fire once")
	}
	if _, found := repo.Staged(session); !found {
		t.Error("staged data must survive navigation consumption")
	}
}

func TestReviewSelection(t *testing.T) {
	repo := NewReviewRepository()
	const session = "session-1"

	repo.InitSelection(session, []string{"a", "b"})

	selection, found := repo.Selection(session)
	if !found {
		t.Fatal("expected selection")
	}
	if !selection["a"] || !selection["b"] {
		t.Errorf("all keys must start selected, got %v", selection)
	}

	if !repo.Toggle(session, "b") {
		t.Fatal("toggle failed")
	}
	selection, _ = repo.Selection(session)
	if selection["b"] {
		t.Error("b should be deselected")
	}
	if !selection["a"] {
		t.Error("toggling b must not affect a")
	}

	if repo.Toggle(session, "nope") {
		t.Error("unknown key must not toggle")
	}
	if repo.Toggle("other-session", "a") {
		t.Error("closed gate must not toggle")
	}

	repo.Clear(session)
	if _, found := repo.Selection(session); found {
		t.Error("selection should be discarded on clear")
	}
}
