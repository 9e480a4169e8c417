package memory

import (
	"time"

	"merchant-dashboard-be/pkg/changeset"
	"merchant-dashboard-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// StagingRepository holds each dashboard session's staging mailbox. Entries
// expire with the session TTL so an abandoned extraction never outlives the
// browser session it belonged to.
//
// All operations are last-write-wins; the UI drives a single interactive
// flow per session, so there is no concurrent-writer scenario to arbitrate
// beyond go-cache's own locking.
type StagingRepository struct {
	cache *cache.Cache
}

func NewStagingRepository() *StagingRepository {
	// Session-scoped state: expire after an hour, purge every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &StagingRepository{
		cache: c,
	}
}

// SetStaged replaces the session's staged change-set, keeping any pending
// navigation already set for the session.
func (r *StagingRepository) SetStaged(sessionID string, set *changeset.Set) {
	staging := r.get(sessionID)
	staging.Data = set
	r.cache.Set(sessionID, staging, cache.DefaultExpiration)
}

// SetPendingNavigation records where the shell should route next.
func (r *StagingRepository) SetPendingNavigation(sessionID, targetPage, message string) {
	staging := r.get(sessionID)
	staging.Navigation = store.PendingNavigation{
		TargetPage: targetPage,
		Message:    message,
	}
	r.cache.Set(sessionID, staging, cache.DefaultExpiration)
}

// Staged returns the session's pending change-set, if any.
func (r *StagingRepository) Staged(sessionID string) (*changeset.Set, bool) {
	staging := r.get(sessionID)
	if staging.Data == nil {
		return nil, false
	}
	return staging.Data, true
}

// Navigation returns the session's pending navigation target, if any.
func (r *StagingRepository) Navigation(sessionID string) (store.PendingNavigation, bool) {
	staging := r.get(sessionID)
	if staging.Navigation.TargetPage == "" {
		return store.PendingNavigation{}, false
	}
	return staging.Navigation, true
}

// ConsumeNavigation clears only the navigation target, leaving the staged
// data for the review gate. Prevents a consumed navigation from re-firing.
func (r *StagingRepository) ConsumeNavigation(sessionID string) (store.PendingNavigation, bool) {
	staging := r.get(sessionID)
	nav := staging.Navigation
	if nav.TargetPage == "" {
		return store.PendingNavigation{}, false
	}
	staging.Navigation = store.PendingNavigation{}
	r.cache.Set(sessionID, staging, cache.DefaultExpiration)
	return nav, true
}

// ClearStaged drops the whole mailbox: staged data and pending navigation
// go together.
func (r *StagingRepository) ClearStaged(sessionID string) {
	r.cache.Delete(sessionID)
}

func (r *StagingRepository) get(sessionID string) *store.Staging {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Staging)
	}
	return &store.Staging{}
}
