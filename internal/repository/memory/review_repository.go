package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// ReviewRepository holds the review gate's transient selection state: one
// fieldKey -> selected map per session, alive only while the gate is open.
type ReviewRepository struct {
	cache *cache.Cache
}

func NewReviewRepository() *ReviewRepository {
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &ReviewRepository{
		cache: c,
	}
}

// InitSelection opens the gate: every change key starts selected.
func (r *ReviewRepository) InitSelection(sessionID string, keys []string) {
	selection := make(map[string]bool, len(keys))
	for _, key := range keys {
		selection[key] = true
	}
	r.cache.Set(sessionID, selection, cache.DefaultExpiration)
}

// Toggle flips a single key; other keys are untouched. Reports false when
// the gate is not open or the key is unknown.
func (r *ReviewRepository) Toggle(sessionID, key string) bool {
	selection, found := r.Selection(sessionID)
	if !found {
		return false
	}
	current, ok := selection[key]
	if !ok {
		return false
	}
	selection[key] = !current
	r.cache.Set(sessionID, selection, cache.DefaultExpiration)
	return true
}

// Selection returns the current selection map, if the gate is open.
func (r *ReviewRepository) Selection(sessionID string) (map[string]bool, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(map[string]bool), true
	}
	return nil, false
}

// Clear closes the gate and discards the selection.
func (r *ReviewRepository) Clear(sessionID string) {
	r.cache.Delete(sessionID)
}
