package store

import "merchant-dashboard-be/pkg/changeset"

// PendingNavigation tells the dashboard shell which page to route to so that
// page can pick up the staged change-set. Cleared together with the staged
// data, and independently consumable once navigation has fired so a page
// reload does not re-trigger the route.
type PendingNavigation struct {
	TargetPage string `json:"target_page"`
	Message    string `json:"message"`
}

// Staging is the single-slot mailbox carried across the navigation boundary:
// at most one pending change-set per dashboard session, plus its navigation
// target. Staging a new change-set always replaces the previous one whole;
// there is no merge.
type Staging struct {
	Data       *changeset.Set
	Navigation PendingNavigation
}
