package changeset

import (
	"fmt"
	"strings"
)

// MenuRecord is the slice of a menu item the bulk matcher needs.
type MenuRecord struct {
	Name        string
	Description string
	Disabled    bool
}

// Display labels for the menu disabled flag. The review gate shows these
// instead of raw booleans.
const (
	StatusEnabled  = "Enabled"
	StatusDisabled = "Disabled"
)

const bulkKeyPrefix = "BULK_"

// IsBulkKey reports whether an extracted key encodes a bulk menu operation
// of the shape BULK_{enable|disable}_{criteria}.
func IsBulkKey(key string) bool {
	return strings.HasPrefix(key, bulkKeyPrefix)
}

// ExpandBulk resolves a bulk operation key against the merchant's menu and
// returns one {index}_disabled change per matching item whose state would
// actually flip. Matching is intentionally forgiving of model phrasing
// drift: an item matches when its name+description contains the full
// normalized criteria phrase, or any individual word of it.
// Criteria "all" matches every item.
func ExpandBulk(key string, items []MenuRecord) (map[string]Change, []string) {
	parts := strings.Split(key, "_")
	if len(parts) < 3 {
		return nil, nil
	}
	operation := parts[1]
	if operation != "enable" && operation != "disable" {
		return nil, nil
	}
	criteria := strings.Join(parts[2:], "_")
	targetDisabled := operation == "disable"

	changes := make(map[string]Change)
	var order []string

	for index, item := range items {
		if !matches(item, criteria) {
			continue
		}
		if item.Disabled == targetDisabled {
			continue
		}
		changeKey := fmt.Sprintf("%d_disabled", index)
		changes[changeKey] = Change{
			Field: fmt.Sprintf("%s - Status", item.Name),
			Old:   statusLabel(item.Disabled),
			New:   statusLabel(targetDisabled),
		}
		order = append(order, changeKey)
	}

	return changes, order
}

func matches(item MenuRecord, criteria string) bool {
	if criteria == "all" {
		return true
	}

	searchText := strings.ToLower(item.Name + " " + item.Description)
	phrase := strings.ToLower(strings.ReplaceAll(criteria, "_", " "))

	if strings.Contains(searchText, phrase) {
		return true
	}

	// Word-level fallback: any criteria word present. The model pads
	// criteria with filler ("spicy_food" for an item tagged just "spicy"),
	// so requiring the full phrase or every word would skip the items the
	// user meant.
	for _, word := range strings.Fields(phrase) {
		if strings.Contains(searchText, word) {
			return true
		}
	}
	return false
}

func statusLabel(disabled bool) string {
	if disabled {
		return StatusDisabled
	}
	return StatusEnabled
}
