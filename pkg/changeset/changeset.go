package changeset

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"merchant-dashboard-be/pkg/schema"
)

// Change is a single proposed field update with display-ready values.
type Change struct {
	Field string `json:"field"` // human readable label
	Old   string `json:"old"`
	New   string `json:"new"`
}

// Set is a staged, categorized collection of proposed changes awaiting
// review. At most one Set exists per dashboard session at any time.
type Set struct {
	Category   string            `json:"data_type"`
	Extracted  map[string]any    `json:"extracted_data"`
	Changes    map[string]Change `json:"changes"`
	Order      []string          `json:"order"` // change keys in proposal order
	Confidence float64           `json:"confidence"`
	CreatedAt  time.Time         `json:"created_at"`
}

// Compute diffs proposed values against the current record snapshot and
// returns the changes keyed by field, plus the keys in proposal order.
//
// Rules:
//   - keys not present in current are silently ignored (unknown extracted
//     fields never error),
//   - empty proposed values are skipped,
//   - a change is never emitted when new == old.
//
// order lists the proposed keys in the order the model emitted them; keys
// missing from it are processed after the listed ones.
func Compute(current map[string]string, proposed map[string]any, order []string) (map[string]Change, []string) {
	changes := make(map[string]Change)
	var changeOrder []string

	for _, key := range orderedKeys(proposed, order) {
		oldValue, known := current[key]
		if !known {
			continue
		}
		newValue := Stringify(proposed[key])
		if newValue == "" || newValue == oldValue {
			continue
		}
		changes[key] = Change{
			Field: schema.FieldLabel(key),
			Old:   oldValue,
			New:   newValue,
		}
		changeOrder = append(changeOrder, key)
	}

	return changes, changeOrder
}

// Stringify renders an extracted value for comparison and display. Extracted
// payloads are decoded as map[string]any, so numbers arrive as float64.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

func orderedKeys(proposed map[string]any, order []string) []string {
	seen := make(map[string]bool, len(proposed))
	keys := make([]string, 0, len(proposed))
	for _, key := range order {
		if _, ok := proposed[key]; ok && !seen[key] {
			keys = append(keys, key)
			seen[key] = true
		}
	}
	var rest []string
	for key := range proposed {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest) // keep output deterministic for keys outside the proposal order
	return append(keys, rest...)
}
