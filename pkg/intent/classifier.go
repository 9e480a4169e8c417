package intent

import (
	"regexp"
	"strings"
)

// Verdict is the routing decision for a free-text message.
type Verdict int

const (
	// VerdictDataChange routes the message to the extraction pipeline.
	VerdictDataChange Verdict = iota
	// VerdictQuestion routes the message to the conversational reply path,
	// skipping the extraction call entirely.
	VerdictQuestion
)

type rule struct {
	pattern *regexp.Regexp
	verdict Verdict
}

// Rules are evaluated top to bottom; the first match wins. Order matters:
// conversational openers come first so greetings never trigger extraction,
// then explicit data-change phrasings so "update my business name to 'X'?"
// is still a change request despite the trailing question mark, then the
// interrogative shapes.
var rules = []rule{
	// Conversational openers and small talk.
	{regexp.MustCompile(`^(hi|hello|hey|yo|howdy)`), VerdictQuestion},
	{regexp.MustCompile(`^how are you`), VerdictQuestion},
	{regexp.MustCompile(`^what's up`), VerdictQuestion},
	{regexp.MustCompile(`^good (morning|afternoon|evening)`), VerdictQuestion},

	// Explicit data-change intents. These short-circuit before the
	// interrogative checks below and win ties.
	{regexp.MustCompile(`^(update|change|set|modify|edit)\s+my`), VerdictDataChange},
	{regexp.MustCompile(`^i\s+want\s+to\s+(update|change|set|modify|edit)`), VerdictDataChange},
	{regexp.MustCompile(`^please\s+(update|change|set|modify|edit)`), VerdictDataChange},
	{regexp.MustCompile(`^make\s+my`), VerdictDataChange},
	{regexp.MustCompile(`to\s+["'].*["']`), VerdictDataChange},

	// Interrogative sentence shapes.
	{regexp.MustCompile(`^how\s+(do|can|to|should)`), VerdictQuestion},
	{regexp.MustCompile(`^what\s+(is|are|does|can|should)`), VerdictQuestion},
	{regexp.MustCompile(`^where\s+(is|are|can|do)`), VerdictQuestion},
	{regexp.MustCompile(`^when\s+(is|should|can|do)`), VerdictQuestion},
	{regexp.MustCompile(`^why\s+(is|are|do|should)`), VerdictQuestion},
	{regexp.MustCompile(`^who\s+(is|are|can|should)`), VerdictQuestion},
	{regexp.MustCompile(`^which\s+(is|are|can|should)`), VerdictQuestion},
	{regexp.MustCompile(`^can\s+i`), VerdictQuestion},
	{regexp.MustCompile(`^could\s+i`), VerdictQuestion},
	{regexp.MustCompile(`^should\s+i`), VerdictQuestion},
	{regexp.MustCompile(`^do\s+i\s+need`), VerdictQuestion},
	{regexp.MustCompile(`^is\s+it\s+possible`), VerdictQuestion},
	{regexp.MustCompile(`^is\s+there`), VerdictQuestion},
	{regexp.MustCompile(`\?$`), VerdictQuestion},
}

// Classify decides whether a message is conversational or a data-change
// request. Anything matching no rule defaults to a data-change so the
// extraction pipeline gets a chance to find actionable fields; the pipeline
// itself degrades to conversation when nothing is extracted.
func Classify(message string) Verdict {
	normalized := strings.ToLower(strings.TrimSpace(message))

	for _, r := range rules {
		if r.pattern.MatchString(normalized) {
			return r.verdict
		}
	}
	return VerdictDataChange
}

// IsQuestion is a convenience wrapper for callers that only branch once.
func IsQuestion(message string) bool {
	return Classify(message) == VerdictQuestion
}
