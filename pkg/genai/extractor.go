package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"merchant-dashboard-be/internal/constant"
)

// Result is the normalized outcome of one extraction call.
//
// IsValidJSON=false is not an error: the model broke the output contract and
// the caller decides how to degrade (typically by treating the interaction
// as a conversational reply). Category "Unknown" with empty Extracted is the
// distinct no-actionable-data outcome.
type Result struct {
	Category    string
	Extracted   map[string]any
	Order       []string // extracted keys in the order the model emitted them
	RawText     string
	IsValidJSON bool
}

// Extractor shapes extraction requests against the completion model and
// enforces the two-key JSON response contract.
type Extractor struct {
	client CompletionClient
}

func NewExtractor(client CompletionClient) *Extractor {
	return &Extractor{client: client}
}

var (
	base64Pattern     = regexp.MustCompile(`Base64 Data:\s*([A-Za-z0-9+/=]+)`)
	mimePattern       = regexp.MustCompile(`File: .*\((.*)\)`)
	base64LinePattern = regexp.MustCompile(`Base64 Data:[\s\S]*?\n`)
	fileLinePattern   = regexp.MustCompile(`File: .*\n`)
)

// Extract runs one extraction call for a document or change request.
// documentContent may be plain text or the dashboard's structured upload
// payload carrying base64 binary data; the binary case is detected by
// marker, split into an inline attachment, and stripped from the text
// channel so the raw base64 never bloats the prompt.
//
// Exactly one outbound call is made; a transport or non-2xx failure is
// returned as an error, while a contract violation in the response body is
// reported via IsValidJSON=false.
func (e *Extractor) Extract(ctx context.Context, documentContent string, current map[string]string) (*Result, error) {
	currentJSON, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return nil, err
	}

	var parts []Part
	if strings.Contains(documentContent, constant.DocumentBase64Marker) {
		parts = e.visionParts(documentContent, string(currentJSON))
	} else {
		prompt := fmt.Sprintf(constant.ExtractionTextPromptV1, documentContent, string(currentJSON))
		parts = []Part{{Text: prompt}}
	}

	raw, err := e.client.GenerateContent(ctx, parts)
	if err != nil {
		return nil, err
	}

	return parseContract(raw), nil
}

// Complete sends a free-form prompt and returns the raw reply. Used for the
// conversational path, where no output contract applies.
func (e *Extractor) Complete(ctx context.Context, prompt string) (string, error) {
	return e.client.GenerateContent(ctx, []Part{{Text: prompt}})
}

func (e *Extractor) visionParts(documentContent, currentJSON string) []Part {
	base64Data := ""
	if m := base64Pattern.FindStringSubmatch(documentContent); m != nil {
		base64Data = m[1]
	}
	mimeType := "image/png"
	if m := mimePattern.FindStringSubmatch(documentContent); m != nil {
		mimeType = m[1]
	}

	// Strip the binary payload out of the text channel.
	stripped := base64LinePattern.ReplaceAllString(documentContent, "")
	stripped = fileLinePattern.ReplaceAllString(stripped, "")
	prompt := fmt.Sprintf(constant.ExtractionVisionPromptV1, stripped, currentJSON)

	if base64Data == "" {
		return []Part{{Text: prompt}}
	}
	return []Part{
		{Text: prompt},
		{InlineData: &InlineData{MimeType: mimeType, Data: base64Data}},
	}
}

// parseContract validates the two-key response shape. Both keys must be
// present; beyond that, "Unknown"/empty extractions are valid results.
func parseContract(raw string) *Result {
	cleaned := NormalizeJSONResponse(raw)

	var envelope struct {
		DataType      *string         `json:"dataType"`
		ExtractedData json.RawMessage `json:"extractedData"`
	}
	if err := json.Unmarshal([]byte(cleaned), &envelope); err != nil {
		return &Result{RawText: raw, IsValidJSON: false}
	}
	if envelope.DataType == nil || envelope.ExtractedData == nil {
		return &Result{RawText: raw, IsValidJSON: false}
	}

	var extracted map[string]any
	if err := json.Unmarshal(envelope.ExtractedData, &extracted); err != nil {
		return &Result{RawText: raw, IsValidJSON: false}
	}

	return &Result{
		Category:    *envelope.DataType,
		Extracted:   extracted,
		Order:       objectKeyOrder(envelope.ExtractedData),
		RawText:     cleaned,
		IsValidJSON: true,
	}
}
