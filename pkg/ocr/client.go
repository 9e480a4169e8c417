package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client calls the external text-recognition service that turns a scanned
// document image into plain text. The service is a boundary collaborator;
// only its request/response shape is owned here.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

type recognizeResponse struct {
	Text string `json:"text"`
}

// Recognize submits raw image bytes and returns the recognized plain text.
func (c *Client) Recognize(ctx context.Context, imageBytes []byte, mimeType string) (string, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/recognize",
		bytes.NewReader(imageBytes),
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mimeType)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	var parsed recognizeResponse
	if err := json.Unmarshal(resBody, &parsed); err != nil {
		return "", err
	}
	return parsed.Text, nil
}
