package transcription

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 60 * time.Second

// Error reports a failed transcription attempt, carrying the remote
// response body as the diagnostic when one was received.
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transcription service returned %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("transcription request failed: %s", e.Body)
}

// Config holds the ASR service connection settings
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client calls the external speech recognition service. One attempt per
// call; retrying a failed file is a future run's concern.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new transcription client
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type transcribeRequest struct {
	AudioBytes string `json:"audio_bytes"` // base64 encoded audio data
	Filename   string `json:"filename"`
}

type transcribeResponse struct {
	Transcription *string `json:"transcription"`
}

// Transcribe base64-encodes the audio payload and posts it to the ASR
// service, returning the recognized text.
func (c *Client) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	payload, err := json.Marshal(transcribeRequest{
		AudioBytes: base64.StdEncoding.EncodeToString(audio),
		Filename:   filename,
	})
	if err != nil {
		return "", &Error{Body: fmt.Sprintf("failed to encode request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transcribe", bytes.NewReader(payload))
	if err != nil {
		return "", &Error{Body: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &Error{Body: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{StatusCode: resp.StatusCode, Body: fmt.Sprintf("failed to read response: %v", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &Error{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result transcribeResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", &Error{StatusCode: resp.StatusCode, Body: fmt.Sprintf("invalid response: %v", err)}
	}
	if result.Transcription == nil {
		return "", &Error{StatusCode: resp.StatusCode, Body: "response missing transcription field"}
	}

	return *result.Transcription, nil
}
