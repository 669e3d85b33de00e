package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/2beens/fitadapt/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const DefaultTemperature = 0.8

var (
	ErrMisconfigured     = errors.New("OpenAI API key not configured")
	ErrUnavailable       = errors.New("completion request failed")
	ErrMalformedResponse = errors.New("malformed completion response")
)

type Request struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// APIError carries the upstream payload verbatim.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return "OpenAI API error: " + e.Body
}

func (e *APIError) Unwrap() error {
	return ErrUnavailable
}

// Client talks to an OpenAI compatible chat completions endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, model string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: httpClient,
	}
}

// Complete sends one chat completion request and returns the trimmed content of the first choice.
func (c *Client) Complete(ctx context.Context, req Request) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "completion.complete")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(
		attribute.String("model", c.model),
		attribute.Int("max_tokens", req.MaxTokens),
	)

	if c.apiKey == "" {
		return "", ErrMisconfigured
	}

	reqBody, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %s", ErrUnavailable, err)
	}

	span.SetAttributes(attribute.Int("status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Errorf("completion service returned %d: %s", resp.StatusCode, respBytes)
		return "", &APIError{
			StatusCode: resp.StatusCode,
			Body:       string(respBytes),
		}
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBytes, &chatResp); err != nil {
		return "", fmt.Errorf("%w: %s", ErrMalformedResponse, err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", ErrMalformedResponse)
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}
