package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ukydev/wayfarer/internal/models"
)

// Client talks to the Gemini generateContent REST API. One instance is
// shared by the planner, the chat sessions and the country pages.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string

	itineraryModel string
	dealsModel     string
	chatModel      string
}

// Options configures a Client.
type Options struct {
	APIKey         string
	BaseURL        string
	ItineraryModel string
	DealsModel     string
	ChatModel      string
	Timeout        time.Duration
}

// NewClient creates a Gemini client. An empty BaseURL falls back to the
// public endpoint; tests point it at a local server.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if opts.Timeout == 0 {
		opts.Timeout = 60 * time.Second
	}
	return &Client{
		httpClient:     &http.Client{Timeout: opts.Timeout},
		baseURL:        strings.TrimRight(opts.BaseURL, "/"),
		apiKey:         opts.APIKey,
		itineraryModel: opts.ItineraryModel,
		dealsModel:     opts.DealsModel,
		chatModel:      opts.ChatModel,
	}
}

// Wire types for generateContent. Only the fields this service uses.

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type tool struct {
	GoogleSearch *struct{} `json:"google_search,omitempty"`
}

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
	Tools             []tool            `json:"tools,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
		GroundingMetadata *struct {
			GroundingChunks []models.GroundingSource `json:"groundingChunks"`
		} `json:"groundingMetadata,omitempty"`
	} `json:"candidates"`
}

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Code, e.Body)
}

// generate issues one generateContent call. No automatic retries: every
// retry in this product is user-initiated.
func (c *Client) generate(ctx context.Context, model string, body generateRequest) (*generateResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &httpStatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	log.WithFields(log.Fields{
		"model":      model,
		"latency_ms": time.Since(started).Milliseconds(),
	}).Debug("generateContent call completed")

	return &decoded, nil
}

// text returns the first candidate's concatenated text parts.
func (r *generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

func (r *generateResponse) sources() []models.GroundingSource {
	if len(r.Candidates) == 0 || r.Candidates[0].GroundingMetadata == nil {
		return nil
	}
	return r.Candidates[0].GroundingMetadata.GroundingChunks
}
