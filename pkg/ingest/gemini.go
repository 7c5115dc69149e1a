// Package ingest turns free-form text and images into structured media
// entries via a generative-classification backend. A single attempt is
// made per call; any failure is terminal for that user action and the
// caller falls back to manual entry.
package ingest

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Copper-J/Worldtree/pkg/media"
)

const geminiAPI = "https://generativelanguage.googleapis.com/v1beta"

const defaultModel = "gemini-2.5-flash"

var (
	// ErrIngestion marks any failure of an AI extraction attempt.
	ErrIngestion = errors.New("ingest: analysis failed")

	// ErrInvalidResponse marks a backend reply that violates the entry
	// schema. It wraps ErrIngestion.
	ErrInvalidResponse = fmt.Errorf("%w: schema violation", ErrIngestion)
)

const systemInstruction = `You are a personal cultural archivist.
Your goal is to analyze the user's input (which could be a text review, a photo of a book cover, a movie poster, or a screenshot of a music player) and extract structured data for a personal media tracking log.

Classify the item into one of these types: 'Movie' (电影), 'TV' (电视剧), 'Book' (书籍), 'Music' (音乐).

If the input is just an image, infer the title and details from visual cues.
If the input is text, extract the user's feelings.

Return a JSON object.`

const defaultPrompt = "Analyze this item."

// Client calls the Gemini generateContent API.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// New creates a new Client. The model falls back to the default flash
// model when empty.
func New(apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("ingest: api key not configured")
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: geminiAPI,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

// Parse analyzes the prompt and optional inline image and returns a
// candidate entry. The result carries no id and no cover image; the
// caller assigns both. Any failure wraps ErrIngestion and the returned
// item must be discarded whole.
func (c *Client) Parse(ctx context.Context, prompt string, image []byte, mimeType string) (media.Item, error) {
	text, err := c.callAPI(ctx, prompt, image, mimeType)
	if err != nil {
		return media.Item{}, fmt.Errorf("%w: %v", ErrIngestion, err)
	}
	return parseResponse(text)
}

type apiRequest struct {
	SystemInstruction apiContent       `json:"system_instruction"`
	Contents          []apiContent     `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type apiContent struct {
	Parts []apiPart `json:"parts"`
}

type apiPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"response_mime_type"`
	ResponseSchema   json.RawMessage `json:"response_schema"`
}

// responseSchema constrains the backend to the entry shape minus id
// and cover image; every field is required.
var responseSchema = json.RawMessage(`{
  "type": "OBJECT",
  "properties": {
    "title": {"type": "STRING", "description": "The title of the work"},
    "type": {"type": "STRING", "enum": ["Movie", "TV", "Book", "Music"]},
    "date": {"type": "STRING", "description": "Date consumed in YYYY-MM-DD format. Use today if unknown."},
    "thoughts": {"type": "STRING", "description": "The user's thoughts or first impressions. If not provided, generate a brief interesting fact or summary."},
    "tags": {"type": "ARRAY", "items": {"type": "STRING"}, "description": "3-5 relevant tags (genre, mood, etc.)"},
    "rating": {"type": "NUMBER", "description": "Rating from 1 to 5"},
    "summary": {"type": "STRING", "description": "A one-sentence objective summary of the work."}
  },
  "required": ["title", "type", "thoughts", "rating", "summary", "date", "tags"]
}`)

type apiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *Client) callAPI(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	parts := make([]apiPart, 0, 2)
	if len(image) > 0 && mimeType != "" {
		parts = append(parts, apiPart{InlineData: &inlineData{
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(image),
		}})
	}
	if prompt == "" {
		prompt = defaultPrompt
	}
	parts = append(parts, apiPart{Text: prompt})

	reqBody := apiRequest{
		SystemInstruction: apiContent{Parts: []apiPart{{Text: systemInstruction}}},
		Contents:          []apiContent{{Parts: parts}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   responseSchema,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(body))
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if apiResp.Error != nil {
		return "", fmt.Errorf("api error: %s", apiResp.Error.Message)
	}

	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty response")
	}

	return apiResp.Candidates[0].Content.Parts[0].Text, nil
}

var requiredKeys = []string{"title", "type", "date", "thoughts", "tags", "rating", "summary"}

// parseResponse decodes the backend payload and checks the contract:
// every required key present, category inside the closed set, tags an
// array of strings, rating a number. Any deviation fails the call
// whole; a malformed result is never partially applied.
func parseResponse(payload string) (media.Item, error) {
	// Strip markdown code fences if the model wrapped its output.
	payload = strings.TrimSpace(payload)
	payload = strings.TrimPrefix(payload, "```json")
	payload = strings.TrimPrefix(payload, "```")
	payload = strings.TrimSuffix(payload, "```")
	payload = strings.TrimSpace(payload)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		return media.Item{}, fmt.Errorf("%w: not a JSON object: %v", ErrInvalidResponse, err)
	}

	for _, key := range requiredKeys {
		if _, ok := fields[key]; !ok {
			return media.Item{}, fmt.Errorf("%w: missing required key %q", ErrInvalidResponse, key)
		}
	}

	var item media.Item
	if err := json.Unmarshal(fields["title"], &item.Title); err != nil {
		return media.Item{}, fmt.Errorf("%w: title: %v", ErrInvalidResponse, err)
	}
	if err := json.Unmarshal(fields["type"], &item.Category); err != nil {
		return media.Item{}, fmt.Errorf("%w: type: %v", ErrInvalidResponse, err)
	}
	if !item.Category.Valid() {
		return media.Item{}, fmt.Errorf("%w: type %q outside the closed set", ErrInvalidResponse, item.Category)
	}
	if err := json.Unmarshal(fields["date"], &item.Date); err != nil {
		return media.Item{}, fmt.Errorf("%w: date: %v", ErrInvalidResponse, err)
	}
	if err := json.Unmarshal(fields["thoughts"], &item.Thoughts); err != nil {
		return media.Item{}, fmt.Errorf("%w: thoughts: %v", ErrInvalidResponse, err)
	}
	if err := json.Unmarshal(fields["tags"], &item.Tags); err != nil {
		return media.Item{}, fmt.Errorf("%w: tags: %v", ErrInvalidResponse, err)
	}
	var rating float64
	if err := json.Unmarshal(fields["rating"], &rating); err != nil {
		return media.Item{}, fmt.Errorf("%w: rating: %v", ErrInvalidResponse, err)
	}
	item.Rating = int(rating)
	if err := json.Unmarshal(fields["summary"], &item.Summary); err != nil {
		return media.Item{}, fmt.Errorf("%w: summary: %v", ErrInvalidResponse, err)
	}

	return item, nil
}
