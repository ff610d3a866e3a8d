package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fonuzi/NutriTrack/models"
)

// Analysis failure classes. None of them is retried automatically: the
// current capture is abandoned and the user re-triggers it.
var (
	ErrInvalidImageData          = errors.New("invalid image data")
	ErrAnalysisUnavailable       = errors.New("analysis service unavailable")
	ErrEmptyAnalysisResponse     = errors.New("empty analysis response")
	ErrMalformedAnalysisResponse = errors.New("malformed analysis response")
)

const defaultBaseURL = "https://api.openai.com/v1"

const visionModel = "gpt-4o"

// systemPrompt is the de facto schema contract: there is no machine-enforced
// schema on the wire, which is why every response goes through CoerceAnalysis.
const systemPrompt = "You are a nutrition expert specialized in analyzing food images. " +
	"When shown a food image, identify all food items, estimate their portion sizes, and provide detailed nutritional information. " +
	"Respond with JSON in this format exactly: { " +
	"'name': String (overall meal name), " +
	"'calories': Number (total calories), " +
	"'protein': Number (total protein in grams), " +
	"'carbs': Number (total carbs in grams), " +
	"'fat': Number (total fat in grams), " +
	"'items': Array of { 'name': String, 'amount': String, 'calories': Number } " +
	"}"

// NormalizeImage strips the data-URI prefix from a captured or gallery image
// and returns the bare base64 payload. Bare base64 input passes through
// unchanged. An empty payload fails before any network call is made.
func NormalizeImage(raw string) (string, error) {
	payload := raw
	if strings.HasPrefix(payload, "data:") {
		if idx := strings.Index(payload, ","); idx >= 0 {
			payload = payload[idx+1:]
		} else {
			payload = ""
		}
	}
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return "", ErrInvalidImageData
	}
	return payload, nil
}

// VisionClient calls an OpenAI-compatible multimodal completion endpoint to
// estimate the nutrition of a food photo. Each call consumes upstream quota,
// so it is made at most once per user-initiated capture.
type VisionClient struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

func NewVisionClient(apiKey string) *VisionClient {
	return &VisionClient{
		APIKey:     apiKey,
		Model:      visionModel,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Configured reports whether an API key is present. Callers return a 500
// before spending a request when it is not.
func (c *VisionClient) Configured() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// AnalyzeFoodImage sends the base64 payload with the fixed instruction
// prompt, demands JSON-only output, and coerces whatever comes back into a
// fully populated FoodAnalysisResult.
func (c *VisionClient) AnalyzeFoodImage(ctx context.Context, base64Image string) (*models.FoodAnalysisResult, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	reqBody := map[string]any{
		"model": c.Model,
		"messages": []map[string]any{
			{
				"role":    "system",
				"content": systemPrompt,
			},
			{
				"role": "user",
				"content": []map[string]any{
					{"type": "text", "text": "What food is in this image? Provide nutritional details in JSON format."},
					{
						"type": "image_url",
						"image_url": map[string]any{
							"url": "data:image/jpeg;base64," + base64Image,
						},
					},
				},
			},
		},
		"response_format": map[string]any{"type": "json_object"},
		"max_tokens":      800,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal analysis payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create analysis request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrAnalysisUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrAnalysisUnavailable, resp.StatusCode, string(body))
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAnalysisResponse, err)
	}
	if len(completion.Choices) == 0 || strings.TrimSpace(completion.Choices[0].Message.Content) == "" {
		return nil, ErrEmptyAnalysisResponse
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(completion.Choices[0].Message.Content), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAnalysisResponse, err)
	}

	return CoerceAnalysis(raw), nil
}
