package gemini_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nasser0p/realestate/internal/contextkeys"
	"github.com/nasser0p/realestate/internal/core/domain"
	"github.com/nasser0p/realestate/internal/core/port"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// amenityHighlightLimit caps how many amenities go into the prompt so the
// generated copy stays focused on the strongest selling points.
const amenityHighlightLimit = 4

// GeminiDescriptionClient calls the Gemini generateContent API to produce a
// short marketing paragraph for a listing.
type GeminiDescriptionClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewGeminiDescriptionClient(apiKey, model string) (*GeminiDescriptionClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key cannot be empty")
	}
	if model == "" {
		return nil, fmt.Errorf("gemini model cannot be empty")
	}
	return &GeminiDescriptionClient{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate implements port.DescriptionGeneratorPort.
func (c *GeminiDescriptionClient) Generate(ctx context.Context, req domain.DescriptionRequest) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "GeminiDescriptionClient",
		"method":    "Generate",
		"model":     c.model,
	})

	reqBody, err := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: buildPrompt(req)}}}},
	})
	if err != nil {
		clientLogger.Error("Failed to marshal request body", err, nil)
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(reqBody))
	if err != nil {
		clientLogger.Error("Failed to create request object", err, nil)
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		httpReq.Header.Set("X-Trace-ID", traceID)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		clientLogger.Error("Failed to perform request to Gemini API", err, nil)
		return "", fmt.Errorf("failed to call gemini api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("gemini api returned non-200 status: %d, body: %s", resp.StatusCode, string(bodyBytes))
		clientLogger.Error("Received non-OK response from Gemini API", err, port.Fields{"status_code": resp.StatusCode})
		return "", err
	}

	var apiResp generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		clientLogger.Error("Failed to decode Gemini API response", err, nil)
		return "", fmt.Errorf("failed to decode gemini response: %w", err)
	}

	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		err := fmt.Errorf("gemini api returned no candidates")
		clientLogger.Error("Empty generation result", err, nil)
		return "", err
	}

	text := strings.TrimSpace(apiResp.Candidates[0].Content.Parts[0].Text)
	clientLogger.Debug("Description generated", port.Fields{"length": len(text)})
	return text, nil
}

func buildPrompt(req domain.DescriptionRequest) string {
	amenities := req.Amenities
	if len(amenities) > amenityHighlightLimit {
		amenities = amenities[:amenityHighlightLimit]
	}

	language := "English"
	if req.Language == domain.LanguageAR {
		language = "Arabic"
	}

	var b strings.Builder
	b.WriteString("You are a professional real estate copywriter. ")
	fmt.Fprintf(&b, "Write a compelling, concise property description in %s (2-3 sentences) for the following listing:\n", language)
	fmt.Fprintf(&b, "- Title: %s\n", req.Title)
	fmt.Fprintf(&b, "- Type: %s\n", req.Type)
	fmt.Fprintf(&b, "- Status: %s\n", req.Status)
	fmt.Fprintf(&b, "- City: %s\n", req.City)
	fmt.Fprintf(&b, "- Bedrooms: %d\n", req.Bedrooms)
	fmt.Fprintf(&b, "- Bathrooms: %d\n", req.Bathrooms)
	fmt.Fprintf(&b, "- Size: %.0f sqft\n", req.Size)
	fmt.Fprintf(&b, "- Price: %.0f\n", req.Price)
	if len(amenities) > 0 {
		fmt.Fprintf(&b, "- Key amenities: %s\n", strings.Join(amenities, ", "))
	}
	b.WriteString("Return only the description text, without headings or markdown.")
	return b.String()
}
