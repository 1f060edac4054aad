package advisor

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	chatModel      = "gemini-2.5-flash"
	imageModel     = "gemini-3-pro-image-preview"
)

// GeminiClient talks to the Gemini REST API. Every outbound call runs
// through a circuit breaker so a flapping upstream fails fast instead
// of tying up request handlers.
type GeminiClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*http.Response]
}

func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		breaker: gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
			Name:    "gemini",
			Timeout: 30 * time.Second,
		}),
	}
}

type geminiPart struct {
	Text       string `json:"text,omitempty"`
	InlineData *struct {
		MimeType string `json:"mimeType"`
		Data     string `json:"data"`
	} `json:"inlineData,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents          []geminiContent `json:"contents"`
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	GenerationConfig  map[string]any  `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Chat streams the model's reply, invoking onChunk for every text
// fragment as it arrives.
func (c *GeminiClient) Chat(ctx context.Context, systemInstruction string, history []Message, message string, onChunk func(text string)) error {
	contents := make([]geminiContent, 0, len(history)+1)
	for _, m := range history {
		contents = append(contents, geminiContent{
			Role:  m.Role,
			Parts: []geminiPart{{Text: m.Text}},
		})
	}
	contents = append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: message}},
	})

	req := geminiRequest{
		Contents: contents,
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemInstruction}},
		},
	}

	url := fmt.Sprintf("%s/models/%s:streamGenerateContent?key=%s", c.baseURL, chatModel, c.apiKey)
	resp, err := c.post(ctx, url, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// The streaming endpoint returns a JSON array whose elements
	// arrive incrementally; decode them one by one.
	dec := json.NewDecoder(resp.Body)
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%w: malformed stream: %v", ErrUnavailable, err)
	}
	for dec.More() {
		var chunk geminiResponse
		if err := dec.Decode(&chunk); err != nil {
			return fmt.Errorf("%w: malformed stream: %v", ErrUnavailable, err)
		}
		for _, cand := range chunk.Candidates {
			for _, part := range cand.Content.Parts {
				if part.Text != "" {
					onChunk(part.Text)
				}
			}
		}
	}

	return nil
}

// GenerateImage returns the decoded bytes of a single generated image.
func (c *GeminiClient) GenerateImage(ctx context.Context, prompt string, size Tier) ([]byte, error) {
	if !size.Valid() {
		return nil, fmt.Errorf("%w: unknown image size %q", ErrUnavailable, size)
	}

	req := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{{Text: prompt}},
		}},
		GenerationConfig: map[string]any{
			"imageConfig": map[string]any{
				"imageSize":   string(size),
				"aspectRatio": "1:1",
			},
		},
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, imageModel, c.apiKey)
	resp, err := c.post(ctx, url, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrUnavailable, err)
	}

	for _, cand := range parsed.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil {
				data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
				if err != nil {
					return nil, fmt.Errorf("%w: bad image payload: %v", ErrUnavailable, err)
				}
				return data, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: response contained no image", ErrUnavailable)
}

func (c *GeminiClient) post(ctx context.Context, url string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		httpReq.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusOK {
			defer resp.Body.Close()
			detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			switch resp.StatusCode {
			case http.StatusForbidden, http.StatusNotFound, http.StatusUnauthorized:
				return nil, fmt.Errorf("%w: %s", ErrInvalidCredential, detail)
			default:
				return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, detail)
			}
		}
		return resp, nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return nil, err
	}
	return resp, nil
}
