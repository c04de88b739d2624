package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"server/internal/domain"
)

const geminiDefaultTimeout = 30 * time.Second

// GeminiOptions controls how the Gemini client is configured.
type GeminiOptions struct {
	APIKey     string
	Model      string
	ImageModel string
	BaseURL    string
	HTTPClient *http.Client
	// Fallback handles requests when the remote call fails or no API key is
	// configured. Usually the static generator.
	Fallback Generator
}

// Gemini implements Generator against the Gemini REST API.
type Gemini struct {
	apiKey     string
	model      string
	imageModel string
	baseURL    string
	client     *http.Client
	fallback   Generator
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiGenerationConfig struct {
	Temperature      float64 `json:"temperature,omitempty"`
	CandidateCount   int     `json:"candidateCount,omitempty"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// NewGemini builds a Gemini-backed generator.
func NewGemini(opts GeminiOptions) (*Gemini, error) {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = "gemini-1.5-flash"
	}
	imageModel := strings.TrimSpace(opts.ImageModel)
	if imageModel == "" {
		imageModel = "gemini-2.5-flash-image"
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: geminiDefaultTimeout}
	}
	return &Gemini{
		apiKey:     opts.APIKey,
		model:      model,
		imageModel: imageModel,
		baseURL:    baseURL,
		client:     client,
		fallback:   opts.Fallback,
	}, nil
}

func (g *Gemini) GenerateStrategy(ctx context.Context, brief domain.ProjectBrief) (*domain.Strategy, error) {
	var out domain.Strategy
	if err := g.generateJSON(ctx, buildStrategyPrompt(brief), 0.5, &out); err != nil {
		if g.fallback != nil {
			return g.fallback.GenerateStrategy(ctx, brief)
		}
		return nil, err
	}
	return &out, nil
}

func (g *Gemini) GenerateScript(ctx context.Context, idea domain.ContentIdea, brief domain.ProjectBrief) (*domain.Script, error) {
	var out domain.Script
	if err := g.generateJSON(ctx, buildScriptPrompt(idea, brief), 0.6, &out); err != nil {
		if g.fallback != nil {
			return g.fallback.GenerateScript(ctx, idea, brief)
		}
		return nil, err
	}
	return &out, nil
}

func (g *Gemini) GenerateChannelIdentity(ctx context.Context, brief domain.ProjectBrief) (*domain.ChannelIdentity, error) {
	var out domain.ChannelIdentity
	if err := g.generateJSON(ctx, buildChannelPrompt(brief), 0.5, &out); err != nil {
		if g.fallback != nil {
			return g.fallback.GenerateChannelIdentity(ctx, brief)
		}
		return nil, err
	}
	return &out, nil
}

func (g *Gemini) GenerateThumbnail(ctx context.Context, prompt string) (*domain.Thumbnail, error) {
	thumb, err := g.generateImage(ctx, prompt)
	if err != nil {
		if g.fallback != nil {
			return g.fallback.GenerateThumbnail(ctx, prompt)
		}
		return nil, err
	}
	return thumb, nil
}

func (g *Gemini) generateJSON(ctx context.Context, prompt string, temperature float64, out any) error {
	if g.apiKey == "" {
		return fmt.Errorf("%w: gemini api key not configured", domain.ErrProviderFailure)
	}
	payload := geminiRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: prompt}},
		}},
		GenerationConfig: &geminiGenerationConfig{
			Temperature:      temperature,
			CandidateCount:   1,
			ResponseMimeType: "application/json",
		},
	}
	resp, err := g.invoke(ctx, g.model, payload)
	if err != nil {
		return err
	}
	text := extractText(resp)
	if text == "" {
		return fmt.Errorf("%w: empty gemini response", domain.ErrProviderFailure)
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("%w: decode gemini payload: %v", domain.ErrProviderFailure, err)
	}
	return nil
}

func (g *Gemini) generateImage(ctx context.Context, prompt string) (*domain.Thumbnail, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("%w: gemini api key not configured", domain.ErrProviderFailure)
	}
	payload := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{{Text: prompt}},
		}},
	}
	resp, err := g.invoke(ctx, g.imageModel, payload)
	if err != nil {
		return nil, err
	}
	for _, candidate := range resp.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				mime := part.InlineData.MimeType
				if mime == "" {
					mime = "image/png"
				}
				return &domain.Thumbnail{
					Mime:    mime,
					DataURL: fmt.Sprintf("data:%s;base64,%s", mime, part.InlineData.Data),
				}, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: gemini returned no image data", domain.ErrProviderFailure)
}

func (g *Gemini) invoke(ctx context.Context, model string, payload geminiRequest) (*geminiResponse, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return nil, fmt.Errorf("%w: encode request: %v", domain.ErrProviderFailure, err)
	}
	endpoint := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, url.PathEscape(model))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", domain.ErrProviderFailure, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		// Deadline expiry counts as a plain generation failure; the credit
		// deduction committed before the call stands either way.
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: gemini call timed out", domain.ErrProviderFailure)
		}
		return nil, fmt.Errorf("%w: gemini call: %v", domain.ErrProviderFailure, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: gemini status %d", domain.ErrProviderFailure, resp.StatusCode)
	}
	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrProviderFailure, err)
	}
	return &out, nil
}

func extractText(resp *geminiResponse) string {
	for _, candidate := range resp.Candidates {
		for _, part := range candidate.Content.Parts {
			if strings.TrimSpace(part.Text) != "" {
				return part.Text
			}
		}
	}
	return ""
}
