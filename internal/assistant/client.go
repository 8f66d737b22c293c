// Package assistant talks to a local Ollama instance for CV writing help:
// improvement suggestions for an existing record and free-form guidance.
// Everything degrades gracefully; the builder works fully without it.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cvmaker/internal/config"
	"cvmaker/internal/cv"
	"cvmaker/internal/locale"
)

// ImprovementType selects what aspect of the CV the suggestion targets.
type ImprovementType string

const (
	ImproveContent      ImprovementType = "content"
	ImproveStructure    ImprovementType = "structure"
	ImproveLanguage     ImprovementType = "language"
	ImproveProfessional ImprovementType = "professional"
)

// ValidImprovementType reports whether the value is one of the known kinds.
func ValidImprovementType(t ImprovementType) bool {
	switch t {
	case ImproveContent, ImproveStructure, ImproveLanguage, ImproveProfessional:
		return true
	}
	return false
}

var systemPrompts = map[string]string{
	locale.Latvian: "Tu esi profesionāls CV padomdevējs, kas palīdz izveidot kvalitatīvus CV latviešu valodā. Atbildi tikai latviešu valodā.",
	locale.Russian: "Ты профессиональный консультант по составлению резюме, который помогает создавать качественные резюме на русском языке. Отвечай только на русском языке.",
	locale.English: "You are a professional CV consultant who helps create quality CVs in English. Respond only in English.",
}

var languageNames = map[string]string{
	locale.Latvian: "Latvian",
	locale.Russian: "Russian",
	locale.English: "English",
}

// Client is a thin Ollama /api/generate client.
type Client struct {
	endpoint string
	model    string
	http     *http.Client
}

func NewClient(cfg config.AssistantConfig) *Client {
	return &Client{
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		model:    cfg.Model,
		http:     &http.Client{Timeout: cfg.Timeout},
	}
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	System  string          `json:"system"`
	Options generateOptions `json:"options"`
	Stream  bool            `json:"stream"`
}

// Sampling parameters sized for small local models.
type generateOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	NumPredict  int     `json:"num_predict"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Generate sends one prompt and returns the model's full response text.
func (c *Client) Generate(ctx context.Context, prompt, tag string) (string, error) {
	tag = locale.Normalize(tag)
	body, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		System: systemPrompts[tag],
		Options: generateOptions{
			Temperature: 0.7,
			TopP:        0.9,
			NumPredict:  512,
		},
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("call assistant: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant returned status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode assistant response: %w", err)
	}
	return parsed.Response, nil
}

// SuggestImprovements asks for targeted feedback on an existing record.
func (c *Client) SuggestImprovements(ctx context.Context, record *cv.CVRecord, kind ImprovementType, feedback, tag string) (string, error) {
	tag = locale.Normalize(tag)
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal record: %w", err)
	}

	var focus string
	switch kind {
	case ImproveStructure:
		focus = "Focus on logical flow, section ordering, information hierarchy and professional presentation."
	case ImproveLanguage:
		focus = "Focus on grammar, spelling, professional terminology and a consistent language style."
	case ImproveProfessional:
		focus = "Focus on industry best practices, ATS optimization and market expectations."
	default:
		focus = "Focus on making descriptions more impactful, adding quantifiable achievements and improving professional language."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Analyze this CV and suggest improvements in %s:\n\nCV Data: %s\n\n%s\n", languageNames[tag], data, focus)
	if feedback = strings.TrimSpace(feedback); feedback != "" {
		fmt.Fprintf(&sb, "\nSpecific feedback requested: %s\n", feedback)
	}
	return c.Generate(ctx, sb.String(), tag)
}

// Healthy reports whether the Ollama instance answers its version endpoint.
func (c *Client) Healthy(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/api/version", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()
	return resp.StatusCode == http.StatusOK
}
