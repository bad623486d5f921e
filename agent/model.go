package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// ErrMissingAPIKey is returned when no Gemini API key is configured.
var ErrMissingAPIKey = errors.New("missing Gemini API key, set GEMINI_API_KEY")

// Model answers a single prompt under a system instruction.
type Model interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// Gemini is a Model backed by the Gemini API.
type Gemini struct {
	Client      *genai.Client
	Name        string
	Temperature float32
}

// NewClient creates a Gemini API client.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create genai client: %w", err)
	}
	return client, nil
}

// NewGemini returns a Model on the named Gemini model, DefaultModel if name is empty.
func NewGemini(ctx context.Context, apiKey, name string) (*Gemini, error) {
	client, err := NewClient(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = DefaultModel
	}
	return &Gemini{Client: client, Name: name, Temperature: 0.5}, nil
}

func (g *Gemini) Generate(ctx context.Context, system, prompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(g.Temperature),
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
	}
	resp, err := g.Client.Models.GenerateContent(ctx, g.Name, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("empty response from model %s", g.Name)
	}
	return text, nil
}
