package stylist

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type GeminiAnalyzer struct {
	models contentGenerator
	model  string
}

func NewGeminiAnalyzer(ctx context.Context, c GeminiConf) (*GeminiAnalyzer, error) {
	if c.APIKey == "" {
		return nil, errors.New("stylist: gemini api key is empty")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("stylist: create gemini client: %w", err)
	}

	return newGeminiAnalyzer(client.Models, c.Model), nil
}

func newGeminiAnalyzer(models contentGenerator, model string) *GeminiAnalyzer {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiAnalyzer{
		models: models,
		model:  model,
	}
}

func (g *GeminiAnalyzer) Describe(ctx context.Context, image []byte, mimeType string) (*Analysis, error) {
	if len(image) == 0 {
		return nil, ErrEmptyImage
	}

	content := genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromText(DescribePrompt),
		genai.NewPartFromBytes(image, mimeType),
	}, genai.RoleUser)

	text, err := g.generate(ctx, []*genai.Content{content})
	if err != nil {
		return nil, err
	}
	return newAnalysis(text), nil
}

func (g *GeminiAnalyzer) Suggest(ctx context.Context, prompt string) (string, error) {
	return g.generate(ctx, genai.Text(prompt))
}

func (g *GeminiAnalyzer) generate(ctx context.Context, contents []*genai.Content) (string, error) {
	result, err := g.models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("stylist: gemini generate: %w", err)
	}
	if result == nil {
		return "", nil
	}
	return result.Text(), nil
}
