package stylist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"Wardrobe/app/common/llmjson"
)

const (
	ProviderGemini = "gemini"
	ProviderArk    = "ark"

	DefaultGeminiModel = "gemini-2.5-flash"
)

var ErrEmptyImage = errors.New("stylist: image is empty")

// Analyzer wraps the vision and language model calls the wardrobe needs.
type Analyzer interface {
	// Describe returns the model's description of the clothing in image.
	Describe(ctx context.Context, image []byte, mimeType string) (*Analysis, error)
	// Suggest sends a fully built prompt and returns the raw model text.
	Suggest(ctx context.Context, prompt string) (string, error)
}

// Analysis is a description as the model returned it. Parsed holds the JSON
// object embedded in Raw, if there is one.
type Analysis struct {
	Raw    string
	Parsed map[string]any
}

func newAnalysis(raw string) *Analysis {
	a := &Analysis{Raw: raw}
	if parsed, err := llmjson.Extract(raw); err == nil {
		a.Parsed = parsed
	}
	return a
}

type Conf struct {
	Provider string     `json:",default=gemini,options=gemini|ark"`
	Gemini   GeminiConf `json:",optional"`
	Ark      ArkConf    `json:",optional"`
}

type GeminiConf struct {
	APIKey string `json:",optional"`
	Model  string `json:",default=gemini-2.5-flash"`
}

type ArkConf struct {
	BaseUrl string `json:",optional"`
	APIKey  string `json:",optional"`
	Model   string `json:",optional"`
}

func NewAnalyzer(ctx context.Context, c Conf) (Analyzer, error) {
	switch strings.ToLower(c.Provider) {
	case "", ProviderGemini:
		return NewGeminiAnalyzer(ctx, c.Gemini)
	case ProviderArk:
		return NewArkAnalyzer(ctx, c.Ark)
	default:
		return nil, fmt.Errorf("stylist: unknown provider %q", c.Provider)
	}
}

func MustNewAnalyzer(ctx context.Context, c Conf) Analyzer {
	a, err := NewAnalyzer(ctx, c)
	if err != nil {
		panic(err)
	}
	return a
}
