package stylist

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// ArkAnalyzer talks to any eino chat model; in production an Ark endpoint.
type ArkAnalyzer struct {
	chatModel model.BaseChatModel
}

func NewArkAnalyzer(ctx context.Context, c ArkConf) (*ArkAnalyzer, error) {
	if c.APIKey == "" || c.Model == "" {
		return nil, errors.New("stylist: ark api key and model are required")
	}

	cm, err := ark.NewChatModel(ctx, &ark.ChatModelConfig{
		BaseURL: c.BaseUrl,
		APIKey:  c.APIKey,
		Model:   c.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("stylist: init ark chat model: %w", err)
	}
	return newArkAnalyzer(cm), nil
}

func newArkAnalyzer(cm model.BaseChatModel) *ArkAnalyzer {
	return &ArkAnalyzer{chatModel: cm}
}

func (a *ArkAnalyzer) Describe(ctx context.Context, image []byte, mimeType string) (*Analysis, error) {
	if len(image) == 0 {
		return nil, ErrEmptyImage
	}

	msg := &schema.Message{
		Role: schema.User,
		MultiContent: []schema.ChatMessagePart{
			{
				Type: schema.ChatMessagePartTypeText,
				Text: DescribePrompt,
			},
			{
				Type: schema.ChatMessagePartTypeImageURL,
				ImageURL: &schema.ChatMessageImageURL{
					URL: dataURL(image, mimeType),
				},
			},
		},
	}

	text, err := a.generate(ctx, []*schema.Message{msg})
	if err != nil {
		return nil, err
	}
	return newAnalysis(text), nil
}

func (a *ArkAnalyzer) Suggest(ctx context.Context, prompt string) (string, error) {
	return a.generate(ctx, []*schema.Message{schema.UserMessage(prompt)})
}

func (a *ArkAnalyzer) generate(ctx context.Context, msgs []*schema.Message) (string, error) {
	out, err := a.chatModel.Generate(ctx, msgs)
	if err != nil {
		return "", fmt.Errorf("stylist: ark generate: %w", err)
	}
	if out == nil {
		return "", nil
	}
	return out.Content, nil
}

func dataURL(data []byte, mimeType string) string {
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
