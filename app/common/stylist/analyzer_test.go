package stylist

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeModels struct {
	reply    string
	err      error
	model    string
	contents []*genai.Content
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.contents = contents
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: genai.NewContentFromText(f.reply, genai.RoleModel)},
		},
	}, nil
}

type fakeChatModel struct {
	reply string
	err   error
	input []*schema.Message
}

func (f *fakeChatModel) Generate(_ context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	f.input = input
	if f.err != nil {
		return nil, f.err
	}
	return schema.AssistantMessage(f.reply, nil), nil
}

func (f *fakeChatModel) Stream(context.Context, []*schema.Message, ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not supported")
}

func TestGeminiDescribe(t *testing.T) {
	fm := &fakeModels{reply: "navy wool coat, formal, cold"}
	g := newGeminiAnalyzer(fm, "")

	a, err := g.Describe(context.Background(), []byte{0x89, 'P', 'N', 'G'}, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "navy wool coat, formal, cold", a.Raw)
	assert.Nil(t, a.Parsed)
	assert.Equal(t, DefaultGeminiModel, fm.model)

	require.Len(t, fm.contents, 1)
	parts := fm.contents[0].Parts
	require.Len(t, parts, 2)
	assert.Equal(t, DescribePrompt, parts[0].Text)
	require.NotNil(t, parts[1].InlineData)
	assert.Equal(t, "image/png", parts[1].InlineData.MIMEType)
}

func TestGeminiDescribeParsesEmbeddedJSON(t *testing.T) {
	fm := &fakeModels{reply: "```json\n{\"type\": \"jeans\"}\n```"}
	a, err := newGeminiAnalyzer(fm, "gemini-test").Describe(context.Background(), []byte("img"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"type": "jeans"}, a.Parsed)
	assert.Equal(t, "gemini-test", fm.model)
}

func TestGeminiErrors(t *testing.T) {
	g := newGeminiAnalyzer(&fakeModels{err: errors.New("quota")}, "")

	_, err := g.Describe(context.Background(), nil, "image/png")
	assert.ErrorIs(t, err, ErrEmptyImage)

	_, err = g.Suggest(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota")
}

func TestArkDescribeSendsDataURL(t *testing.T) {
	cm := &fakeChatModel{reply: "white sneakers"}
	a := newArkAnalyzer(cm)

	got, err := a.Describe(context.Background(), []byte("abc"), "image/gif")
	require.NoError(t, err)
	assert.Equal(t, "white sneakers", got.Raw)

	require.Len(t, cm.input, 1)
	parts := cm.input[0].MultiContent
	require.Len(t, parts, 2)
	assert.Equal(t, DescribePrompt, parts[0].Text)
	require.NotNil(t, parts[1].ImageURL)
	assert.Equal(t, "data:image/gif;base64,YWJj", parts[1].ImageURL.URL)
}

func TestArkSuggest(t *testing.T) {
	cm := &fakeChatModel{reply: `{"recommendations": []}`}
	out, err := newArkAnalyzer(cm).Suggest(context.Background(), "style me")
	require.NoError(t, err)
	assert.Equal(t, `{"recommendations": []}`, out)
	require.Len(t, cm.input, 1)
	assert.Equal(t, "style me", cm.input[0].Content)

	_, err = newArkAnalyzer(&fakeChatModel{err: errors.New("boom")}).Suggest(context.Background(), "x")
	assert.True(t, strings.HasPrefix(err.Error(), "stylist: ark generate"))
}

func TestNewAnalyzerConfig(t *testing.T) {
	_, err := NewAnalyzer(context.Background(), Conf{Provider: "openai"})
	assert.Error(t, err)

	_, err = NewAnalyzer(context.Background(), Conf{Provider: ProviderGemini})
	assert.Error(t, err)

	_, err = NewAnalyzer(context.Background(), Conf{Provider: ProviderArk, Ark: ArkConf{APIKey: "k"}})
	assert.Error(t, err)
}
