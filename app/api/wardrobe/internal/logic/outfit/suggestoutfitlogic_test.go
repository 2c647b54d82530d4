package logic

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"Wardrobe/app/api/wardrobe/internal/logic/helper"
	"Wardrobe/app/api/wardrobe/internal/mock"
	"Wardrobe/app/api/wardrobe/internal/svc"
	"Wardrobe/app/api/wardrobe/internal/types"
	"Wardrobe/app/common/consts/errno"
	"Wardrobe/app/common/weather"
	usermodel "Wardrobe/app/dal/user"
	wardrobemodel "Wardrobe/app/dal/wardrobe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/limit"
	"github.com/zeromicro/x/errors"
)

const stylistReply = "Here you go:\n```json\n" + `{
  "recommendations": [
    {"wardrobe_id": 1, "reason": "warm", "fallback_text": null},
    {"wardrobe_id": 3, "reason": "not yours"},
    {"wardrobe_id": "99", "reason": "missing"},
    {"wardrobe_id": null, "reason": "no shoes", "fallback_text": "white sneakers"}
  ],
  "notes": "keep it simple",
  "weather_considerations": "light layers"
}` + "\n```"

func codeOf(t *testing.T, err error) int {
	t.Helper()
	require.Error(t, err)
	cm, ok := err.(*errors.CodeMsg)
	require.True(t, ok, "unexpected error type %T", err)
	return cm.Code
}

func setup(t *testing.T) (*svc.ServiceContext, *mock.Deps, context.Context) {
	t.Helper()
	svcCtx, deps := mock.NewServiceContext(t)
	bg := context.Background()

	_, err := deps.Users.Insert(bg, &usermodel.Users{
		Email:  "u@example.com",
		Name:   "U",
		Gender: sql.NullString{String: "male", Valid: true},
	})
	require.NoError(t, err)
	_, err = deps.Users.Insert(bg, &usermodel.Users{Email: "v@example.com", Name: "V"})
	require.NoError(t, err)

	for _, it := range []wardrobemodel.WardrobeItems{
		{UserId: 1, Filename: "1.png", Description: "black wool coat"},
		{UserId: 1, Filename: "2.png", Description: "grey jeans"},
		{UserId: 2, Filename: "3.png", Description: "someone else's hat"},
	} {
		_, err := deps.Wardrobe.Insert(bg, &it)
		require.NoError(t, err)
	}

	temp := 21.5
	deps.Weather.Current = &weather.Current{
		Raw:         map[string]any{"name": "Paris"},
		Main:        "Clear",
		Description: "clear sky",
		Temp:        &temp,
	}
	deps.Analyzer.Reply = stylistReply

	return svcCtx, deps, mock.WithUser(bg, 1)
}

func newLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SuggestOutfitLogic {
	l := NewSuggestOutfitLogic(ctx, svcCtx)
	l.now = func() time.Time { return time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC) }
	return l
}

func TestSuggestOutfit(t *testing.T) {
	svcCtx, deps, ctx := setup(t)

	resp, err := newLogic(ctx, svcCtx).SuggestOutfit(&types.OutfitRequest{
		City:       "Paris",
		Hemisphere: "north",
		Units:      "metric",
		Date:       "2025-01-15",
	}, []helper.FilePart{
		{Filename: "top.png", Data: []byte("top")},
		{Filename: "notes.txt", Data: []byte("skip")},
		{Filename: "shoes.JPG", Data: []byte("shoes")},
	})
	require.NoError(t, err)

	require.Len(t, resp.OutfitDescriptions, 2)
	assert.Equal(t, 1, resp.OutfitDescriptions[0].ImageIndex)
	assert.Equal(t, "described top", resp.OutfitDescriptions[0].Description)
	assert.Regexp(t, `^outfit_\d+\.png$`, resp.OutfitDescriptions[0].Filename)
	assert.Equal(t, 3, resp.OutfitDescriptions[1].ImageIndex)
	assert.Regexp(t, `^outfit_\d+\.jpg$`, resp.OutfitDescriptions[1].Filename)
	assert.Empty(t, deps.TempFiles(t))

	assert.Equal(t, weather.SeasonWinter, resp.Season)
	assert.Equal(t, map[string]any{"name": "Paris"}, resp.Weather)
	assert.Equal(t, "Paris", deps.Weather.City)
	assert.Equal(t, stylistReply, resp.SuggestionsRaw)
	assert.Equal(t, "keep it simple", resp.Notes)
	assert.Equal(t, "light layers", resp.WeatherConsiderations)

	require.Len(t, deps.Analyzer.Prompts, 1)
	prompt := deps.Analyzer.Prompts[0]
	assert.Contains(t, prompt, "Date: 2025-01-15\n")
	assert.Contains(t, prompt, "Weather: Clear (clear sky), temp=21.5 °C\n")
	assert.Contains(t, prompt, "Gender: male\n")
	assert.NotContains(t, prompt, "Skin Tone:")
	assert.Contains(t, prompt, "[2] grey jeans\n[1] black wool coat\n")
	assert.NotContains(t, prompt, "someone else's hat")
	assert.Contains(t, prompt, "Image 1: described top\nImage 3: described shoes\n")

	require.Len(t, resp.Suggestions, 4)

	own := resp.Suggestions[0]
	require.NotNil(t, own.WardrobeId)
	item, ok := own.Item.(*types.WardrobeItem)
	require.True(t, ok)
	require.NotNil(t, item)
	assert.Equal(t, "black wool coat", item.Description)
	assert.Equal(t, "/wardrobe/1/file", item.FileUrl)

	foreign, ok := resp.Suggestions[1].Item.(*types.WardrobeItem)
	require.True(t, ok)
	assert.Nil(t, foreign)

	missing, ok := resp.Suggestions[2].Item.(*types.WardrobeItem)
	require.True(t, ok)
	assert.Nil(t, missing)
	assert.Equal(t, uint64(99), *resp.Suggestions[2].WardrobeId)

	buy := resp.Suggestions[3]
	assert.Nil(t, buy.WardrobeId)
	assert.Nil(t, buy.Item)
	require.NotNil(t, buy.FallbackText)
	assert.Equal(t, "white sneakers", *buy.FallbackText)
}

func TestSuggestOutfitWithoutImages(t *testing.T) {
	svcCtx, deps, ctx := setup(t)
	deps.Analyzer.Reply = "I would wear the coat."

	resp, err := newLogic(ctx, svcCtx).SuggestOutfit(&types.OutfitRequest{
		Hemisphere: "south",
		Units:      "imperial",
		Date:       "not a date",
		SkinTone:   "olive",
	}, nil)
	require.NoError(t, err)

	// 日期无效时用当前时间, 南半球四月是秋天
	assert.Equal(t, weather.SeasonAutumn, resp.Season)
	assert.Empty(t, resp.OutfitDescriptions)
	assert.Nil(t, resp.Weather)
	assert.Empty(t, resp.Suggestions)
	assert.Equal(t, "I would wear the coat.", resp.Notes)

	prompt := deps.Analyzer.Prompts[0]
	assert.Contains(t, prompt, "Date: 2025-04-10\n")
	assert.Contains(t, prompt, "Weather: unknown\n")
	assert.Contains(t, prompt, "Skin Tone: olive\n")
	assert.Contains(t, prompt, "No specific outfit uploaded.")
}

func TestSuggestOutfitCoordinates(t *testing.T) {
	svcCtx, deps, ctx := setup(t)

	_, err := newLogic(ctx, svcCtx).SuggestOutfit(&types.OutfitRequest{Lat: "48.85", Lon: " 2.35", Units: "metric"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 48.85, deps.Weather.Lat)
	assert.Equal(t, 2.35, deps.Weather.Lon)

	deps.Weather.Lat, deps.Weather.Lon = 0, 0
	resp, err := newLogic(ctx, svcCtx).SuggestOutfit(&types.OutfitRequest{Lat: "north", Lon: "2.35"}, nil)
	require.NoError(t, err)
	assert.Zero(t, deps.Weather.Lat)
	assert.Nil(t, resp.Weather)
}

func TestSuggestOutfitWeatherFailure(t *testing.T) {
	svcCtx, deps, ctx := setup(t)
	deps.Weather.Err = mock.ErrUpstream

	resp, err := newLogic(ctx, svcCtx).SuggestOutfit(&types.OutfitRequest{City: "Atlantis"}, nil)
	require.NoError(t, err)
	assert.Nil(t, resp.Weather)
	assert.Contains(t, deps.Analyzer.Prompts[0], "Weather: unknown\n")
}

func TestSuggestOutfitUpstreamFailures(t *testing.T) {
	svcCtx, deps, ctx := setup(t)
	deps.Analyzer.DescribeErr = mock.ErrUpstream

	_, err := newLogic(ctx, svcCtx).SuggestOutfit(&types.OutfitRequest{}, []helper.FilePart{
		{Filename: "a.png", Data: []byte("a")},
		{Filename: "b.png", Data: []byte("b")},
	})
	assert.Equal(t, errno.UpstreamModelError, codeOf(t, err))
	assert.Empty(t, deps.TempFiles(t))
	assert.Empty(t, deps.Analyzer.Prompts)

	deps.Analyzer.DescribeErr = nil
	deps.Analyzer.SuggestErr = mock.ErrUpstream
	_, err = newLogic(ctx, svcCtx).SuggestOutfit(&types.OutfitRequest{}, nil)
	assert.Equal(t, errno.UpstreamModelError, codeOf(t, err))
}

func TestParseDate(t *testing.T) {
	l := newLogic(context.Background(), nil)

	cases := map[string]time.Time{
		"2025-01-15":           time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		"2025-01-15T08:30:00":  time.Date(2025, 1, 15, 8, 30, 0, 0, time.UTC),
		"2025-01-15T08:30":     time.Date(2025, 1, 15, 8, 30, 0, 0, time.UTC),
		"2025-01-15 08:30:00":  time.Date(2025, 1, 15, 8, 30, 0, 0, time.UTC),
		"2025-01-15T08:30:00Z": time.Date(2025, 1, 15, 8, 30, 0, 0, time.UTC),
		"":                     time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC),
		"15/01/2025":           time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC),
	}
	for in, want := range cases {
		assert.True(t, want.Equal(l.parseDate(in)), in)
	}
}

func TestSuggestOutfitRateLimited(t *testing.T) {
	svcCtx, _, ctx := setup(t)
	svcCtx.OutfitLimiter = limit.NewPeriodLimit(60, 2, mock.NewRedis(t), "test:outfit")

	for i := 0; i < 2; i++ {
		_, err := newLogic(ctx, svcCtx).SuggestOutfit(&types.OutfitRequest{}, nil)
		require.NoError(t, err)
	}
	_, err := newLogic(ctx, svcCtx).SuggestOutfit(&types.OutfitRequest{}, nil)
	assert.Equal(t, errno.RateLimited, codeOf(t, err))

	// 其他用户不受影响
	_, err = newLogic(mock.WithUser(context.Background(), 2), svcCtx).SuggestOutfit(&types.OutfitRequest{}, nil)
	assert.NoError(t, err)
}
