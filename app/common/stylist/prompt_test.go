package stylist

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildSuggestionPrompt(t *testing.T) {
	p := BuildSuggestionPrompt(SuggestionContext{
		Date:     time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
		Season:   "winter",
		Weather:  "Clouds (overcast clouds), temp=3.5 °C",
		Gender:   "female",
		SkinTone: "warm",
		Wardrobe: []WardrobeLine{
			{Id: 12, Description: "black wool coat"},
			{Id: 7, Description: "grey jeans"},
		},
		Outfit: []OutfitLine{
			{ImageIndex: 1, Description: "red sweater"},
		},
	})

	assert.True(t, strings.HasPrefix(p, "You are a professional AI personal stylist"))
	assert.Contains(t, p, "Date: 2025-01-15\n")
	assert.Contains(t, p, "Season: winter\n")
	assert.Contains(t, p, "Weather: Clouds (overcast clouds), temp=3.5 °C\n")
	assert.Contains(t, p, "Gender: female\n")
	assert.Contains(t, p, "Skin Tone: warm\n")
	assert.Contains(t, p, "[12] black wool coat\n[7] grey jeans\n")
	assert.Contains(t, p, "CURRENT OUTFIT TO STYLE:\nImage 1: red sweater\n")
	assert.NotContains(t, p, NoOutfitLine)
	assert.Contains(t, p, `"weather_considerations"`)
	assert.True(t, strings.HasSuffix(p, "Return ONLY the JSON object with no additional formatting or text."))

	// 顺序: context 在衣柜之前, 衣柜在当前穿搭之前
	ctxAt := strings.Index(p, "CONTEXT:")
	wardrobeAt := strings.Index(p, "AVAILABLE WARDROBE ITEMS")
	outfitAt := strings.Index(p, "CURRENT OUTFIT TO STYLE")
	assert.Less(t, ctxAt, wardrobeAt)
	assert.Less(t, wardrobeAt, outfitAt)
}

func TestBuildSuggestionPromptOmitsOptionalContext(t *testing.T) {
	p := BuildSuggestionPrompt(SuggestionContext{
		Date:    time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		Season:  "summer",
		Weather: "unknown",
	})

	assert.NotContains(t, p, "Gender:")
	assert.NotContains(t, p, "Skin Tone:")
	assert.Contains(t, p, "CURRENT OUTFIT TO STYLE:\n"+NoOutfitLine+"\n")
}
