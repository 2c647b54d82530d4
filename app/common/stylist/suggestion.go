package stylist

import (
	"Wardrobe/app/common/llmjson"

	"github.com/spf13/cast"
)

type Recommendation struct {
	WardrobeId   *uint64
	Reason       string
	FallbackText *string
}

type Suggestion struct {
	Recommendations       []Recommendation
	Notes                 string
	WeatherConsiderations string
}

// ParseSuggestion reads the stylist reply. When no object can be recovered the
// whole text becomes Notes and the extractor error is returned alongside a
// usable Suggestion.
func ParseSuggestion(text string) (*Suggestion, error) {
	obj, err := llmjson.Extract(text)
	if err != nil {
		return &Suggestion{
			Recommendations: []Recommendation{},
			Notes:           text,
		}, err
	}

	s := &Suggestion{
		Recommendations:       []Recommendation{},
		Notes:                 cast.ToString(obj["notes"]),
		WeatherConsiderations: cast.ToString(obj["weather_considerations"]),
	}

	recs, _ := obj["recommendations"].([]any)
	for _, r := range recs {
		m, ok := r.(map[string]any)
		if !ok {
			continue
		}
		s.Recommendations = append(s.Recommendations, toRecommendation(m))
	}
	return s, nil
}

func toRecommendation(m map[string]any) Recommendation {
	rec := Recommendation{
		Reason: cast.ToString(m["reason"]),
	}

	// 模型偶尔会把 id 写成字符串
	if v := m["wardrobe_id"]; v != nil {
		if id, err := cast.ToUint64E(cast.ToString(v)); err == nil && id > 0 {
			rec.WardrobeId = &id
		}
	}
	if v := m["fallback_text"]; v != nil {
		text := cast.ToString(v)
		rec.FallbackText = &text
	}
	return rec
}
