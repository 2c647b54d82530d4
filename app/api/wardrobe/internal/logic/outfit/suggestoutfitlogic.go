package logic

import (
	"context"
	"strconv"
	"strings"
	"time"

	"Wardrobe/app/api/wardrobe/internal/logic/helper"
	"Wardrobe/app/api/wardrobe/internal/svc"
	"Wardrobe/app/api/wardrobe/internal/types"
	"Wardrobe/app/common/consts/errno"
	"Wardrobe/app/common/snowflake"
	"Wardrobe/app/common/stylist"
	"Wardrobe/app/common/weather"
	usermodel "Wardrobe/app/dal/user"
	wardrobemodel "Wardrobe/app/dal/wardrobe"

	"github.com/spf13/cast"
	"github.com/zeromicro/go-zero/core/limit"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
	"golang.org/x/sync/errgroup"
)

const tempPrefix = "outfit"

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateTime,
	time.DateOnly,
}

type SuggestOutfitLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
	now    func() time.Time
}

func NewSuggestOutfitLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SuggestOutfitLogic {
	return &SuggestOutfitLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
		now:    time.Now,
	}
}

func (l *SuggestOutfitLogic) SuggestOutfit(req *types.OutfitRequest, files []helper.FilePart) (*types.OutfitResponse, error) {
	uid, err := helper.CurrentUserId(l.ctx)
	if err != nil {
		return nil, err
	}
	if err := l.takeQuota(uid); err != nil {
		return nil, err
	}

	user, err := l.svcCtx.UserModel.FindOne(l.ctx, uid)
	if err != nil {
		if err == usermodel.ErrNotFound {
			return nil, errors.New(errno.UserNotFound, "user not found")
		}
		l.Logger.Errorf("find user %d failed: %v", uid, err)
		return nil, errors.New(errno.InternalError, "db error")
	}

	descriptions, err := l.describeOutfit(files)
	if err != nil {
		return nil, err
	}

	when := l.parseDate(req.Date)
	season := weather.InferSeason(when, req.Hemisphere)
	units := strings.ToLower(strings.TrimSpace(req.Units))
	current := l.lookupWeather(req, units)

	items, err := l.svcCtx.WardrobeModel.FindByUserId(l.ctx, uid, l.svcCtx.Config.Outfit.MaxPromptWardrobe)
	if err != nil {
		l.Logger.Errorf("list wardrobe for user %d failed: %v", uid, err)
		return nil, errors.New(errno.InternalError, "db error")
	}

	prompt := stylist.BuildSuggestionPrompt(stylist.SuggestionContext{
		Date:     when,
		Season:   season,
		Weather:  current.Summary(units),
		Gender:   firstNonEmpty(req.Gender, user.Gender.String),
		SkinTone: firstNonEmpty(req.SkinTone, user.SkinTone.String),
		Wardrobe: wardrobeLines(items),
		Outfit:   outfitLines(descriptions),
	})

	raw, err := l.svcCtx.Analyzer.Suggest(l.ctx, prompt)
	if err != nil {
		l.Logger.Errorf("stylist suggest failed: %v", err)
		return nil, errors.New(errno.UpstreamModelError, "stylist unavailable")
	}

	suggestion, err := stylist.ParseSuggestion(raw)
	if err != nil {
		l.Logger.Infof("stylist reply is not json, returned as notes: %v", err)
	}

	resp := &types.OutfitResponse{
		OutfitDescriptions:    descriptions,
		Season:                season,
		SuggestionsRaw:        raw,
		Suggestions:           l.resolve(uid, items, suggestion.Recommendations),
		Notes:                 suggestion.Notes,
		WeatherConsiderations: suggestion.WeatherConsiderations,
	}
	if current != nil {
		resp.Weather = current.Raw
	}
	return resp, nil
}

func (l *SuggestOutfitLogic) takeQuota(uid uint64) error {
	if l.svcCtx.OutfitLimiter == nil {
		return nil
	}

	code, err := l.svcCtx.OutfitLimiter.TakeCtx(l.ctx, strconv.FormatUint(uid, 10))
	if err != nil {
		// redis 异常时放行
		l.Logger.Errorf("outfit limiter failed: %v", err)
		return nil
	}
	if code == limit.OverQuota {
		return errors.New(errno.RateLimited, "too many outfit requests, try again later")
	}
	return nil
}

// describeOutfit analyses the accepted images in parallel. Results keep the
// upload order and image_index is the 1-based position in the upload list.
func (l *SuggestOutfitLogic) describeOutfit(files []helper.FilePart) ([]types.OutfitDescription, error) {
	slots := make([]*types.OutfitDescription, len(files))
	var saved []string
	defer func() {
		for _, name := range saved {
			if err := l.svcCtx.TempStore.Remove(l.ctx, name); err != nil {
				l.Logger.Errorf("cleanup temp file %s failed: %v", name, err)
			}
		}
	}()

	g, ctx := errgroup.WithContext(l.ctx)
	if n := l.svcCtx.Config.Outfit.AnalyzeWorkers; n > 0 {
		g.SetLimit(n)
	}

	for i, f := range files {
		if !f.Allowed() {
			continue
		}
		name := snowflake.TempName(tempPrefix, "."+f.Ext())
		if err := l.svcCtx.TempStore.Save(l.ctx, name, f.Data); err != nil {
			l.Logger.Errorf("save temp file %s failed: %v", name, err)
			_ = g.Wait()
			return nil, errors.New(errno.InternalError, "save outfit image failed")
		}
		saved = append(saved, name)

		g.Go(func() error {
			analysis, err := l.svcCtx.Analyzer.Describe(ctx, f.Data, helper.MimeType(f.Ext()))
			if err != nil {
				return err
			}
			slots[i] = &types.OutfitDescription{
				ImageIndex:  i + 1,
				Filename:    name,
				Description: analysis.Raw,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		l.Logger.Errorf("describe outfit failed: %v", err)
		return nil, errors.New(errno.UpstreamModelError, "describe outfit failed")
	}

	out := make([]types.OutfitDescription, 0, len(saved))
	for _, d := range slots {
		if d != nil {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (l *SuggestOutfitLogic) parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s != "" {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
		l.Logger.Infof("invalid outfit date %q, using now", s)
	}
	return l.now().UTC()
}

// lookupWeather prefers the city and falls back to coordinates. Any failure
// yields nil, which renders as an unknown summary.
func (l *SuggestOutfitLogic) lookupWeather(req *types.OutfitRequest, units string) *weather.Current {
	if l.svcCtx.Weather == nil {
		return nil
	}

	city := strings.TrimSpace(req.City)
	if city != "" {
		cur, err := l.svcCtx.Weather.CurrentByCity(l.ctx, city, units)
		if err != nil {
			l.Logger.Errorf("weather by city %q failed: %v", city, err)
			return nil
		}
		return cur
	}

	if req.Lat == "" || req.Lon == "" {
		return nil
	}
	lat, latErr := cast.ToFloat64E(strings.TrimSpace(req.Lat))
	lon, lonErr := cast.ToFloat64E(strings.TrimSpace(req.Lon))
	if latErr != nil || lonErr != nil {
		l.Logger.Infof("ignore invalid coordinates lat=%q lon=%q", req.Lat, req.Lon)
		return nil
	}

	cur, err := l.svcCtx.Weather.CurrentByCoords(l.ctx, lat, lon, units)
	if err != nil {
		l.Logger.Errorf("weather by coords failed: %v", err)
		return nil
	}
	return cur
}

// resolve attaches wardrobe items to recommendations. Only the current user's
// items are ever returned; other ids resolve to a null item.
func (l *SuggestOutfitLogic) resolve(uid uint64, known []*wardrobemodel.WardrobeItems, recs []stylist.Recommendation) []types.ResolvedRecommendation {
	byId := make(map[uint64]*wardrobemodel.WardrobeItems, len(known))
	for _, it := range known {
		byId[it.Id] = it
	}

	out := make([]types.ResolvedRecommendation, 0, len(recs))
	for _, rec := range recs {
		r := types.ResolvedRecommendation{
			WardrobeId:   rec.WardrobeId,
			Reason:       rec.Reason,
			FallbackText: rec.FallbackText,
		}
		if rec.WardrobeId != nil {
			r.Item = l.lookupOwnItem(uid, *rec.WardrobeId, byId)
		}
		out = append(out, r)
	}
	return out
}

func (l *SuggestOutfitLogic) lookupOwnItem(uid, id uint64, byId map[uint64]*wardrobemodel.WardrobeItems) *types.WardrobeItem {
	it, ok := byId[id]
	if !ok {
		found, err := l.svcCtx.WardrobeModel.FindOne(l.ctx, id)
		if err != nil {
			if err != wardrobemodel.ErrNotFound {
				l.Logger.Errorf("resolve wardrobe item %d failed: %v", id, err)
			}
			return nil
		}
		it = found
	}
	if it.UserId != uid {
		return nil
	}

	item := helper.ToWardrobeItem(it)
	return &item
}

func wardrobeLines(items []*wardrobemodel.WardrobeItems) []stylist.WardrobeLine {
	lines := make([]stylist.WardrobeLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, stylist.WardrobeLine{Id: it.Id, Description: it.Description})
	}
	return lines
}

func outfitLines(descs []types.OutfitDescription) []stylist.OutfitLine {
	lines := make([]stylist.OutfitLine, 0, len(descs))
	for _, d := range descs {
		lines = append(lines, stylist.OutfitLine{ImageIndex: d.ImageIndex, Description: d.Description})
	}
	return lines
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
