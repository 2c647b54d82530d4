package mock

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"Wardrobe/app/api/wardrobe/internal/config"
	"Wardrobe/app/api/wardrobe/internal/svc"
	"Wardrobe/app/common/consts/biz"
	"Wardrobe/app/common/filestore"
	"Wardrobe/app/common/mq"
	"Wardrobe/app/common/stylist"
	"Wardrobe/app/common/token"
	"Wardrobe/app/common/weather"

	"github.com/alicebob/miniredis/v2"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

var ErrUpstream = errors.New("upstream unavailable")

type Analyzer struct {
	mu sync.Mutex

	DescribeErr error
	Reply       string
	SuggestErr  error

	Described []string
	Prompts   []string
}

func (a *Analyzer) Describe(_ context.Context, image []byte, mimeType string) (*stylist.Analysis, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.DescribeErr != nil {
		return nil, a.DescribeErr
	}
	a.Described = append(a.Described, mimeType)
	return &stylist.Analysis{Raw: "described " + string(image)}, nil
}

func (a *Analyzer) Suggest(_ context.Context, prompt string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.Prompts = append(a.Prompts, prompt)
	if a.SuggestErr != nil {
		return "", a.SuggestErr
	}
	return a.Reply, nil
}

type Weather struct {
	Current *weather.Current
	Err     error

	City     string
	Lat, Lon float64
	Units    string
}

func (w *Weather) CurrentByCity(_ context.Context, city, units string) (*weather.Current, error) {
	w.City, w.Units = city, units
	return w.Current, w.Err
}

func (w *Weather) CurrentByCoords(_ context.Context, lat, lon float64, units string) (*weather.Current, error) {
	w.Lat, w.Lon, w.Units = lat, lon, units
	return w.Current, w.Err
}

type Publisher struct {
	mu     sync.Mutex
	Events []mq.WardrobeEvent
}

func (p *Publisher) Publish(_ context.Context, evt mq.WardrobeEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Events = append(p.Events, evt)
	return nil
}

func (p *Publisher) Close() error { return nil }

// Deps exposes the fakes behind a ServiceContext built by NewServiceContext.
type Deps struct {
	Users     *UsersModel
	Wardrobe  *WardrobeModel
	Analyzer  *Analyzer
	Weather   *Weather
	Publisher *Publisher
	Store     *filestore.LocalStore
	TempStore *filestore.LocalStore
}

func NewServiceContext(t testing.TB) (*svc.ServiceContext, *Deps) {
	t.Helper()

	root := t.TempDir()
	d := &Deps{
		Users:     NewUsersModel(),
		Wardrobe:  NewWardrobeModel(),
		Analyzer:  &Analyzer{Reply: `{"recommendations": [], "notes": "ok"}`},
		Weather:   &Weather{},
		Publisher: &Publisher{},
		Store:     filestore.MustNewLocalStore(root + "/wardrobe"),
		TempStore: filestore.MustNewLocalStore(root + "/outfit_temp"),
	}

	var c config.Config
	c.Auth.AccessSecret = "test-secret"
	c.Auth.AccessExpire = time.Hour
	c.Storage.MaxFileBytes = 1 << 20
	c.Outfit.MaxPromptWardrobe = 60
	c.Outfit.AnalyzeWorkers = 2

	return &svc.ServiceContext{
		Config:        c,
		Tokens:        token.MustNewManager(c.Auth.AccessSecret, c.Auth.AccessExpire),
		UserModel:     d.Users,
		WardrobeModel: d.Wardrobe,
		Store:         d.Store,
		TempStore:     d.TempStore,
		Analyzer:      d.Analyzer,
		Weather:       d.Weather,
		Publisher:     d.Publisher,
	}, d
}

// TempFiles lists what is left in the outfit temp dir.
func (d *Deps) TempFiles(t testing.TB) []string {
	t.Helper()
	return listDir(t, d.TempStore.Dir())
}

// WithUser returns a context carrying the user id the auth middleware sets.
func WithUser(ctx context.Context, userId uint64) context.Context {
	return context.WithValue(ctx, biz.USER_KEY, int64(userId))
}

// Files lists the stored wardrobe files.
func (d *Deps) Files(t testing.TB) []string {
	t.Helper()
	return listDir(t, d.Store.Dir())
}

// NewRedis starts an in-process redis for code paths that need one.
func NewRedis(t testing.TB) *redis.Redis {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.MustNewRedis(redis.RedisConf{Host: mr.Addr(), Type: redis.NodeType})
}
