package svc

import (
	"context"
	"path/filepath"

	"Wardrobe/app/api/wardrobe/internal/config"
	"Wardrobe/app/common/consts/biz"
	"Wardrobe/app/common/filestore"
	"Wardrobe/app/common/middleware"
	"Wardrobe/app/common/mq"
	"Wardrobe/app/common/stylist"
	"Wardrobe/app/common/token"
	"Wardrobe/app/common/weather"
	usermodel "Wardrobe/app/dal/user"
	wardrobemodel "Wardrobe/app/dal/wardrobe"

	"github.com/zeromicro/go-zero/core/bloom"
	"github.com/zeromicro/go-zero/core/limit"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/go-zero/rest"
)

const outfitTempDir = "outfit_temp"

type ServiceContext struct {
	Config         config.Config
	AuthMiddleware rest.Middleware

	Tokens        *token.Manager
	UserModel     usermodel.UsersModel
	WardrobeModel wardrobemodel.WardrobeItemsModel

	// Bloom 和 OutfitLimiter 可以为 nil
	Bloom         *bloom.Filter
	OutfitLimiter *limit.PeriodLimit

	Store     filestore.Store
	TempStore filestore.Store
	Analyzer  stylist.Analyzer
	Weather   weather.Provider
	Publisher mq.Publisher
}

func NewServiceContext(c config.Config) *ServiceContext {
	conn := sqlx.MustNewConn(c.MysqlConf)
	userModel := usermodel.NewUsersModel(conn, c.CacheConf)
	tokens := token.MustNewManager(c.Auth.AccessSecret, c.Auth.AccessExpire)

	rds := redis.MustNewRedis(c.RedisConf)
	bf := bloom.New(rds, biz.USER_EMAIL_BLOOM, biz.USER_EMAIL_BLOOM_BIT)
	if err := bloomPreheat(bf, userModel); err != nil {
		logx.Errorw("bloom preheat failed", logx.Field("err", err))
	}

	var limiter *limit.PeriodLimit
	if c.Outfit.LimitQuota > 0 {
		limiter = limit.NewPeriodLimit(c.Outfit.LimitPeriod, c.Outfit.LimitQuota, rds, biz.OUTFIT_LIMIT_KEY_PREFIX)
	}

	return &ServiceContext{
		Config:         c,
		AuthMiddleware: middleware.NewAuthMiddleware(tokens, userModel).Handle,
		Tokens:         tokens,
		UserModel:      userModel,
		WardrobeModel:  wardrobemodel.NewWardrobeItemsModel(conn, c.CacheConf),
		Bloom:          bf,
		OutfitLimiter:  limiter,
		Store:          filestore.MustNewLocalStore(c.Storage.UploadDir),
		TempStore:      filestore.MustNewLocalStore(filepath.Join(c.Storage.UploadDir, outfitTempDir)),
		Analyzer:       stylist.MustNewAnalyzer(context.Background(), c.Stylist),
		Weather:        weather.NewClient(c.Weather),
		Publisher:      mq.NewPublisher(c.KafkaConf),
	}
}

func (s *ServiceContext) Close() {
	if s.Publisher != nil {
		if err := s.Publisher.Close(); err != nil {
			logx.Errorw("close publisher failed", logx.Field("err", err))
		}
	}
}

func bloomPreheat(bf *bloom.Filter, users usermodel.UsersModel) error {
	emails, err := users.FindAllEmail(context.Background())
	if err != nil {
		return err
	}

	for _, email := range emails {
		if err := bf.Add([]byte(email)); err != nil {
			return err
		}
	}
	return nil
}
