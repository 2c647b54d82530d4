package config

import (
	"time"

	"Wardrobe/app/common/mq"
	"Wardrobe/app/common/stylist"
	"Wardrobe/app/common/weather"

	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	MysqlConf sqlx.SqlConf
	RedisConf redis.RedisConf
	CacheConf cache.CacheConf

	Auth     AuthConf
	Storage  StorageConf
	Stylist  stylist.Conf
	Weather  weather.Conf
	Outfit   OutfitConf
	Frontend FrontendConf `json:",optional"`

	KafkaConf mq.KafkaConf `json:",optional"`
}

type AuthConf struct {
	AccessSecret string
	AccessExpire time.Duration `json:",default=168h"`
}

type StorageConf struct {
	UploadDir string `json:",default=uploads"`
	// 单个文件上限
	MaxFileBytes int64 `json:",default=10485760"`
	// multipart 请求体上限
	MaxRequestBytes int64 `json:",default=67108864"`
}

type OutfitConf struct {
	// 每个用户在 LimitPeriod 秒内最多请求 LimitQuota 次, 0 表示不限流
	LimitPeriod       int `json:",default=60"`
	LimitQuota        int `json:",default=0"`
	MaxPromptWardrobe int `json:",default=60"`
	AnalyzeWorkers    int `json:",default=4"`
}

type FrontendConf struct {
	StaticDir string `json:",optional"`
}
