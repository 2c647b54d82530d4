package biz

import "time"

type CtxKey string

const (
	USER_KEY CtxKey = "user_id"

	TokenExpire = time.Hour * 24 * 7

	ACCESSTOKEN   = "access_token"
	AUTHORIZATION = "Authorization"
	BEARER        = "Bearer"

	USER_EMAIL_BLOOM     = "wardrobe:bloom:user:email"
	USER_EMAIL_BLOOM_BIT = 1 << 20

	OUTFIT_LIMIT_KEY_PREFIX = "wardrobe:limit:outfit"
)
