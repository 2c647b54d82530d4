package util

import (
	"net/http"
	"time"

	"Wardrobe/app/common/consts/biz"
)

// 登录成功后同时下发 cookie，浏览器端无需手动带 Authorization
func SetTokenCookie(w http.ResponseWriter, accessToken string, expireAt time.Time) {
	if accessToken == "" {
		return
	}

	ttl := time.Until(expireAt)
	if ttl <= 0 {
		ttl = biz.TokenExpire
		expireAt = time.Now().Add(ttl)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     biz.ACCESSTOKEN,
		Value:    accessToken,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  expireAt,
		MaxAge:   int(ttl.Seconds()),
	})
}
