package middleware

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"

	"Wardrobe/app/common/consts/biz"
	"Wardrobe/app/common/consts/errno"
	"Wardrobe/app/common/token"
	"Wardrobe/app/common/util"
	usermodel "Wardrobe/app/dal/user"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/x/errors"
)

type TokenParser interface {
	Parse(tokenStr string) (*token.Claims, error)
}

type UserFinder interface {
	FindOne(ctx context.Context, id uint64) (*usermodel.Users, error)
}

type AuthMiddleware struct {
	Tokens TokenParser
	Users  UserFinder
}

func NewAuthMiddleware(tokens TokenParser, users UserFinder) *AuthMiddleware {
	return &AuthMiddleware{
		Tokens: tokens,
		Users:  users,
	}
}

func (m *AuthMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken, err := tokenFromRequest(r)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		claims, err := m.Tokens.Parse(accessToken)
		switch {
		case err == nil:
		case stderrors.Is(err, token.ErrTokenExpired):
			httpx.ErrorCtx(r.Context(), w, errors.New(errno.TokenExpired, "token expired"))
			return
		default:
			httpx.ErrorCtx(r.Context(), w, errors.New(errno.TokenInvalid, "invalid token"))
			return
		}

		if _, err := m.Users.FindOne(r.Context(), uint64(claims.UserID)); err != nil {
			if err != usermodel.ErrNotFound {
				logx.WithContext(r.Context()).Errorf("auth: find user %d failed: %v", claims.UserID, err)
			}
			httpx.ErrorCtx(r.Context(), w, errors.New(errno.UserNotFound, "user not found"))
			return
		}

		util.InjectUserId2Ctx(r, claims.UserID)
		next(w, r)
	}
}

// Authorization 头优先，其次是登录时下发的 cookie
func tokenFromRequest(r *http.Request) (string, error) {
	if header := r.Header.Get(biz.AUTHORIZATION); header != "" {
		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], biz.BEARER) {
			return "", errors.New(errno.TokenInvalidFormat, "invalid token format")
		}
		return parts[1], nil
	}

	if cookie, err := r.Cookie(biz.ACCESSTOKEN); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	return "", errors.New(errno.TokenEmpty, "token missing")
}
