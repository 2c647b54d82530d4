package handler

import (
	"net/http"
	"time"

	logic "Wardrobe/app/api/wardrobe/internal/logic/auth"
	"Wardrobe/app/api/wardrobe/internal/svc"
	"Wardrobe/app/api/wardrobe/internal/types"
	"Wardrobe/app/common/util"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func LoginHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.LoginRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewLoginLogic(r.Context(), svcCtx)
		resp, err := l.Login(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			util.SetTokenCookie(w, resp.Token, time.Now().Add(svcCtx.Tokens.Expire()))
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
