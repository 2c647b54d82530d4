package handler

import (
	"net/http"

	logic "Wardrobe/app/api/wardrobe/internal/logic/health"
	"Wardrobe/app/api/wardrobe/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func HealthHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewHealthLogic(r.Context(), svcCtx)
		httpx.OkJsonCtx(r.Context(), w, l.Health())
	}
}
