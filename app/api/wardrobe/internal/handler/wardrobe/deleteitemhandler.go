package handler

import (
	"net/http"

	logic "Wardrobe/app/api/wardrobe/internal/logic/wardrobe"
	"Wardrobe/app/api/wardrobe/internal/svc"
	"Wardrobe/app/api/wardrobe/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func DeleteItemHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ItemPathRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewDeleteItemLogic(r.Context(), svcCtx)
		resp, err := l.DeleteItem(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
