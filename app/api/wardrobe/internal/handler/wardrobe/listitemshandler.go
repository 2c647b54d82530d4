package handler

import (
	"net/http"

	logic "Wardrobe/app/api/wardrobe/internal/logic/wardrobe"
	"Wardrobe/app/api/wardrobe/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func ListItemsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewListItemsLogic(r.Context(), svcCtx)
		resp, err := l.ListItems()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
