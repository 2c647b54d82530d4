package handler

import (
	"net/http"

	logic "Wardrobe/app/api/wardrobe/internal/logic/wardrobe"
	"Wardrobe/app/api/wardrobe/internal/svc"
	"Wardrobe/app/api/wardrobe/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func GetItemFileHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ItemPathRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewGetItemFileLogic(r.Context(), svcCtx)
		f, contentType, err := l.GetItemFile(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		w.Header().Set("Content-Type", contentType)
		http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	}
}
