package handler

import (
	"net/http"

	"Wardrobe/app/api/wardrobe/internal/logic/helper"
	logic "Wardrobe/app/api/wardrobe/internal/logic/outfit"
	"Wardrobe/app/api/wardrobe/internal/svc"
	"Wardrobe/app/api/wardrobe/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func SuggestOutfitHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.OutfitRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		// 图片是可选的
		files, err := helper.ReadUploads(r, svcCtx.Config.Storage.MaxFileBytes)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewSuggestOutfitLogic(r.Context(), svcCtx)
		resp, err := l.SuggestOutfit(&req, files)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
