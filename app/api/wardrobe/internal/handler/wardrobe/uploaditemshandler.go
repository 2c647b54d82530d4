package handler

import (
	"net/http"

	"Wardrobe/app/api/wardrobe/internal/logic/helper"
	logic "Wardrobe/app/api/wardrobe/internal/logic/wardrobe"
	"Wardrobe/app/api/wardrobe/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func UploadItemsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		files, err := helper.ReadUploads(r, svcCtx.Config.Storage.MaxFileBytes)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewUploadItemsLogic(r.Context(), svcCtx)
		resp, err := l.UploadItems(files)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.WriteJsonCtx(r.Context(), w, http.StatusCreated, resp)
		}
	}
}
