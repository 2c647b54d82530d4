package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	logic "Wardrobe/app/api/wardrobe/internal/logic/health"
	"Wardrobe/app/api/wardrobe/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

const indexFile = "index.html"

// NewFrontendHandler serves the single page app for every path no route
// matched. Unknown paths fall back to index.html for client side routing.
// Without a static dir it answers with a development health payload.
func NewFrontendHandler(svcCtx *svc.ServiceContext) http.Handler {
	dir := svcCtx.Config.Frontend.StaticDir
	if dir != "" {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			dir = ""
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if dir == "" {
			resp := logic.NewHealthLogic(r.Context(), svcCtx).Health()
			resp.Mode = "development"
			httpx.OkJsonCtx(r.Context(), w, resp)
			return
		}

		name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
		if name != "" {
			full := filepath.Join(dir, filepath.FromSlash(name))
			if info, err := os.Stat(full); err == nil && !info.IsDir() {
				http.ServeFile(w, r, full)
				return
			}
		}
		http.ServeFile(w, r, filepath.Join(dir, indexFile))
	})
}
