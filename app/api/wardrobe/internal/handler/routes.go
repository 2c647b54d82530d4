package handler

import (
	"net/http"

	auth "Wardrobe/app/api/wardrobe/internal/handler/auth"
	health "Wardrobe/app/api/wardrobe/internal/handler/health"
	outfit "Wardrobe/app/api/wardrobe/internal/handler/outfit"
	wardrobe "Wardrobe/app/api/wardrobe/internal/handler/wardrobe"
	"Wardrobe/app/api/wardrobe/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/auth/register",
				Handler: auth.RegisterHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/auth/login",
				Handler: auth.LoginHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/health",
				Handler: health.HealthHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{serverCtx.AuthMiddleware},
			[]rest.Route{
				{
					Method:  http.MethodGet,
					Path:    "/auth/profile",
					Handler: auth.GetProfileHandler(serverCtx),
				},
				{
					Method:  http.MethodPut,
					Path:    "/auth/profile",
					Handler: auth.UpdateProfileHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/wardrobe",
					Handler: wardrobe.ListItemsHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/wardrobe/:id",
					Handler: wardrobe.GetItemHandler(serverCtx),
				},
				{
					Method:  http.MethodDelete,
					Path:    "/wardrobe/:id",
					Handler: wardrobe.DeleteItemHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/wardrobe/:id/file",
					Handler: wardrobe.GetItemFileHandler(serverCtx),
				},
			}...,
		),
	)

	// multipart 接口单独放宽请求体大小
	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{serverCtx.AuthMiddleware},
			[]rest.Route{
				{
					Method:  http.MethodPost,
					Path:    "/wardrobe",
					Handler: wardrobe.UploadItemsHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/outfit",
					Handler: outfit.SuggestOutfitHandler(serverCtx),
				},
			}...,
		),
		rest.WithMaxBytes(serverCtx.Config.Storage.MaxRequestBytes),
	)
}
