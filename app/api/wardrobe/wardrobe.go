package main

import (
	"flag"
	"fmt"

	"Wardrobe/app/api/wardrobe/internal/config"
	"Wardrobe/app/api/wardrobe/internal/handler"
	frontend "Wardrobe/app/api/wardrobe/internal/handler/frontend"
	"Wardrobe/app/api/wardrobe/internal/svc"
	"Wardrobe/app/common/response"

	"github.com/joho/godotenv"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"
)

var configFile = flag.String("f", "etc/wardrobe-api.yaml", "the config file")

func main() {
	flag.Parse()

	// .env 可选，只用于本地开发
	if err := godotenv.Load(); err != nil {
		logx.Infow("no .env file loaded", logx.Field("err", err))
	}

	var c config.Config
	conf.MustLoad(*configFile, &c, conf.UseEnv())

	ctx := svc.NewServiceContext(c)
	defer ctx.Close()

	server := rest.MustNewServer(c.RestConf, rest.WithNotFoundHandler(frontend.NewFrontendHandler(ctx)))
	defer server.Stop()

	httpx.SetErrorHandlerCtx(response.ErrorHandler)
	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
