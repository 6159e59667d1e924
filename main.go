package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ecowise/internal/config"
	"ecowise/internal/handler"
	"ecowise/internal/svc"

	"github.com/joho/godotenv"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"
)

var configFile = flag.String("f", "etc/ecowise.yaml", "the config file")

func main() {
	flag.Parse()

	// Provider credentials may live in a local .env instead of the yaml.
	_ = godotenv.Load()

	var c config.Config
	conf.MustLoad(*configFile, &c, conf.UseEnv())

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	ctx := svc.NewServiceContext(c)
	handler.RegisterHandlers(server, ctx)
	httpx.SetErrorHandlerCtx(handler.MapError)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)

	go func() {
		server.Start()
	}()

	<-quit
	fmt.Println("shutting down...")
}
