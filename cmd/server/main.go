package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
)

// @title           Promptboard API
// @version         1.0
// @description     基于 Go + Gin 的用户认证、帖子和文本补全服务

// @host            localhost:5000
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 请在输入框中输入 "Bearer <token>" (注意 Bearer 和 token 之间有空格)

func main() {
	var configPath string

	app := &cli.App{
		Name:  "promptboard",
		Usage: "用户认证 + 帖子 + 文本补全 HTTP 服务",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "配置文件路径，默认读取当前目录下的 config.yaml (可选)",
				EnvVars:     []string{"PROMPTBOARD_CONFIG"},
				Destination: &configPath,
			},
		},
		Action: func(c *cli.Context) error {
			return runServe(c.Context, configPath)
		},
		Commands: []*cli.Command{
			serveCmd(&configPath),
			migrateCmd(&configPath),
			chatCmd(&configPath),
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := app.RunContext(ctx, os.Args); err != nil {
		slog.Error("application failed", "err", err)
		os.Exit(1)
	}
}
