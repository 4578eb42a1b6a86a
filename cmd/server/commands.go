package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/leon37/promptboard/internal/api"
	"github.com/leon37/promptboard/internal/api/controller"
	"github.com/leon37/promptboard/internal/auth"
	"github.com/leon37/promptboard/internal/config"
	"github.com/leon37/promptboard/internal/infrastructure/database"
	"github.com/leon37/promptboard/internal/infrastructure/llm"
	"github.com/leon37/promptboard/internal/logging"
	"github.com/leon37/promptboard/internal/repository"
	"github.com/leon37/promptboard/internal/service"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func serveCmd(configPath *string) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "迁移数据库并启动 HTTP 服务",
		Action: func(c *cli.Context) error {
			return runServe(c.Context, *configPath)
		},
	}
}

func migrateCmd(configPath *string) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "只执行建表迁移然后退出",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			db, err := openDB(c.Context, cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)
			if err := database.Migrate(c.Context, db); err != nil {
				return err
			}
			slog.Info("migration finished")
			return nil
		},
	}
}

// chatCmd 不启动服务，直接用当前配置调一次补全接口，用来验证 key / base_url
func chatCmd(configPath *string) *cli.Command {
	var prompt string
	return &cli.Command{
		Name:  "chat",
		Usage: "用当前配置发送一次 prompt 并打印回复",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "prompt",
				Aliases:     []string{"p"},
				Required:    true,
				Destination: &prompt,
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadConfig(*configPath)
			if err != nil {
				return err
			}
			setupLogger(cfg)
			if cfg.OpenAI.APIKey == "" {
				return errors.New("openai.api_key (OPENAI_API_KEY) is required")
			}

			start := time.Now()
			reply, err := service.NewChatService(newLLMClient(cfg)).Chat(c.Context, prompt)
			if err != nil {
				return err
			}
			slog.Info("completion ok", "duration", time.Since(start))
			_, err = fmt.Fprintln(c.App.Writer, reply)
			return err
		},
	}
}

func runServe(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	slog.Info("promptboard starting", "port", cfg.Server.Port, "mode", cfg.Server.Mode)

	// 1. Infra
	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)
	if err := database.Migrate(ctx, db); err != nil {
		return err
	}

	// 2. Layer Wiring (依赖注入)
	router, err := buildRouter(cfg, repository.NewStore(db), newLLMClient(cfg))
	if err != nil {
		return err
	}

	// 3. Server Start
	return api.Serve(ctx, cfg.Server.Addr(), router, cfg.Server.ShutdownTimeout)
}

func buildRouter(cfg *config.Config, store repository.Store, llmClient llm.Provider) (*gin.Engine, error) {
	tokens, err := auth.NewTokenCodec([]byte(cfg.JWT.Secret), cfg.JWT.TTL)
	if err != nil {
		return nil, err
	}
	authSvc, err := service.NewAuthService(store, auth.NewPasswordHasher(auth.DefaultCost), tokens)
	if err != nil {
		return nil, err
	}

	gin.SetMode(cfg.Server.Mode)
	return api.NewRouter(api.Controllers{
		Auth: controller.NewAuthController(authSvc),
		Post: controller.NewPostController(service.NewPostService(store)),
		User: controller.NewUserController(service.NewUserService(store)),
		Chat: controller.NewChatController(service.NewChatService(llmClient)),
	}, authSvc, cfg.CORS.AllowedOrigins), nil
}

// loadConfig 读配置、初始化日志并校验必填项
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	setupLogger(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func setupLogger(cfg *config.Config) {
	slog.SetDefault(logging.New(os.Stdout, cfg.Log.SlogLevel()))
}

func openDB(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	opts := database.DefaultOptions()
	if cfg.Log.SlogLevel() <= slog.LevelDebug {
		opts.LogLevel = logger.Info
	}
	return database.Open(ctx, cfg.Database.DSN, opts)
}

func newLLMClient(cfg *config.Config) llm.Provider {
	return llm.NewOpenAIClient(llm.Options{
		APIKey:    cfg.OpenAI.APIKey,
		BaseURL:   cfg.OpenAI.BaseURL,
		Model:     cfg.OpenAI.Model,
		MaxTokens: cfg.OpenAI.MaxTokens,
		Timeout:   cfg.OpenAI.Timeout,
	})
}
