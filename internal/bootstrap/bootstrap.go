// Package bootstrap は2つのサービスを組み立てて同時に起動する
package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"

	"twinserve/internal/api"
	"twinserve/internal/config"
	"twinserve/internal/server"
	"twinserve/internal/static"
)

// Services は起動対象のリスナー
type Services struct {
	API    *server.Server
	Static *server.Server
}

// Build は設定からAPIサービスと静的ファイルサービスを個別に作成する
// 2つのサービスは状態を共有しない
func Build(cfg *config.Config, logger *slog.Logger) (*Services, error) {
	apiHandler, err := api.New(logger)
	if err != nil {
		return nil, err
	}
	staticHandler, err := static.New(cfg.Static.Root, logger)
	if err != nil {
		return nil, fmt.Errorf("静的ファイルサービスの作成に失敗: %w", err)
	}

	return &Services{
		API: server.New("api", cfg.APIAddress(), apiHandler, server.Options{
			ReadTimeout:  cfg.API.ReadTimeout,
			WriteTimeout: cfg.API.WriteTimeout,
			Logger:       logger,
		}),
		Static: server.New("static", cfg.StaticAddress(), staticHandler, server.Options{
			ReadTimeout:  cfg.Static.ReadTimeout,
			WriteTimeout: cfg.Static.WriteTimeout,
			Logger:       logger,
		}),
	}, nil
}

// Run はサービスを組み立てて起動し、両方が終了するまでブロックする
// 通常の運用では戻らない
func Run(cfg *config.Config, logger *slog.Logger) error {
	// デバッグモードではルート一覧などを標準出力に書くため
	gin.SetMode(gin.ReleaseMode)

	svcs, err := Build(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("サービスを起動します",
		"api", svcs.API.Addr(),
		"static", svcs.Static.Addr(),
		"root", cfg.Static.Root)

	return server.RunAll(svcs.API, svcs.Static)
}
