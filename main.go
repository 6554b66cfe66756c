package main

import (
	"log/slog"
	"os"

	"twinserve/internal/bootstrap"
	"twinserve/internal/config"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// 設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		logger.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}

	// 両方のサービスが終了するまで戻らない
	if err := bootstrap.Run(cfg, logger); err != nil {
		logger.Error("サービスが終了しました", "error", err)
		os.Exit(1)
	}
}
