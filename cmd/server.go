// Package main はtwinserveサーバーコマンドの実装です
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"twinserve/internal/bootstrap"
	"twinserve/internal/config"
)

func main() {
	// コマンドラインオプション
	var (
		configPath = flag.String("config", "", "YAML設定ファイルのパス")
		help       = flag.Bool("help", false, "ヘルプを表示")
	)

	flag.Parse()

	// ヘルプ表示
	if *help {
		fmt.Println("twinserve")
		fmt.Println()
		fmt.Println("使用方法:")
		fmt.Println("  server [オプション]")
		fmt.Println()
		fmt.Println("オプション:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("環境変数:")
		fmt.Println("  API_HOST, API_PORT, STATIC_HOST, STATIC_PORT, STATIC_ROOT")
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// 設定を読み込む
	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		logger.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}

	if err := bootstrap.Run(cfg, logger); err != nil {
		logger.Error("サービスが終了しました", "error", err)
		os.Exit(1)
	}
}
