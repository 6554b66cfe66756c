// Package static はディレクトリ配下のファイルを配信するサービス
//
// 責務:
//   - URLパス / 以下をドキュメントルート配下のファイルに対応付ける
//   - ディレクトリへのリクエストには index.html を返す
//   - 見つからないパスには 404 を返す（ルートに 404.html があればその内容）
//
// アップロード・削除・ディレクトリ一覧は提供しない。
package static

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

const (
	indexFile    = "index.html"
	notFoundFile = "404.html"
)

// New は root を配信するハンドラを作成する
// root が存在しないかディレクトリでない場合はエラー
func New(root string, logger *slog.Logger) (http.Handler, error) {
	if logger == nil {
		logger = slog.Default()
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("ドキュメントルートを開けません: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("ドキュメントルートがディレクトリではありません: %s", root)
	}

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	// gin のリカバリーログはリクエストヘッダーを含むため使わない
	engine.Use(gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, err any) {
		logger.Error("ハンドラでpanicが発生しました", "error", fmt.Sprint(err))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))

	engine.NoRoute(notFound(root))
	engine.NoMethod(func(c *gin.Context) {
		c.String(http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	// GET と HEAD を登録する
	engine.StaticFS("/", indexOnlyFS{fs: http.Dir(root)})

	return engine, nil
}

// notFound は 404 レスポンスを返すハンドラ
// 404.html はリクエストの度に読むため、実行中の差し替えも反映される
func notFound(root string) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := os.ReadFile(filepath.Join(root, notFoundFile))
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				_ = c.Error(err)
			}
			c.String(http.StatusNotFound, "Not Found")
			return
		}
		c.Data(http.StatusNotFound, "text/html; charset=utf-8", data)
	}
}
