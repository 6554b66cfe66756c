// Package api はステータス確認とパラメータのエコーを行うAPIサービス
package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"twinserve/internal/openapi"
)

// New はAPIサービスのハンドラを作成する
// 返すハンドラはCORSポリシーでラップ済み
func New(logger *slog.Logger) (http.Handler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	doc, err := openapi.Load()
	if err != nil {
		return nil, fmt.Errorf("APIサービスの作成に失敗: %w", err)
	}
	engine := newEngine(Handler{}, doc, logger)
	return rejectDisallowedPreflight(newCORS().Handler(engine)), nil
}

// newEngine はルートを登録したginエンジンを作成する
func newEngine(si openapi.ServerInterface, doc *openapi3.T, logger *slog.Logger) *gin.Engine {
	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	// アクセスログは出さない。gin のリカバリーログはヘッダーを含むため無効にする
	engine.Use(gin.CustomRecoveryWithWriter(nil, recoverPanic(logger)))
	engine.NoRoute(handleNotFound)
	engine.NoMethod(handleMethodNotAllowed)

	openapi.RegisterHandlers(engine, si, handleParamError)

	engine.GET("/openapi.json", func(c *gin.Context) {
		c.JSON(http.StatusOK, doc)
	})

	return engine
}

// newCORS はクロスオリジンポリシーを作成する
//
// 任意のオリジン（資格情報付きのためOriginをそのまま返す）、資格情報、
// 任意のリクエストヘッダーを許可し、メソッドはGETのみ許可する
func newCORS() *cors.Cors {
	return cors.New(cors.Options{
		AllowOriginFunc:  func(string) bool { return true },
		AllowedMethods:   []string{http.MethodGet},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
}
