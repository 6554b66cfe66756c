package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// Options はリスナーの動作設定
type Options struct {
	// タイムアウト設定（0 は無効）
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	Logger *slog.Logger
}

// Server は1つのHTTPリスナーを管理する構造体
type Server struct {
	name       string
	httpServer *http.Server
	logger     *slog.Logger
}

// New は新しいServerインスタンスを作成する
// ListenAndServe か Serve を呼ぶまでリッスンしない
func New(name, addr string, handler http.Handler, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("server", name)

	return &Server{
		name:   name,
		logger: logger,
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  opts.ReadTimeout,
			WriteTimeout: opts.WriteTimeout,
			ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
		},
	}
}

// Name はサーバー名を返す
func (s *Server) Name() string { return s.name }

// Addr は設定されたリッスンアドレスを返す
func (s *Server) Addr() string { return s.httpServer.Addr }

// ListenAndServe はアドレスにバインドして接続を受け付ける
// サーバーが動いている間はブロックする。Shutdown による終了は nil を返す
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("%s: バインドに失敗: %w", s.name, err)
	}
	return s.Serve(ln)
}

// Serve は与えられたリスナーで接続を受け付ける
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("HTTPサーバーを起動しています", "addr", ln.Addr().String())
	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s: サーバーが停止しました: %w", s.name, err)
	}
	return nil
}

// Shutdown はサーバーを停止する
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("%s: シャットダウンに失敗: %w", s.name, err)
	}
	s.logger.Info("サーバーが停止しました")
	return nil
}
