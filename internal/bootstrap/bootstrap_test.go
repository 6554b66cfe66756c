package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"twinserve/internal/config"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "index.html"), []byte("<h1>hello</h1>"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.API.Host = "127.0.0.1"
	cfg.Static.Host = "127.0.0.1"
	cfg.Static.Root = root
	return cfg
}

func TestBuild(t *testing.T) {
	cfg := testConfig(t)

	svcs, err := Build(cfg, testLogger())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if svcs.API.Name() != "api" || svcs.API.Addr() != "127.0.0.1:8000" {
		t.Errorf("予期しないAPIリスナー: %s %s", svcs.API.Name(), svcs.API.Addr())
	}
	if svcs.Static.Name() != "static" || svcs.Static.Addr() != "127.0.0.1:80" {
		t.Errorf("予期しない静的ファイルリスナー: %s %s", svcs.Static.Name(), svcs.Static.Addr())
	}
}

func TestBuild_MissingRoot(t *testing.T) {
	cfg := testConfig(t)
	cfg.Static.Root = filepath.Join(t.TempDir(), "missing")

	if _, err := Build(cfg, testLogger()); err == nil {
		t.Fatal("エラーが期待されましたが、エラーが発生しませんでした")
	}
}

// TestServicesServeIndependently は2つのサービスが別々のポートで応答することをテストする
func TestServicesServeIndependently(t *testing.T) {
	svcs, err := Build(testConfig(t), testLogger())
	if err != nil {
		t.Fatal(err)
	}

	apiLn, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	staticLn, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	go func() { _ = svcs.API.Serve(apiLn) }()
	go func() { _ = svcs.Static.Serve(staticLn) }()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = svcs.API.Shutdown(ctx)
		_ = svcs.Static.Shutdown(ctx)
	}()

	testCases := []struct {
		name           string
		url            string
		expectedStatus int
		expectedBody   string
	}{
		{"APIステータス", fmt.Sprintf("http://%s/status", apiLn.Addr()), http.StatusOK, `{"STATUS":"UP"}`},
		{"APIアイテム", fmt.Sprintf("http://%s/items/42?q=hello", apiLn.Addr()), http.StatusOK, `{"item_id":42,"q":"hello"}`},
		{"静的ファイルのルート", fmt.Sprintf("http://%s/", staticLn.Addr()), http.StatusOK, "<h1>hello</h1>"},
		{"静的ファイルサービスにAPIはない", fmt.Sprintf("http://%s/status", staticLn.Addr()), http.StatusNotFound, "Not Found"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Get(tc.url)
			if err != nil {
				t.Fatalf("HTTPリクエストでエラーが発生しました: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tc.expectedStatus {
				t.Errorf("予期しないステータスコード: got %d, want %d", resp.StatusCode, tc.expectedStatus)
			}
			body, _ := io.ReadAll(resp.Body)
			if got := strings.TrimSpace(string(body)); got != tc.expectedBody {
				t.Errorf("予期しないレスポンス: got %q, want %q", got, tc.expectedBody)
			}
		})
	}
}
