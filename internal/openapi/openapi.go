// Package openapi はAPIサービスのOpenAPI定義とgin向けのルート結合を提供する
package openapi

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var specYAML []byte

// StatusResponse は /status のレスポンス
type StatusResponse struct {
	Status string `json:"STATUS"`
}

// ItemResponse は /items/{item_id} のレスポンス
// item_id は桁数に上限のない整数
type ItemResponse struct {
	ItemID json.Number `json:"item_id"`
	Q      *string     `json:"q"`
}

// ValidationError はパラメータ検証エラーのレスポンス
type ValidationError struct {
	Detail []ErrorDetail `json:"detail"`
}

// ErrorDetail は検証エラー1件分の詳細
type ErrorDetail struct {
	Type  string   `json:"type"`
	Loc   []string `json:"loc"`
	Msg   string   `json:"msg"`
	Input any      `json:"input,omitempty"`
}

// HTTPError は 404 / 405 などのレスポンス
type HTTPError struct {
	Detail string `json:"detail"`
}

// StatusUp は稼働中を表すステータス値
const StatusUp = "UP"

// Load は埋め込まれたOpenAPI定義を読み込んで検証する
func Load() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(specYAML)
	if err != nil {
		return nil, fmt.Errorf("OpenAPI定義の読み込みに失敗: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("OpenAPI定義の検証に失敗: %w", err)
	}
	return doc, nil
}
