package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/big"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"twinserve/internal/openapi"
)

// Handler は openapi.ServerInterface を実装する
// 状態を持たないため、リクエスト間で結果が変わることはない
type Handler struct{}

// GetStatus は稼働確認エンドポイントの実装
func (Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, openapi.StatusResponse{Status: openapi.StatusUp})
}

// GetItem はパス・クエリパラメータをそのまま返す
func (Handler) GetItem(c *gin.Context, itemID *big.Int, params openapi.GetItemParams) {
	c.JSON(http.StatusOK, openapi.ItemResponse{
		ItemID: json.Number(itemID.String()),
		Q:      params.Q,
	})
}

// handleParamError はパラメータエラーを 422 として返す
func handleParamError(c *gin.Context, err *openapi.ParamError) {
	detail := openapi.ErrorDetail{
		Type:  "int_parsing",
		Loc:   []string{err.In, err.Name},
		Msg:   "Input should be a valid integer, unable to parse string as an integer",
		Input: err.Input,
	}

	c.JSON(http.StatusUnprocessableEntity, openapi.ValidationError{
		Detail: []openapi.ErrorDetail{detail},
	})
}

func handleNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, openapi.HTTPError{Detail: "Not Found"})
}

func handleMethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, openapi.HTTPError{Detail: "Method Not Allowed"})
}

// recoverPanic はハンドラ内のpanicを 500 として返す
// リクエストの内容（ヘッダーなど）はログに出さない。リカバリー後もサービスは動き続ける
func recoverPanic(logger *slog.Logger) gin.RecoveryFunc {
	return func(c *gin.Context, err any) {
		logger.Error("ハンドラでpanicが発生しました", "error", fmt.Sprint(err))
		c.String(http.StatusInternalServerError, "Internal Server Error")
		c.Abort()
	}
}

// rejectDisallowedPreflight はGET以外を要求するプリフライトを 400 で拒否する
func rejectDisallowedPreflight(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method := r.Header.Get("Access-Control-Request-Method")
		if r.Method == http.MethodOptions && r.Header.Get("Origin") != "" &&
			method != "" && strings.ToUpper(method) != http.MethodGet {
			w.Header().Add("Vary", "Origin")
			http.Error(w, "Disallowed CORS method", http.StatusBadRequest)
			return
		}
		next.ServeHTTP(w, r)
	})
}
