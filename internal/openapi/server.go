package openapi

import (
	"math/big"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface はAPIの各オペレーションを表す
type ServerInterface interface {
	// (GET /status)
	GetStatus(c *gin.Context)
	// (GET /items/{item_id})
	GetItem(c *gin.Context, itemID *big.Int, params GetItemParams)
}

// GetItemParams は GetItem のクエリパラメータ
type GetItemParams struct {
	Q *string `form:"q" json:"q,omitempty"`
}

// ParamError はパラメータの結合に失敗したことを表す
type ParamError struct {
	In    string // パラメータの位置 ("path")
	Name  string
	Input string
	Err   error
}

func (e *ParamError) Error() string {
	return "invalid " + e.In + " parameter " + e.Name + ": " + e.Err.Error()
}

func (e *ParamError) Unwrap() error { return e.Err }

// ParamErrorHandler はパラメータエラー時のレスポンスを書き込む
type ParamErrorHandler func(c *gin.Context, err *ParamError)

// ServerInterfaceWrapper はパラメータを結合してServerInterfaceを呼び出す
type ServerInterfaceWrapper struct {
	Handler      ServerInterface
	ErrorHandler ParamErrorHandler
}

// GetStatus operation middleware
func (siw *ServerInterfaceWrapper) GetStatus(c *gin.Context) {
	siw.Handler.GetStatus(c)
}

// GetItem operation middleware
func (siw *ServerInterfaceWrapper) GetItem(c *gin.Context) {
	// gin がデコード済みの値を渡すため、ここでは再デコードしない
	raw := c.Param("item_id")

	var n int64
	itemID := new(big.Int)
	err := runtime.BindStyledParameterWithOptions("simple", "item_id", raw, &n,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationUndefined, Explode: false, Required: true})
	// int64 に収まらない整数は big.Int として受け付ける
	if err == nil {
		itemID.SetInt64(n)
	} else if _, ok := itemID.SetString(raw, 10); !ok {
		siw.ErrorHandler(c, &ParamError{In: "path", Name: "item_id", Input: raw, Err: err})
		return
	}

	var params GetItemParams

	// 同じキーが複数ある場合は最後の値を使う
	if values := c.QueryArray("q"); len(values) > 0 {
		q := values[len(values)-1]
		params.Q = &q
	}

	siw.Handler.GetItem(c, itemID, params)
}

// RegisterHandlers はServerInterfaceのルートをginルーターに登録する
func RegisterHandlers(router gin.IRoutes, si ServerInterface, errHandler ParamErrorHandler) {
	if errHandler == nil {
		errHandler = func(c *gin.Context, err *ParamError) {
			c.JSON(http.StatusBadRequest, HTTPError{Detail: err.Error()})
		}
	}
	wrapper := ServerInterfaceWrapper{
		Handler:      si,
		ErrorHandler: errHandler,
	}

	router.GET("/status", wrapper.GetStatus)
	router.GET("/items/:item_id", wrapper.GetItem)
}
