package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *Err) Error() string {
	return e.Message
}

func RenderErr(ctx *gin.Context, err *Err) {
	if err.StatusCode >= http.StatusInternalServerError {
		zap.L().Error("server error",
			zap.Int("status", err.StatusCode),
			zap.String("message", err.Message),
			zap.String("path", ctx.Request.URL.Path),
		)
	}

	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Message:    err.Error(),
	}
}

func ErrNotFound(resource, key string, value interface{}) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Message:    fmt.Sprintf("%v not found by %v (%v)", resource, key, value),
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		StatusCode: http.StatusConflict,
		Message:    err.Error(),
	}
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Message:    err.Error(),
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Message:    "wrong credentials",
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		Message:    err.Error(),
	}
}

func ErrServiceUnavailable(err error) *Err {
	return &Err{
		StatusCode: http.StatusServiceUnavailable,
		Message:    "storage temporarily unavailable, please retry",
	}
}

func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return &Err{
		StatusCode: http.StatusInternalServerError,
		Message:    "internal server error",
	}
}
