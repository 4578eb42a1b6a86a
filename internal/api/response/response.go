package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leon37/promptboard/internal/auth"
	"github.com/leon37/promptboard/internal/service"
)

// ErrorBody 统一的错误响应结构
type ErrorBody struct {
	Error string `json:"error" example:"Invalid token"`
}

// MessageBody 只带一条提示信息
type MessageBody struct {
	Message string `json:"message"`
}

const (
	MsgMissingToken = "Missing token"
	MsgInvalidToken = "Invalid token"
	MsgInternal     = "internal server error"
)

// Success 成功响应，data 直接作为 body
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error 错误响应
func Error(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, ErrorBody{Error: msg})
}

// FromError 把业务错误映射成 HTTP 状态码和文案
func FromError(c *gin.Context, err error) {
	status, msg := Classify(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"err", err,
		)
	}
	Error(c, status, msg)
}

// Classify 返回 err 对应的状态码和对外文案
func Classify(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized, MsgInvalidToken
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, service.ErrUpstream):
		return http.StatusInternalServerError, err.Error()
	default:
		return http.StatusInternalServerError, MsgInternal
	}
}
