package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leon37/promptboard/internal/api/response"
)

const msgBadBody = "Invalid request body"

// bindJSON 空 body 按零值处理，交给 service 做字段校验；JSON 格式错误直接 400
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, http.StatusBadRequest, msgBadBody)
		return false
	}
	return true
}
