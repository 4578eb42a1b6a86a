package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/leon37/promptboard/internal/api/response"
	"github.com/leon37/promptboard/internal/service"
)

type ChatController struct {
	service *service.ChatService
}

func NewChatController(s *service.ChatService) *ChatController {
	return &ChatController{service: s}
}

type ChatRequest struct {
	Prompt string `json:"prompt" example:"Say hello"`
}

type ChatResponse struct {
	Reply string `json:"reply" example:"Hello!"`
}

// Chat 转发到补全服务
// @Summary 文本补全
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body ChatRequest true "prompt"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} response.ErrorBody "Missing prompt"
// @Failure 500 {object} response.ErrorBody "上游错误信息"
// @Router /chat [post]
func (ctrl *ChatController) Chat(c *gin.Context) {
	var req ChatRequest
	if !bindJSON(c, &req) {
		return
	}

	reply, err := ctrl.service.Chat(c.Request.Context(), req.Prompt)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, ChatResponse{Reply: reply})
}
