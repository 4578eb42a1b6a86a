package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/leon37/promptboard/internal/api/response"
	"github.com/leon37/promptboard/internal/service"
)

type PostController struct {
	service *service.PostService
}

func NewPostController(s *service.PostService) *PostController {
	return &PostController{service: s}
}

type CreatePostRequest struct {
	Title   string `json:"title" example:"Hello"`
	Content string `json:"content" example:"first post"`
	UserID  uint   `json:"userId" example:"1"`
}

// List 帖子列表
// @Summary 帖子列表
// @Description 按 id 升序返回全部帖子
// @Tags Post
// @Produce json
// @Success 200 {array} model.Post
// @Failure 500 {object} response.ErrorBody
// @Router /posts [get]
func (ctrl *PostController) List(c *gin.Context) {
	posts, err := ctrl.service.ListPosts(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, posts)
}

// Create 发帖
// @Summary 发帖
// @Description title 必填，userId 必须是已存在的用户
// @Tags Post
// @Accept json
// @Produce json
// @Param request body CreatePostRequest true "帖子内容"
// @Success 200 {object} model.Post
// @Failure 400 {object} response.ErrorBody
// @Router /posts [post]
func (ctrl *PostController) Create(c *gin.Context) {
	var req CreatePostRequest
	if !bindJSON(c, &req) {
		return
	}

	post, err := ctrl.service.CreatePost(c.Request.Context(), service.PostInput{
		Title:   req.Title,
		Content: req.Content,
		UserID:  req.UserID,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, post)
}
