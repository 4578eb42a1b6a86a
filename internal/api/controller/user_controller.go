package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/leon37/promptboard/internal/api/middleware"
	"github.com/leon37/promptboard/internal/api/response"
	"github.com/leon37/promptboard/internal/model"
	"github.com/leon37/promptboard/internal/service"
)

type UserController struct {
	service *service.UserService
}

func NewUserController(s *service.UserService) *UserController {
	return &UserController{service: s}
}

type DeleteUserResponse struct {
	Message     string            `json:"message" example:"User and their posts deleted"`
	DeletedUser *model.PublicUser `json:"deletedUser"`
}

// Delete 注销账号
// @Summary 删除用户及其全部帖子
// @Description 只能删除自己
// @Tags User
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户 ID"
// @Success 200 {object} DeleteUserResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Failure 403 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /user/{id} [delete]
func (ctrl *UserController) Delete(c *gin.Context) {
	callerID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.MsgInvalidToken)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 || uint64(uint(id)) != id {
		response.FromError(c, service.ErrInvalidUserID)
		return
	}

	deleted, err := ctrl.service.DeleteUser(c.Request.Context(), callerID, uint(id))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, DeleteUserResponse{
		Message:     "User and their posts deleted",
		DeletedUser: deleted,
	})
}
