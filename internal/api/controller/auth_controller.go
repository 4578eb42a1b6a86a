package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leon37/promptboard/internal/api/middleware"
	"github.com/leon37/promptboard/internal/api/response"
	"github.com/leon37/promptboard/internal/service"
)

// AuthController 处理用户认证
type AuthController struct {
	authService *service.AuthService
}

// NewAuthController 构造函数
func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// ==========================================
// DTOs (请求/响应参数定义)
// ==========================================

// CredentialsRequest 注册和登录共用
type CredentialsRequest struct {
	Email    string `json:"email" example:"a@x.com"`
	Password string `json:"password" example:"pw1"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// ==========================================
// Handlers
// ==========================================

// Register 用户注册
// @Summary 用户注册
// @Description 创建新用户，密码以 bcrypt 哈希存储
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "注册参数"
// @Success 200 {object} model.PublicUser
// @Failure 400 {object} response.ErrorBody "参数缺失或邮箱已注册"
// @Router /register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req CredentialsRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := ctrl.authService.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, user)
}

// Login 用户登录
// @Summary 用户登录
// @Description 校验账号密码，颁发 JWT Token (有效期 1 小时)
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "登录参数"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} response.ErrorBody "账号或密码错误"
// @Router /login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req CredentialsRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := ctrl.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, LoginResponse{Token: token})
}

// Me 当前用户
// @Summary 当前用户
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.PublicUser
// @Failure 401 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody "用户已被删除"
// @Router /me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.MsgInvalidToken)
		return
	}

	user, err := ctrl.authService.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, user)
}
