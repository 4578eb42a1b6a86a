package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leon37/promptboard/internal/api/controller"
	"github.com/leon37/promptboard/internal/api/middleware"
	"github.com/leon37/promptboard/internal/api/response"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/leon37/promptboard/docs"
)

// Controllers 所有 handler 的集合
type Controllers struct {
	Auth *controller.AuthController
	Post *controller.PostController
	User *controller.UserController
	Chat *controller.ChatController
}

// NewRouter 创建 gin 引擎并挂好全局中间件
func NewRouter(ctrls Controllers, authorizer middleware.TokenAuthorizer, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			slog.ErrorContext(c.Request.Context(), "panic recovered", "panic", recovered)
			response.Error(c, http.StatusInternalServerError, response.MsgInternal)
		}),
		middleware.Cors(allowedOrigins),
	)
	RegisterRoutes(r, ctrls, authorizer)
	return r
}

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, ctrls Controllers, authorizer middleware.TokenAuthorizer) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/register", ctrls.Auth.Register)
	r.POST("/login", ctrls.Auth.Login)
	r.POST("/chat", ctrls.Chat.Chat)
	r.GET("/posts", ctrls.Post.List)
	r.POST("/posts", ctrls.Post.Create)

	protected := r.Group("/")
	protected.Use(middleware.Authorize(authorizer))
	{
		protected.GET("/me", ctrls.Auth.Me)
		protected.DELETE("/user/:id", ctrls.User.Delete)
	}
}
