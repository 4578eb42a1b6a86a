package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/leon37/promptboard/internal/auth"
	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type authorizerFunc func(token string) (uint, error)

func (f authorizerFunc) Authorize(token string) (uint, error) { return f(token) }

func protectedEngine(calls *int) *gin.Engine {
	r := gin.New()
	r.Use(Authorize(authorizerFunc(func(token string) (uint, error) {
		if token == "good" {
			return 7, nil
		}
		return 0, auth.ErrTokenMalformed
	})))
	r.GET("/secret", func(c *gin.Context) {
		*calls++
		id, ok := UserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": id})
	})
	return r
}

func TestAuthorize(t *testing.T) {
	calls := 0
	r := protectedEngine(&calls)

	apitest.Handler(r).Get("/secret").
		Expect(t).Status(http.StatusUnauthorized).Body(`{"error":"Missing token"}`).End()

	for _, header := range []string{"Bearer bad", "Basic good", "Bearer", "Bearer   ", "good"} {
		apitest.Handler(r).Get("/secret").Header("Authorization", header).
			Expect(t).Status(http.StatusUnauthorized).Body(`{"error":"Invalid token"}`).End()
	}
	assert.Equal(t, 0, calls)

	apitest.Handler(r).Get("/secret").Header("Authorization", "Bearer good").
		Expect(t).Status(http.StatusOK).Assert(jsonpath.Equal("$.userId", float64(7))).End()
	assert.Equal(t, 1, calls)
}

func TestUserID_Unset(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := UserID(c)
	assert.False(t, ok)

	c.Set(UserIDKey, "not-a-uint")
	_, ok = UserID(c)
	assert.False(t, ok)
}

func TestCors(t *testing.T) {
	r := gin.New()
	r.Use(Cors([]string{"https://app.example"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	apitest.Handler(r).Method(http.MethodOptions).URL("/x").Header("Origin", "https://app.example").
		Expect(t).
		Status(http.StatusNoContent).
		Header("Access-Control-Allow-Origin", "https://app.example").
		End()

	apitest.Handler(r).Get("/x").Header("Origin", "https://evil.example").
		Expect(t).
		Status(http.StatusOK).
		HeaderNotPresent("Access-Control-Allow-Origin").
		End()

	open := gin.New()
	open.Use(Cors([]string{"*"}))
	open.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	apitest.Handler(open).Get("/x").Header("Origin", "https://any.example").
		Expect(t).
		Status(http.StatusOK).
		Header("Access-Control-Allow-Origin", "*").
		End()
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), AccessLog())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	apitest.Handler(r).Get("/x").Header(RequestIDHeader, "abc-123").
		Expect(t).Status(http.StatusOK).Header(RequestIDHeader, "abc-123").End()

	res := apitest.Handler(r).Get("/x").Expect(t).Status(http.StatusOK).HeaderPresent(RequestIDHeader).End()
	assert.Len(t, res.Response.Header.Get(RequestIDHeader), 36)
}

func TestAuthorize_ErrorIsNotLeaked(t *testing.T) {
	r := gin.New()
	r.Use(Authorize(authorizerFunc(func(string) (uint, error) {
		return 0, errors.New("db password is hunter2")
	})))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	apitest.Handler(r).Get("/x").Header("Authorization", "Bearer t").
		Expect(t).Status(http.StatusUnauthorized).Body(`{"error":"Invalid token"}`).End()
}
