package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewRouter(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	assert.NotNil(t, r)
	assert.Empty(t, r.basePath)
	assert.Empty(t, r.registrars)
}

func TestRouterWithBasePath(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithBasePath("/api"))

	assert.Equal(t, "/api", r.basePath)
}

func TestRouterRegister(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	group := NewDomainGroup("test", "/test")
	r.Register(group)

	assert.Len(t, r.registrars, 1)
}

func TestRouterSetup(t *testing.T) {
	t.Run("registers routes at the root by default", func(t *testing.T) {
		engine := gin.New()
		r := NewRouter(engine)

		group := NewDomainGroup("items", "/items")
		group.GET("", func(c *gin.Context) {
			c.String(http.StatusOK, "all items")
		})

		r.Register(group)
		r.Setup()

		req := httptest.NewRequest("GET", "/items", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "all items", w.Body.String())
	})

	t.Run("applies base path prefix", func(t *testing.T) {
		engine := gin.New()
		r := NewRouter(engine, WithBasePath("/api"))

		group := NewDomainGroup("test", "/test")
		group.GET("/ping", func(c *gin.Context) {
			c.String(http.StatusOK, "pong")
		})

		r.Register(group)
		r.Setup()

		req := httptest.NewRequest("GET", "/api/test/ping", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "pong", w.Body.String())
	})
}

func TestDomainGroup(t *testing.T) {
	t.Run("creates group with name and prefix", func(t *testing.T) {
		g := NewDomainGroup("items", "/items")
		assert.Equal(t, "items", g.Name())
		assert.Equal(t, "/items", g.Prefix())
	})

	t.Run("registers all verbs", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("items", "/items")
		echo := func(method string) gin.HandlerFunc {
			return func(c *gin.Context) {
				c.String(http.StatusOK, method)
			}
		}
		g.GET("/:id", echo("GET"))
		g.POST("", echo("POST"))
		g.PUT("/:id", echo("PUT"))
		g.DELETE("/:id", echo("DELETE"))

		g.RegisterRoutes(engine.Group(""))

		for _, tt := range []struct {
			method string
			path   string
		}{
			{"GET", "/items/1"},
			{"POST", "/items"},
			{"PUT", "/items/1"},
			{"DELETE", "/items/1"},
		} {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.method, w.Body.String())
		}
	})

	t.Run("applies group middleware", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("items", "/items")
		g.Use(func(c *gin.Context) {
			c.Header("X-Group", "items")
			c.Next()
		})
		g.GET("", func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})

		g.RegisterRoutes(engine.Group(""))

		req := httptest.NewRequest("GET", "/items", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, "items", w.Header().Get("X-Group"))
	})
}
