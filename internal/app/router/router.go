// Package router はアプリケーションのHTTPルーティングを定義します。
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "mood_backend/internal/feature/auth/transport/handler"
	contenthandler "mood_backend/internal/feature/content/transport/handler"
	moodhandler "mood_backend/internal/feature/mood/transport/handler"
	"mood_backend/internal/platform/http/handler"
	"mood_backend/internal/platform/middleware"
)

// Handlers groups the feature handlers mounted on the router.
type Handlers struct {
	Auth    *authhandler.AuthHandler
	Mood    *moodhandler.MoodHandler
	Content *contenthandler.ContentHandler
}

// NewRouter builds the gin engine. allowedOrigin is the single caller allowed by CORS.
func NewRouter(h Handlers, allowedOrigin string) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(nil); err != nil {
		panic(err)
	}

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{allowedOrigin},
		AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 導通確認用
	r.GET("/", handler.Root)
	r.GET("/api/health", handler.Health)
	r.HEAD("/api/health", handler.Health)

	api := r.Group("/api")
	{
		// 新規ユーザー登録・ログイン
		api.POST("/auth/signup", h.Auth.Signup)
		api.POST("/auth/login", h.Auth.Login)

		// 気分の記録と履歴
		api.POST("/mood", h.Mood.Save)
		api.GET("/mood/history", h.Mood.History)

		api.GET("/songs", h.Content.Songs)
		api.GET("/quotes", h.Content.Quotes)
	}

	return r
}
