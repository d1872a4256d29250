package server

import (
	"log/slog"
	"time"

	"anitrack/internal/api/controller"
	"anitrack/internal/api/repository"
	"anitrack/internal/api/response"
	"anitrack/internal/auth"
	"anitrack/internal/notify"

	"github.com/gin-gonic/gin"
)

// Server wires the controllers and middleware into a gin engine.
type Server struct {
	engine *gin.Engine
}

// NewServer builds the routed engine. Everything past /register and
// /login sits behind the session gate.
func NewServer(
	secret []byte,
	sessions repository.SessionRepository,
	hub *notify.Hub,
	users *controller.UserController,
	anime *controller.AnimeController,
	watchList *controller.WatchListController,
) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())

	engine.POST("/register", users.Register)
	engine.POST("/login", users.Login)
	engine.GET("/ws", notify.HandleWebSocket(hub, secret, sessions))

	authed := engine.Group("/")
	authed.Use(auth.RequireSession(secret, sessions))
	authed.POST("/anime/create", anime.Create)
	authed.PUT("/anime/update/:id", anime.Update)
	authed.DELETE("/anime/delete/:id", anime.Delete)
	authed.GET("/user/list", watchList.List)
	authed.GET("/user/list/:id", watchList.Get)
	authed.PUT("/user/list/:id", watchList.Update)
	authed.DELETE("/user/list/:id", watchList.Delete)

	engine.NoRoute(response.UnknownEndpoint)

	return &Server{engine: engine}
}

// Engine exposes the underlying handler for the http server.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
