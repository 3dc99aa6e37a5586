package server

import (
	"exercise-tracker/cache"
	"exercise-tracker/confs"
	"exercise-tracker/handlers"
	httpHandler "exercise-tracker/handlers/http"
	"exercise-tracker/repositories"
	"exercise-tracker/usecases"
	"exercise-tracker/ws"
	"net/http"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app       *gin.Engine
	cfg       *confs.Config
	userCache *cache.UserCache
}

// NewServer wires repositories, use cases and handlers onto a gin engine.
func NewServer(cfg *confs.Config, store Store) *Server {
	s := &Server{
		app:       gin.Default(),
		cfg:       cfg,
		userCache: cache.NewUserCache(cfg.UserCacheSize),
	}
	s.routes(store)
	return s
}

// Handler exposes the engine, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.app
}

func (s *Server) Start() error {
	return s.app.Run(":" + s.cfg.Port)
}

func (s *Server) routes(store Store) {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	s.app.Use(cors.New(config))

	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "OK",
		})
	})

	// Landing page and assets
	s.app.Static("/public", s.cfg.StaticDir)
	s.app.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(s.cfg.ViewsDir, "index.html"))
	})

	// Users are immutable, so lookups by id go through the cache
	userRepo := repositories.NewCachedUserRepository(store.Users, s.userCache)

	manager := ws.NewManager()

	userUseCase := usecases.NewUserUseCase(userRepo)
	exerciseUseCase := usecases.NewExerciseUseCase(userRepo, store.Exercises, handlers.NewFeedNotifier(manager))

	userHandler := httpHandler.NewUserHandler(userUseCase)
	exerciseHandler := httpHandler.NewExerciseHandler(exerciseUseCase)
	feedHandler := handlers.NewFeedHandler(manager, userUseCase)
	cacheHandler := handlers.NewCacheHandler(s.userCache)

	api := s.app.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("", userHandler.GetAllUsers)
			users.POST("/:_id/exercises", exerciseHandler.AddExercise)
			users.GET("/:_id/logs", exerciseHandler.GetLogs)
			users.GET("/:_id/feed", feedHandler.HandleUserFeed)
		}

		api.GET("/feeds", feedHandler.GetSubscribedUsers)

		cacheRoutes := api.Group("/cache")
		{
			cacheRoutes.GET("/stats", cacheHandler.GetCacheStats)
			cacheRoutes.POST("/clear", cacheHandler.ClearCache)
		}
	}
}
