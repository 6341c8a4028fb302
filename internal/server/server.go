package server

import (
	"net/http"

	"jobboard/internal/config"
	"jobboard/internal/handler"
	"jobboard/internal/middleware"
	"jobboard/internal/repository"
	"jobboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	cfg    *config.Config
	logger *zap.Logger
	log    *logrus.Logger
}

func NewServer(db *sqlx.DB, cfg *config.Config, logger *zap.Logger, log *logrus.Logger) *Server {
	router := gin.Default()

	s := &Server{
		router: router,
		db:     db,
		cfg:    cfg,
		logger: logger,
		log:    log,
	}

	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	orgRepo := repository.NewOrganizationRepository(s.db, s.logger)
	jobRepo := repository.NewJobRepository(s.db, s.logger)
	userRepo := repository.NewUserRepository(s.db, s.logger)

	orgService := service.NewOrganizationService(orgRepo, jobRepo, s.logger)
	jobService := service.NewJobService(jobRepo, orgRepo, s.logger)
	userService := service.NewUserService(userRepo, s.logger)

	orgHandler := handler.NewOrganizationHandler(orgService, s.log)
	jobHandler := handler.NewJobHandler(jobService, s.log)
	userHandler := handler.NewUserHandler(userService, s.log)

	// Ping route for health check
	s.router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	adminOnly := middleware.Require(middleware.Authenticated(), middleware.Admin())

	// Every API route passes through Identify; the gates on each route decide
	// whether missing identity matters.
	api := s.router.Group("/api")
	api.Use(middleware.Identify([]byte(s.cfg.Auth.JWTSecret), s.logger))
	{
		orgs := api.Group("/organizations")
		orgs.GET("", orgHandler.List)
		orgs.GET("/:handle", orgHandler.Get)
		orgs.POST("", adminOnly, orgHandler.Create)
		orgs.PATCH("/:handle", adminOnly, orgHandler.Update)
		orgs.DELETE("/:handle", adminOnly, orgHandler.Delete)

		jobs := api.Group("/jobs")
		jobs.GET("", jobHandler.List)
		jobs.GET("/:id", jobHandler.Get)
		jobs.POST("", adminOnly, jobHandler.Create)
		jobs.PATCH("/:id", adminOnly, jobHandler.Update)
		jobs.DELETE("/:id", adminOnly, jobHandler.Delete)

		adminOrOwner := middleware.Require(middleware.Authenticated(), middleware.AdminOrOwner("username"))
		users := api.Group("/users")
		users.POST("", adminOnly, userHandler.Create)
		users.GET("", adminOnly, userHandler.List)
		users.GET("/:username", adminOrOwner, userHandler.Get)
		users.PATCH("/:username", adminOrOwner, userHandler.Update)
		users.DELETE("/:username", adminOrOwner, userHandler.Delete)
	}
}

func (s *Server) Run(addr string) {
	s.log.Infof("Server starting on port %s...", addr)
	if err := s.router.Run(addr); err != nil {
		s.log.Fatalf("Server failed to start: %v", err)
	}
}
