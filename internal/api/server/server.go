package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bhanu2006-24/imdb-analysis/internal/api/handlers"
	"github.com/bhanu2006-24/imdb-analysis/internal/api/middleware"
	"github.com/bhanu2006-24/imdb-analysis/internal/config"
	"github.com/bhanu2006-24/imdb-analysis/internal/dataset"
)

type Server struct {
	cfg     *config.Config
	catalog *dataset.Catalog
	router  *gin.Engine
}

func New(cfg *config.Config, catalog *dataset.Catalog) *Server {
	if cfg.Server.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:     cfg,
		catalog: catalog,
		router:  gin.New(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(middleware.SilentLogger())
	s.router.Use(middleware.Metrics())

	// CORS Configuration — the dashboard frontend is served from elsewhere
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}

	s.router.Use(cors.New(corsConfig))
}

func (s *Server) setupRoutes() {
	filterHandler := handlers.NewFilterHandler(s.catalog)
	overviewHandler := handlers.NewOverviewHandler(s.catalog)
	genreHandler := handlers.NewGenreHandler(s.catalog)
	castHandler := handlers.NewCastHandler(s.catalog)
	yearlyHandler := handlers.NewYearlyHandler(s.catalog)
	scatterHandler := handlers.NewScatterHandler(s.catalog)
	corrHandler := handlers.NewCorrelationHandler(s.catalog)
	movieHandler := handlers.NewMovieHandler(s.catalog)

	// Health Check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "imdb-analysis"})
	})

	// Every route is read-only over the startup snapshot, so no locking
	// and no auth — the whole API is public.
	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/filters", filterHandler.GetFilters)
		v1.GET("/overview", overviewHandler.GetOverview)
		v1.GET("/genres", genreHandler.GetGenreAnalysis)
		v1.GET("/cast", castHandler.GetCastAnalysis)
		v1.GET("/yearly", yearlyHandler.GetYearlyTrends)
		v1.GET("/scatter", scatterHandler.GetScatter)
		v1.GET("/correlation", corrHandler.GetCorrelation)
		v1.GET("/movies", movieHandler.GetMovies)
		v1.GET("/export", movieHandler.ExportMovies)
	}
}

// Router exposes the gin engine for httptest.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start runs the server on the configured port
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
