package api

import (
	"aistudio-academy/config"
	_ "aistudio-academy/docs"
	"aistudio-academy/internal/api/v1/catalog"
	"aistudio-academy/internal/api/v1/generation"
	"aistudio-academy/internal/api/v1/playground"
	showcaseapi "aistudio-academy/internal/api/v1/showcase"
	"aistudio-academy/internal/database"
	"aistudio-academy/internal/genai"
	"aistudio-academy/internal/handoff"
	"aistudio-academy/internal/idgen"
	"aistudio-academy/internal/middleware"
	"aistudio-academy/internal/services"
	"aistudio-academy/internal/showcase"
	"aistudio-academy/internal/utils"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Deps are the collaborators the HTTP layer is built from.
type Deps struct {
	Client       *genai.Client
	Channels     *handoff.Channels
	Store        *showcase.Store
	AllowOrigins []string
}

// NewRouter wires storage, the generation backend and the handlers from cfg.
func NewRouter(cfg *config.Config) (*gin.Engine, error) {
	var mailbox handoff.Mailbox = handoff.NewMemoryMailbox(cfg.HandoffTTL)
	if cfg.RedisEnabled() {
		if err := database.ConnectRedis(cfg); err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		mailbox = handoff.NewRedisMailbox(database.RedisClient, cfg.HandoffTTL)
	}

	repo, err := newRepository(cfg)
	if err != nil {
		return nil, err
	}

	backend, err := genai.NewBackend(cfg)
	if err != nil {
		return nil, err
	}

	store := showcase.NewStore(repo,
		showcase.WithIDGenerator(idgen.New(cfg.IDStrategy)),
		showcase.WithLocation(cfg.CommentLocation()),
	)

	return SetupRouter(Deps{
		Client:       genai.NewClient(backend),
		Channels:     handoff.NewChannels(mailbox),
		Store:        store,
		AllowOrigins: splitOrigins(cfg.AllowOrigins),
	}), nil
}

func newRepository(cfg *config.Config) (showcase.Repository, error) {
	switch cfg.StoreBackend {
	case "memory":
		return showcase.NewMemoryRepository(), nil
	case "redis":
		if database.RedisClient == nil {
			return nil, fmt.Errorf("STORE_BACKEND=redis requires REDIS_HOST")
		}
		return showcase.NewRedisRepository(database.RedisClient), nil
	case "gorm", "":
		db, err := database.Connect(cfg)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		repo := showcase.NewGormRepository(db)
		if err := repo.Migrate(); err != nil {
			return nil, fmt.Errorf("migrate database: %w", err)
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
}

func splitOrigins(csv string) []string {
	var origins []string
	for _, o := range strings.Split(csv, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// SetupRouter registers middleware and routes on a new engine.
func SetupRouter(deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logger(), middleware.Metrics())

	origins := deps.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.SessionHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.SessionHeader, middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.NewSuccessResponse("ok", nil))
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		catalog.RegisterRoutes(v1)
		generation.RegisterRoutes(v1, generation.NewHandler(deps.Client))

		sessions := v1.Group("/")
		sessions.Use(middleware.Session())
		{
			playground.RegisterRoutes(sessions, playground.NewHandler(services.NewPlaygroundService(deps.Client, deps.Channels)))
			showcaseapi.RegisterRoutes(sessions, showcaseapi.NewHandler(services.NewShowcaseService(deps.Store, deps.Channels)))
		}
	}

	return router
}
