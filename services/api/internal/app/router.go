package app

import (
	"net/http"
	"time"

	"sekor-bkc/pkg/config"
	"sekor-bkc/pkg/jwt"
	"sekor-bkc/pkg/logger"
	"sekor-bkc/pkg/middleware"
	"sekor-bkc/pkg/queue"
	"sekor-bkc/pkg/response"
	"sekor-bkc/pkg/storage"
	apiHTTP "sekor-bkc/services/api/internal/controller/http"
	"sekor-bkc/services/api/internal/repo/persistent"
	"sekor-bkc/services/api/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const (
	apiName    = "Sekor BKC API"
	apiVersion = "1.0.0"
)

// Retired /api/auth prefix. Clients get a 307 until the sunset date.
var deprecatedRoutes = []middleware.DeprecatedRoute{
	{
		OldPrefix:    "/api/auth",
		NewPrefix:    "/api/v1/auth",
		DeprecatedAt: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		Sunset:       time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
	},
}

// Deps carries everything the router needs. Redis and Publisher may be nil.
type Deps struct {
	Config    *config.Config
	Logger    *logger.Logger
	DB        *gorm.DB
	Redis     *redis.Client
	Storage   storage.Storage
	Publisher queue.Publisher
	JWT       *jwt.Service
}

// NewRouter wires repositories, use cases and handlers onto a gin engine.
func NewRouter(deps Deps) *gin.Engine {
	cfg := deps.Config
	log := deps.Logger

	publisher := deps.Publisher
	if publisher == nil {
		publisher = queue.NopPublisher{}
	}

	// Initialize repositories
	userRepo := persistent.NewUserRepository(deps.DB)
	articleRepo := persistent.NewArticleRepository(deps.DB)
	authorRepo := persistent.NewAuthorRepository(deps.DB)
	storyRepo := persistent.NewStoryRepository(deps.DB)
	taxonomyRepo := persistent.NewTaxonomyRepository(deps.DB)
	interactionRepo := persistent.NewInteractionRepository(deps.DB)
	mediaRepo := persistent.NewMediaRepository(deps.DB)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, deps.JWT, log)
	articleUseCase := usecase.NewArticleUseCase(articleRepo, taxonomyRepo, log)
	storyUseCase := usecase.NewStoryUseCase(storyRepo, userRepo, taxonomyRepo, deps.Redis, publisher, log)
	authorUseCase := usecase.NewAuthorUseCase(authorRepo, publisher, log)
	categoryUseCase := usecase.NewCategoryUseCase(taxonomyRepo)
	interactionUseCase := usecase.NewInteractionUseCase(storyRepo, interactionRepo, log)
	mediaUseCase := usecase.NewMediaUseCase(mediaRepo, storyRepo, deps.Storage, log)

	// Initialize HTTP handlers
	authHandler := apiHTTP.NewAuthHandler(authUseCase, apiHTTP.CookieConfig{
		Secure:     cfg.IsProduction(),
		AccessTTL:  deps.JWT.AccessTTL(),
		RefreshTTL: deps.JWT.RefreshTTL(),
	}, log)
	articleHandler := apiHTTP.NewArticleHandler(articleUseCase, log)
	storyHandler := apiHTTP.NewStoryHandler(storyUseCase, log)
	authorHandler := apiHTTP.NewAuthorHandler(authorUseCase, log)
	categoryHandler := apiHTTP.NewCategoryHandler(categoryUseCase)
	interactionHandler := apiHTTP.NewInteractionHandler(interactionUseCase, log)
	mediaHandler := apiHTTP.NewMediaHandler(mediaUseCase, log)

	response.ExposeErrorChain(!cfg.IsProduction())

	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders:    []string{"Content-Length", "Link", middleware.HeaderRequestID, "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.Deprecation(deprecatedRoutes))

	r.NoRoute(func(c *gin.Context) {
		response.Abort(c, http.StatusNotFound, response.CodeNotFound, "Route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		response.Abort(c, http.StatusMethodNotAllowed, response.CodeMethodNotAllowed, "Method not allowed")
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		response.OK(c, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if local, ok := deps.Storage.(*storage.LocalStorage); ok {
		r.Static("/uploads", local.BasePath())
	}

	requireAuth := middleware.AuthMiddleware(deps.JWT)
	optionalAuth := middleware.OptionalAuthMiddleware(deps.JWT)

	api := r.Group("/api/v1")
	if cfg.RateLimitEnabled {
		api.Use(middleware.RateLimitMiddleware(deps.Redis, cfg.RateLimitMax, cfg.RateLimitWindow))
	}

	api.GET("", apiInfo)

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.GET("/profile", requireAuth, authHandler.Profile)
		auth.PATCH("/profile", requireAuth, authHandler.UpdateProfile)
		auth.GET("/me", requireAuth, authHandler.Profile)
		auth.POST("/logout", requireAuth, authHandler.Logout)
	}

	articles := api.Group("/articles")
	{
		articles.GET("", optionalAuth, articleHandler.ListArticles)
		articles.GET("/author/:authorId", optionalAuth, articleHandler.ListAuthorArticles)
		articles.GET("/:id", optionalAuth, articleHandler.GetArticle)
		articles.POST("", requireAuth, articleHandler.CreateArticle)
		articles.PATCH("/:id", requireAuth, articleHandler.UpdateArticle)
		articles.DELETE("/:id", requireAuth, articleHandler.DeleteArticle)
	}

	stories := api.Group("/stories")
	{
		stories.GET("", optionalAuth, storyHandler.ListStories)
		stories.GET("/me/all", requireAuth, storyHandler.ListMyStories)
		stories.GET("/:id", optionalAuth, storyHandler.GetStory)
		stories.POST("", requireAuth, storyHandler.CreateStory)
		stories.PATCH("/:id", requireAuth, storyHandler.UpdateStory)
		stories.DELETE("/:id", requireAuth, storyHandler.DeleteStory)
		stories.POST("/:id/submit", requireAuth, storyHandler.SubmitStory)
		stories.POST("/:id/review", requireAuth, storyHandler.ReviewStory)
		stories.POST("/:id/publish", requireAuth, storyHandler.PublishStory)
		stories.POST("/:id/archive", requireAuth, storyHandler.ArchiveStory)
		stories.GET("/:id/stats", requireAuth, storyHandler.StoryStats)

		stories.GET("/:id/comments", interactionHandler.ListComments)
		stories.POST("/:id/comments", requireAuth, interactionHandler.AddComment)
		stories.POST("/:id/bookmark", requireAuth, interactionHandler.Bookmark)
		stories.DELETE("/:id/bookmark", requireAuth, interactionHandler.RemoveBookmark)
		stories.POST("/:id/react", requireAuth, interactionHandler.React)
		stories.POST("/:id/share", requireAuth, interactionHandler.Share)
	}

	authors := api.Group("/authors")
	{
		authors.GET("", optionalAuth, authorHandler.ListAuthors)
		authors.GET("/following", requireAuth, authorHandler.ListFollowing)
		authors.GET("/:id", optionalAuth, authorHandler.GetAuthor)
		authors.POST("/:id/follow", requireAuth, authorHandler.Follow)
		authors.DELETE("/:id/follow", requireAuth, authorHandler.Unfollow)
	}

	follows := api.Group("/follows", requireAuth)
	{
		follows.GET("", authorHandler.ListFollowing)
		follows.POST("/:authorId", authorHandler.FollowAlias)
		follows.DELETE("/:authorId", authorHandler.UnfollowAlias)
	}

	api.GET("/categories", categoryHandler.ListCategories)

	media := api.Group("/media", requireAuth)
	{
		media.POST("/upload", mediaHandler.UploadMedia)
		media.GET("", mediaHandler.ListMedia)
		media.GET("/storage/usage", mediaHandler.StorageUsage)
		media.GET("/:id", mediaHandler.GetMedia)
		media.PATCH("/:id", mediaHandler.UpdateMedia)
		media.DELETE("/:id", mediaHandler.DeleteMedia)
		media.POST("/:id/attach", mediaHandler.AttachMedia)
		media.POST("/:id/detach", mediaHandler.DetachMedia)
	}

	return r
}

var apiEndpoints = []string{
	"/api/v1/auth",
	"/api/v1/articles",
	"/api/v1/stories",
	"/api/v1/authors",
	"/api/v1/follows",
	"/api/v1/categories",
	"/api/v1/media",
}

// apiInfo godoc
// @Summary      API information
// @Tags         meta
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       / [get]
func apiInfo(c *gin.Context) {
	response.OK(c, gin.H{
		"name":      apiName,
		"version":   apiVersion,
		"endpoints": apiEndpoints,
	})
}
