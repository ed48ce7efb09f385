package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"portfolio-backend/config"
	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
)

type RouterDeps struct {
	AuthUC       domain.AuthUsecase
	UserUC       domain.UserUsecase
	AboutUC      domain.AboutUsecase
	BlogUC       domain.BlogUsecase
	ProjectUC    domain.ProjectUsecase
	SkillUC      domain.SkillUsecase
	TechnologyUC domain.TechnologyUsecase
	ExperienceUC domain.ExperienceUsecase
	EducationUC  domain.EducationUsecase
	ContactUC    domain.ContactUsecase
	Redis        *goredis.Client
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	r := gin.New()

	// Global middlewares. CORS must run first so even error responses carry
	// the headers.
	r.Use(middleware.CORS(cfg.FrontendURL, cfg.IsProduction()))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ErrorHandler(!cfg.IsProduction()))

	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimit(deps.Redis, middleware.DefaultRateLimitConfig(cfg.RateLimitGlobalThreshold, window)))

	// Locally stored blog images are served straight from disk.
	r.Static("/uploads", cfg.UploadDir)

	v1 := r.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Credential endpoints get the strict limiter on top of the global one.
	authPublic := v1.Group("")
	authPublic.Use(middleware.RateLimit(deps.Redis, middleware.LoginRateLimitConfig(cfg.RateLimitLoginThreshold, window)))

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWT))

	admin := v1.Group("")
	admin.Use(middleware.AuthMiddleware(cfg.JWT, domain.RoleAdmin))

	NewAuthHandler(authPublic, protected, deps.AuthUC, cfg)
	NewUserHandler(protected, deps.UserUC, deps.BlogUC)
	NewAboutHandler(v1, protected, deps.AboutUC)
	NewBlogHandler(v1, protected, deps.BlogUC)
	NewProjectHandler(v1, protected, deps.ProjectUC)
	NewSkillHandler(v1, protected, deps.SkillUC)
	NewTechnologyHandler(v1, protected, deps.TechnologyUC)
	NewExperienceHandler(v1, protected, deps.ExperienceUC)
	NewEducationHandler(v1, protected, deps.EducationUC)
	NewContactHandler(v1, admin, deps.ContactUC)

	return r
}
