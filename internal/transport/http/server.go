package http

import (
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	redisv9 "github.com/redis/go-redis/v9"

	appsvc "campuspress/internal/app"
	"campuspress/internal/bootstrap"
	"campuspress/internal/config"
	"campuspress/internal/media"
	"campuspress/internal/transport/http/handler"
	"campuspress/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	healthHandler := handler.NewHealthHandler(app)
	return newEngine(routerDeps{
		cfg:      app.Config,
		articles: app.Articles,
		auth:     app.Auth,
		sections: app.Sections,
		media:    app.Media,
		redis:    app.Redis,
		health:   healthHandler.Check,
	})
}

// routerDeps carries everything the route table needs; tests build it
// around a memstore and leave redis and health empty.
type routerDeps struct {
	cfg      *config.Config
	articles *appsvc.ArticleService
	auth     *appsvc.AuthService
	sections *appsvc.SectionService
	media    *media.Store
	redis    *redisv9.Client
	health   gin.HandlerFunc
}

func newEngine(d routerDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.Metrics())
	router.Use(corsMiddleware(d.cfg.CORS.AllowedOrigins))
	router.MaxMultipartMemory = d.cfg.MaxUploadBytes()

	router.Static("/uploads", d.cfg.Upload.Dir)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if d.health != nil {
		router.GET("/healthz", d.health)
	}

	articleHandler := handler.NewArticleHandler(d.articles)
	uploadHandler := handler.NewUploadHandler(d.media, d.auth)
	userHandler := handler.NewUserHandler(d.auth)

	api := router.Group("/api")
	api.GET("/articles", articleHandler.List)
	api.POST("/articles", articleHandler.Create)
	api.POST("/login", userHandler.Login)
	api.GET("/userinfo", middleware.AuthBearer(d.auth), userHandler.Info)

	uploads := api.Group("", middleware.RateLimit(d.redis), limitBody(d.cfg.MaxUploadBytes()))
	uploads.POST("/upload", uploadHandler.Upload)
	uploads.POST("/upload-avatar", middleware.AuthBearer(d.auth), uploadHandler.UploadAvatar)

	if d.sections != nil {
		sectionHandler := handler.NewSectionHandler(d.sections)
		api.GET("/sections", sectionHandler.Stats)
	}

	return router
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	if len(origins) == 0 || slices.Contains(origins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	return cors.New(corsCfg)
}

func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
