package apiHttp

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/cascade-admin/locations/docs"
	"github.com/cascade-admin/locations/pkg/limiter"
	"github.com/cascade-admin/locations/pkg/logger"
	"github.com/cascade-admin/locations/pkg/validator"

	"github.com/cascade-admin/locations/internal/api/http/admin"
	internalV1 "github.com/cascade-admin/locations/internal/api/http/internal/v1"
	"github.com/cascade-admin/locations/internal/config"
	"github.com/cascade-admin/locations/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	services *service.Services
}

func NewHandlers(services *service.Services) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) Init(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.HttpServer.TrustedProxies); err != nil {
		logger.Error("invalid trusted proxies, forwarding headers are ignored", zap.Error(err))
		_ = router.SetTrustedProxies(nil)
	}

	validator.RegisterGinValidator()

	router.Use(
		requestIDMiddleware,
		ginzap.GinzapWithConfig(logger.Logger(), &ginzap.Config{
			TimeFormat: time.RFC3339,
			UTC:        true,
			Context: func(c *gin.Context) []zapcore.Field {
				return []zapcore.Field{zap.String("request_id", c.GetString(requestIDCtx))}
			},
		}),
		limiter.Limit(cfg.Limiter.RPS, cfg.Limiter.Burst, cfg.Limiter.TTL),
	)
	router.Use(ginzap.RecoveryWithZap(logger.Logger(), true))

	if cfg.HttpServer.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.NewHandler(), ginSwagger.InstanceName("internal")))
	}

	h.initPages(router)
	h.initAPI(router)

	return router
}

func (h *Handler) initPages(router *gin.Engine) {
	admin.NewHandler(h.services.Locations).Init(router)
}

func (h *Handler) initAPI(router *gin.Engine) {
	internalHandlersV1 := internalV1.NewHandler(h.services)
	internalHandlersV1.Init(router.Group("/"))
}
