package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/comedor/config"
	_ "github.com/d60-Lab/comedor/docs"
	"github.com/d60-Lab/comedor/internal/api/handler"
	"github.com/d60-Lab/comedor/internal/api/middleware"
	"github.com/d60-Lab/comedor/pkg/response"
)

// NewRouter 组装 gin 引擎与全部路由
func NewRouter(cfg *config.Config, h *handler.Handler) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(middleware.RequestID(), middleware.Recovery(), middleware.AccessLog())
	r.Use(middleware.Preflight())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    middleware.AllowMethods,
		AllowHeaders:    middleware.AllowHeaders,
		ExposeHeaders:   []string{middleware.RequestIDHeader},
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	if cfg.Tracing.Enabled {
		r.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	}
	if cfg.RateLimit.RPS > 0 {
		r.Use(middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst).Middleware())
	}

	r.NoMethod(response.MethodNotAllowed)
	r.NoRoute(func(c *gin.Context) { response.NotFound(c, "ruta no encontrada") })

	r.GET("/health", h.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/pedido", h.GetOrder)
		v1.POST("/pedido", h.UpsertOrder)
		v1.DELETE("/pedido", h.CancelOrder)
		v1.GET("/pedidos", h.ListOrders)

		v1.GET("/menus", h.ListMenus)
		v1.POST("/menus", h.PostMenu)
		v1.PUT("/menus", h.UpdateMenu)
		v1.DELETE("/menus", h.DeleteMenu)

		v1.GET("/empresas", h.ListCompanies)
		v1.POST("/empresas", h.CreateCompany)
		v1.PUT("/empresas", h.UpdateCompany)
		v1.DELETE("/empresas", h.DeleteCompany)

		v1.GET("/usuarios", h.ListUsers)
		v1.POST("/usuarios", h.CreateUser)
		v1.PUT("/usuarios", h.UpdateUser)
		v1.DELETE("/usuarios", h.DeleteUser)
	}
	return r
}
