package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"

	"github.com/klearr/customs-calculator/cmd/docs"
	portssvc "github.com/klearr/customs-calculator/internal/core/ports/services"
	"github.com/klearr/customs-calculator/internal/middleware"
	"github.com/klearr/customs-calculator/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	calcLimiter *limiter.Limiter,
) {
	registerHomeRoutes(r)

	// Public authentication route for the operations account
	registerAuthRoutes(r, services)

	setupAPIV1Routes(r, cfg, services, calcLimiter)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group. Calculation and read routes
// are public; write routes sit behind the admin JWT middleware.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	calcLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1")

	RegisterCalculationRoutes(v1, services.Valuation, services.Assessment, calcLimiter)
	registerCurrencyRoutes(v1, services.Currency)
	registerFXRateRoutes(v1, services.FXRate)
	registerTaxRateRoutes(v1, services.TaxSchedule)

	admin := v1.Group("", middleware.AuthMiddleware(cfg.JWTSecret))
	registerAdminCurrencyRoutes(admin, services.Currency)
	registerAdminFXRateRoutes(admin, services.FXRate)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
