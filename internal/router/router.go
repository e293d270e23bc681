package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"cylindertrack/internal/config"
	"cylindertrack/internal/handler"
	"cylindertrack/internal/metrics"
	"cylindertrack/internal/middleware"
)

// Handlers groups every HTTP handler the router binds.
type Handlers struct {
	Settings *handler.SettingsHandler
	Employee *handler.EmployeeHandler
	Delivery *handler.DeliveryHandler
	Export   *handler.ExportHandler
	Health   *handler.HealthHandler
}

// Options carries the cross-cutting dependencies of the engine.
type Options struct {
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	CORS     config.CORSConfig
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(h Handlers, opts Options) *gin.Engine {
	handler.RegisterValidators()

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Metrics(opts.Metrics))
	r.Use(middleware.CORS(opts.CORS))

	r.NoRoute(func(c *gin.Context) {
		handler.RespondError(c, http.StatusNotFound, "Not found")
	})

	// Health checks and metrics
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := r.Group("/api")

	api.GET("/settings", h.Settings.Get)
	api.PUT("/settings", h.Settings.Update)

	employees := api.Group("/employees")
	employees.POST("", h.Employee.Create)
	employees.GET("", h.Employee.List)
	employees.DELETE("/:id", h.Employee.Delete)

	deliveries := api.Group("/deliveries")
	deliveries.POST("", h.Delivery.Create)
	deliveries.GET("/date/:date", h.Delivery.ListByDate)
	deliveries.PUT("/:id", h.Delivery.Replace)
	deliveries.GET("/summary/:date", h.Delivery.Summary)
	deliveries.GET("/export/:date", h.Export.Download)
	deliveries.POST("/export/:date/share", h.Export.Share)

	return r
}
