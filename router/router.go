package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/long-kr/Project-Restaurant-Reservation/config"
	"github.com/long-kr/Project-Restaurant-Reservation/controllers"
	"github.com/long-kr/Project-Restaurant-Reservation/metrics"
	"github.com/long-kr/Project-Restaurant-Reservation/middlewares"
	"github.com/long-kr/Project-Restaurant-Reservation/services"
	"github.com/long-kr/Project-Restaurant-Reservation/utils"
)

type options struct {
	now func() time.Time
}

type Option func(*options)

// WithClock replaces the clock used for "today" and past-date checks.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func SetupRouter(cfg *config.Config, db *gorm.DB, opts ...Option) *gin.Engine {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(middlewares.RequestID(), middlewares.LoggerMiddleware())

	// Metrics wrap the error handler so they see the final status.
	var m *metrics.Metrics
	if cfg.Server.MetricsEnabled {
		m = metrics.New()
		r.Use(m.Middleware())
	}

	rateLimiter := middlewares.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
	r.Use(
		middlewares.Recovery(cfg.IsDevelopment()),
		middlewares.ErrorHandler(cfg.IsDevelopment()),
		middlewares.SecurityHeaders(),
		middlewares.CORSMiddlewares(cfg.Server.CORSOrigins),
		rateLimiter.RateLimit(),
		middlewares.BodyLimit(cfg.Server.BodyLimitBytes),
	)

	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	reservationService := services.NewReservationService(db)
	tableService := services.NewTableService(db)
	seatingService := services.NewSeatingService(db)

	reservationCtrl := controllers.NewReservationController(reservationService, tableService, cfg.Business, cfg.Server.Location)
	reservationCtrl.Now = o.now
	tableCtrl := controllers.NewTableController(tableService, reservationService, seatingService)
	tableCtrl.Metrics = m
	healthCtrl := controllers.NewHealthController(cfg.App)

	r.GET("/health", healthCtrl.Health)

	reservations := r.Group("/reservations")
	{
		reservations.GET("", reservationCtrl.ListReservations)
		reservations.POST("", reservationCtrl.CreateReservation)
		reservations.GET("/:reservation_id", reservationCtrl.GetReservation)
		reservations.PUT("/:reservation_id", reservationCtrl.UpdateReservation)
		reservations.DELETE("/:reservation_id", reservationCtrl.CancelReservation)
		reservations.PUT("/:reservation_id/status", reservationCtrl.UpdateReservationStatus)
	}

	tables := r.Group("/tables")
	{
		tables.GET("", tableCtrl.GetAllTables)
		tables.POST("", tableCtrl.CreateTable)
		tables.GET("/:table_id", tableCtrl.GetTableByID)
		tables.PUT("/:table_id", tableCtrl.UpdateTable)
		tables.DELETE("/:table_id", tableCtrl.DeleteTable)
		tables.PUT("/:table_id/seat", tableCtrl.SeatTable)
		tables.DELETE("/:table_id/seat", tableCtrl.FinishTable)
	}

	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(utils.NotFound("Path not found: %s", c.Request.URL.Path))
	})
	r.NoMethod(func(c *gin.Context) {
		_ = c.Error(utils.MethodNotAllowed("%s not allowed for %s", c.Request.Method, c.Request.URL.Path))
	})

	return r
}
