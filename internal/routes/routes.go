package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/restaurant-api/internal/config"
	"github.com/BruksfildServices01/restaurant-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/restaurant-api/internal/infra/repository"
	"github.com/BruksfildServices01/restaurant-api/internal/middleware"
	ucReservation "github.com/BruksfildServices01/restaurant-api/internal/usecase/reservation"
	ucTable "github.com/BruksfildServices01/restaurant-api/internal/usecase/table"
)

// Deps reúne o que o main constrói e as rotas consomem.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Log      *logrus.Logger
	Notifier ucReservation.Notifier
	Auditor  ucReservation.Auditor
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(d.Log),
		middleware.CORSMiddleware(),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(d.DB)
	tableRepo := infraRepo.NewTableGormRepository(d.DB)

	// ======================================================
	// 🧠 USE CASES: RESERVAS
	// ======================================================
	reservationHandler := handlers.NewReservationHandler(
		ucReservation.NewCreateByLocation(reservationRepo, d.Notifier, d.Auditor, d.Log, cfg.Timezone),
		ucReservation.NewSetStatus(reservationRepo, d.Notifier, d.Auditor, d.Log),
		ucReservation.NewDeleteReservation(reservationRepo, d.Auditor),
		ucReservation.NewGetReservation(reservationRepo),
		ucReservation.NewListReservations(reservationRepo),
		ucReservation.NewListCustomerReservations(reservationRepo),
	)

	// ======================================================
	// 🧠 USE CASES: MESAS
	// ======================================================
	tableHandler := handlers.NewTableHandler(
		ucTable.NewCreateTable(tableRepo, d.Auditor, d.Log),
		ucTable.NewListTables(tableRepo),
		ucTable.NewUpdateCapacity(tableRepo, d.Auditor, cfg.Timezone),
		ucTable.NewDeleteTable(tableRepo, d.Auditor, d.Log, cfg.Timezone),
		ucTable.NewGetAvailability(tableRepo, cfg.Timezone),
		ucTable.NewListFutureAssignments(tableRepo, cfg.Timezone),
	)

	authHandler := handlers.NewAuthHandler(d.DB, cfg, d.Log)
	meHandler := handlers.NewMeHandler(d.DB)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB, cfg.Timezone)

	auth := middleware.AuthMiddleware(cfg)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.NewRateLimiter(cfg.RateLimitPerMinute).Middleware())
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/user/register", authHandler.Register)
		api.POST("/user/login", authHandler.Login)
		api.GET("/user/me", auth, meHandler.GetMe)

		// ------------------------------
		// RESERVAS
		// ------------------------------
		reservations := api.Group("/reservations")
		reservations.Use(auth)
		{
			reservations.GET("", reservationHandler.List)
			reservations.GET("/customer", reservationHandler.ListCustomer)
			reservations.GET("/:id", reservationHandler.Get)
			reservations.POST("", reservationHandler.Create)
			reservations.PUT("/:id/status/:status", reservationHandler.SetStatus)
			reservations.DELETE("/:id", reservationHandler.Delete)
		}

		// ------------------------------
		// 🔐 ADMIN
		// ------------------------------
		tables := api.Group("/tables")
		tables.Use(auth, middleware.RequireAdmin())
		{
			tables.GET("", tableHandler.List)
			tables.POST("", tableHandler.Create)
			tables.GET("/available/:date", tableHandler.Availability)
			tables.GET("/future/:date", tableHandler.Future)
			tables.PUT("/:id/capacity/:capacity", tableHandler.UpdateCapacity)
			tables.DELETE("/:id", tableHandler.Delete)
		}

		api.GET("/audit-logs", auth, middleware.RequireAdmin(), auditLogsHandler.List)
	}
}
