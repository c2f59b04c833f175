package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gardgear/internal/controllers"
	"gardgear/internal/listeners"
	"gardgear/internal/repositories"
	"gardgear/internal/services"
	"gardgear/pkg/config"
	"gardgear/pkg/eventbus"
)

// InitRouter wires repositories, services and controllers and registers
// every route under /api. Trailing slashes are stripped by middleware in
// main, so the canonical paths here carry none.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, bus *eventbus.Bus, cfg *config.Config, logger *zap.Logger) {
	api := e.Group("/api")

	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	teamRepo := repositories.NewTeamRepository(dbConn)
	userRepo := repositories.NewUserRepository(dbConn)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	requestRepo := repositories.NewRequestRepository(dbConn)
	notificationRepo := repositories.NewNotificationRepository(dbConn)
	reportRepo := repositories.NewReportRepository(dbConn)

	teamService := services.NewTeamService(teamRepo, logger)
	userService := services.NewUserService(userRepo, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, logger)
	requestService := services.NewRequestService(requestRepo, cacheRepo, bus, logger)
	notificationService := services.NewNotificationService(notificationRepo, logger)
	reportService := services.NewReportService(reportRepo, cacheRepo, cfg.Report.CacheTTL, logger)

	notificationListener := listeners.NewNotificationListener(notificationRepo, userRepo, logger)
	notificationListener.Register(bus)

	registerTeamRoutes(api, controllers.NewTeamController(teamService, logger))
	registerUserRoutes(api, controllers.NewUserController(userService, logger))
	registerEquipmentRoutes(api, controllers.NewEquipmentController(equipmentService, logger))
	registerRequestRoutes(api, controllers.NewRequestController(requestService, logger))
	registerNotificationRoutes(api, controllers.NewNotificationController(notificationService, logger))
	registerReportRoutes(api, controllers.NewReportController(reportService, logger))

	logger.Info("router initialized")
}

func registerTeamRoutes(g *echo.Group, ctrl *controllers.TeamController) {
	g.GET("/teams", ctrl.GetTeams)
	g.GET("/teams/:id", ctrl.FindTeam)
	g.POST("/teams", ctrl.CreateTeam)
}

func registerUserRoutes(g *echo.Group, ctrl *controllers.UserController) {
	g.GET("/users", ctrl.GetUsers)
	g.GET("/users/technicians", ctrl.GetTechnicians)
	g.GET("/users/by_team", ctrl.GetUsersByTeam)
	g.GET("/users/:id", ctrl.FindUser)
}

func registerEquipmentRoutes(g *echo.Group, ctrl *controllers.EquipmentController) {
	g.GET("/equipment", ctrl.GetEquipment)
	g.GET("/equipment/by_team", ctrl.GetEquipmentByTeam)
	g.GET("/equipment/:id", ctrl.FindEquipment)
	g.POST("/equipment", ctrl.CreateEquipment)
	g.PATCH("/equipment/:id", ctrl.UpdateEquipment)
	g.DELETE("/equipment/:id", ctrl.DeleteEquipment)
}

func registerRequestRoutes(g *echo.Group, ctrl *controllers.RequestController) {
	g.GET("/maintenance-requests", ctrl.GetRequests)
	g.GET("/maintenance-requests/by_status", ctrl.GetRequestsByStatus)
	g.GET("/maintenance-requests/:id", ctrl.FindRequest)
	g.POST("/maintenance-requests", ctrl.CreateRequest)
	g.PATCH("/maintenance-requests/:id", ctrl.UpdateRequest)
	g.DELETE("/maintenance-requests/:id", ctrl.DeleteRequest)
}

func registerNotificationRoutes(g *echo.Group, ctrl *controllers.NotificationController) {
	g.GET("/notifications", ctrl.GetNotifications)
	g.POST("/notifications/:id/mark_read", ctrl.MarkRead)
}

func registerReportRoutes(g *echo.Group, ctrl *controllers.ReportController) {
	g.GET("/reports/requests", ctrl.GetRequestsReport)
}
