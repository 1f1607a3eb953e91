package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hotelio/hotel-manager/internal/audit"
	"github.com/hotelio/hotel-manager/internal/config"
	"github.com/hotelio/hotel-manager/internal/handlers"
	"github.com/hotelio/hotel-manager/internal/service"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// ENTITY SERVICES
	// ======================================================
	userService := service.NewUserService(db, auditDispatcher)
	ownerService := service.NewOwnerService(db, auditDispatcher)
	clientService := service.NewClientService(db, auditDispatcher)
	roomService := service.NewRoomService(db, auditDispatcher)
	reservationService := service.NewReservationService(db, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(userService)
	ownerHandler := handlers.NewOwnerHandler(ownerService)
	clientHandler := handlers.NewClientHandler(clientService)
	roomHandler := handlers.NewRoomHandler(roomService)
	reservationHandler := handlers.NewReservationHandler(reservationService)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)

		api.GET("/owners", ownerHandler.List)
		api.POST("/owners", ownerHandler.Create)
		api.PUT("/owners/:id", ownerHandler.Update)
		api.DELETE("/owners/:id", ownerHandler.Delete)

		api.GET("/clients", clientHandler.List)
		api.POST("/clients", clientHandler.Create)
		api.PUT("/clients/:id", clientHandler.Update)
		api.DELETE("/clients/:id", clientHandler.Delete)

		api.GET("/rooms", roomHandler.List)
		api.POST("/rooms", roomHandler.Create)
		api.PUT("/rooms/:id", roomHandler.Update)
		api.DELETE("/rooms/:id", roomHandler.Delete)

		api.GET("/reservations", reservationHandler.List)
		api.POST("/reservations", reservationHandler.Create)
		api.PUT("/reservations/:id", reservationHandler.Update)
		api.DELETE("/reservations/:id", reservationHandler.Delete)

		api.GET("/users", userHandler.List)
		api.POST("/users", userHandler.Create)
		api.GET("/users/:id", userHandler.GetByID)
		api.PUT("/users/:id", userHandler.Update)
		api.DELETE("/users/:id", userHandler.Delete)
	}
}
