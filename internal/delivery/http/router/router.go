// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"atrium/internal/delivery/http/middleware"
	"atrium/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BuildingHandler    *handler.BuildingHandler
	FloorHandler       *handler.FloorHandler
	RoomHandler        *handler.RoomHandler
	EquipmentHandler   *handler.EquipmentHandler
	CategoryHandler    *handler.CategoryHandler
	CommentHandler     *handler.CommentHandler
	ReservationHandler *handler.ReservationHandler
	MaintenanceHandler *handler.MaintenanceHandler
	SettingHandler     *handler.SettingHandler
	FavoriteHandler    *handler.FavoriteHandler
	UserHandler        *handler.UserHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", p.UserHandler.Register)
		authGroup.POST("/login", p.UserHandler.Login)
		authGroup.POST("/refresh", p.UserHandler.Refresh)
	}

	// Everything below requires a valid access token.
	api := e.Group("/api")
	api.Use(p.AuthMiddleware.Authenticate)
	{
		api.GET("/buildings", p.BuildingHandler.List)
		api.POST("/buildings", p.BuildingHandler.Create)
		api.GET("/buildings/:id", p.BuildingHandler.Get)
		api.PUT("/buildings/:id", p.BuildingHandler.Update)
		api.DELETE("/buildings/:id", p.BuildingHandler.Delete)
		api.GET("/buildings/:id/floors", p.FloorHandler.ListByBuilding)

		api.POST("/floors", p.FloorHandler.Create)
		api.GET("/floors/:id", p.FloorHandler.Get)
		api.PUT("/floors/:id", p.FloorHandler.Update)
		api.DELETE("/floors/:id", p.FloorHandler.Delete)
		api.GET("/floors/:id/rooms", p.RoomHandler.ListByFloor)

		api.POST("/rooms", p.RoomHandler.Create)
		api.GET("/rooms/:id", p.RoomHandler.Get)
		api.PUT("/rooms/:id", p.RoomHandler.Update)
		api.DELETE("/rooms/:id", p.RoomHandler.Delete)
		api.GET("/rooms/:id/equipment", p.EquipmentHandler.ListByRoom)

		api.POST("/equipment", p.EquipmentHandler.Create)
		api.GET("/equipment/:id", p.EquipmentHandler.Get)
		api.PUT("/equipment/:id", p.EquipmentHandler.Update)
		api.DELETE("/equipment/:id", p.EquipmentHandler.Delete)
		api.GET("/equipment/:id/detail", p.EquipmentHandler.GetDetail)
		api.GET("/equipment/:id/qrcode", p.EquipmentHandler.AssetTag)
		api.GET("/equipment/:id/comments", p.CommentHandler.ListByEquipment)
		api.POST("/equipment/:id/comments", p.CommentHandler.Create)
		api.GET("/equipment/:id/reservations", p.ReservationHandler.ListByEquipment)
		api.POST("/equipment/:id/reservations", p.ReservationHandler.Create)
		api.GET("/equipment/:id/maintenance", p.MaintenanceHandler.ListByEquipment)
		api.POST("/equipment/:id/maintenance", p.MaintenanceHandler.Create)
		api.POST("/equipment/:id/favorite", p.FavoriteHandler.Toggle)

		api.GET("/categories", p.CategoryHandler.List)
		api.POST("/categories", p.CategoryHandler.Create)
		api.PUT("/categories/:id", p.CategoryHandler.Update)
		api.DELETE("/categories/:id", p.CategoryHandler.Delete)

		api.DELETE("/comments/:id", p.CommentHandler.Delete)
		api.DELETE("/reservations/:id", p.ReservationHandler.Cancel)
		api.PUT("/maintenance/:id", p.MaintenanceHandler.Update)
		api.DELETE("/maintenance/:id", p.MaintenanceHandler.Delete)

		api.GET("/settings", p.SettingHandler.List)
		api.GET("/settings/:key", p.SettingHandler.Get)
		api.PUT("/settings", p.SettingHandler.Put)
		api.DELETE("/settings/:id", p.SettingHandler.Delete)

		api.GET("/favorites", p.FavoriteHandler.List)

		api.GET("/users", p.UserHandler.List)
		api.GET("/users/me", p.UserHandler.Me)
		api.GET("/users/:id", p.UserHandler.Get)
		api.PUT("/users/:id/role", p.UserHandler.ChangeRole)
	}
}
