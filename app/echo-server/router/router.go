package router

import (
	"vestiaKiosk/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetOutfitRoutes(api *echo.Group, handler *rest.OutfitHandler) {
	reco := api.Group("/recommendations")
	reco.POST("", handler.Recommend)
	reco.POST("/mix-match", handler.MixMatch)
}

func SetSessionRoutes(api *echo.Group, handler *rest.SessionHandler) {
	sessions := api.Group("/sessions")
	sessions.POST("/scan", handler.Scan)
	sessions.GET("/:id", handler.GetSession)
}

func SetCatalogRoutes(api *echo.Group, handler *rest.CatalogHandler) {
	catalog := api.Group("/catalog")
	catalog.GET("", handler.ListItems)
	catalog.GET("/:sku", handler.GetItem)
}

func SetRequestRoutes(api *echo.Group, handler *rest.RequestHandler) {
	api.POST("/request", handler.Create)
	api.POST("/request/:id/status", handler.UpdateStatus)
	api.GET("/requests", handler.List)
	api.GET("/requests/status/:sessionId", handler.SessionStatuses)
}

func SetFeedbackRoutes(api *echo.Group, handler *rest.FeedbackHandler) {
	api.POST("/feedback", handler.Submit)
}

func SetAnalyticsRoutes(api *echo.Group, handler *rest.AnalyticsHandler) {
	api.GET("/analytics", handler.Get)
}
