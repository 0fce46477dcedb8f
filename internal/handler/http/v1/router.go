package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	auth := APIKeyAuthMiddleware(h.cfg, h.logger)

	// Посты: чтение открыто для дашборда, изменение - по API-ключу
	reports := api.Group("/reports")
	{
		reports.GET("", h.listReports)
		reports.GET("/keyword/:keyword", h.listByKeyword)
		reports.GET("/locations", h.listLocations)
		reports.POST("", auth, h.createReport)
		reports.DELETE("/zero-score", auth, h.purgeZeroScore)
		reports.GET("/stats", auth, h.getStats)
	}

	api.GET("/trends", h.getTrends)
	api.GET("/categories", h.listCategories)
	api.POST("/classify", h.classify)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
