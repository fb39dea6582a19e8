package routes

import (
	"ecopontos_arapiraca/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathRequestCollection = "/request-collection"

func addRequestCollectionRoutes(rg *gin.RouterGroup, handler *handlers.RequestCollectionHandler, authRequired gin.HandlerFunc) {
	requests := rg.Group(PathRequestCollection, authRequired)
	{
		requests.POST("", handler.Create)
		requests.GET("/company/:companyId", handler.FindByCompany)
		requests.GET("/user/:userId", handler.FindByUser)
		requests.PATCH("/:id/status", handler.UpdateStatus)
	}
}
