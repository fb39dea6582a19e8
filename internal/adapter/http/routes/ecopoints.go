package routes

import (
	"ecopontos_arapiraca/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathEcoPoints = "/ecopoints"

func addEcoPointRoutes(rg *gin.RouterGroup, handler *handlers.EcoPointHandler, authRequired gin.HandlerFunc) {
	ecopoints := rg.Group(PathEcoPoints)
	{
		// Leituras são públicas para alimentar o mapa do frontend.
		ecopoints.GET("", handler.FindAll)
		ecopoints.GET("/:id", handler.FindOne)
		ecopoints.GET("/cnpj/:cnpj", handler.FindByCnpj)
		ecopoints.GET("/my-ecopoints/:companyId", handler.FindByCompany)

		ecopoints.POST("", authRequired, handler.Create)
		ecopoints.PATCH("/:id", authRequired, handler.Update)
		ecopoints.DELETE("/:id", authRequired, handler.Remove)
	}
}
