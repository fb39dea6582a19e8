package routes

import (
	"ecopontos_arapiraca/internal/adapter/http/handlers"
	"ecopontos_arapiraca/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathExternal = "/external"

func addExternalRoutes(rg *gin.RouterGroup, handler *handlers.ExternalHandler) {
	// O proxy é público; o limite por IP protege a cota da ReceitaWS.
	limiter := middleware.NewRateLimiter(1, 3)

	external := rg.Group(PathExternal, middleware.IPRateLimit(limiter))
	{
		external.GET("/cnpj/:cnpj", handler.LookupCnpj)
	}
}

func addComplaintRoutes(rg *gin.RouterGroup, handler *handlers.ComplaintHandler) {
	rg.POST("/reclamacao", handler.Submit)
}
