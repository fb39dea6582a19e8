package routes

import (
	"ecopontos_arapiraca/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth  = "/auth"
	PathUsers = "/users"
)

func addAuthRoutes(rg *gin.RouterGroup, handler *handlers.AuthHandler, authRequired gin.HandlerFunc) {
	authGroup := rg.Group(PathAuth)
	{
		authGroup.POST("/register", handler.Register)
		authGroup.POST("/register-admin", handler.RegisterAdmin)
		authGroup.POST("/login", handler.Login)
		authGroup.GET("/check-first-user", handler.CheckFirstUser)

		// Cadastro de empresa exige token de admin.
		authGroup.POST("/register-enterprise", authRequired, handler.RegisterEnterprise)
	}
}

func addUserRoutes(rg *gin.RouterGroup, handler *handlers.UserHandler, authRequired gin.HandlerFunc) {
	users := rg.Group(PathUsers)
	{
		// Listagem e validação são públicas; a projeção nunca expõe a senha.
		users.GET("", handler.FindAll)
		users.GET("/validate/:id", handler.Validate)

		users.GET("/:id", authRequired, handler.FindOne)
		users.GET("/name/:name", authRequired, handler.FindByName)
		users.GET("/role/:role", authRequired, handler.ListByRole)
		users.PUT("/:id", authRequired, handler.Update)
		users.DELETE("/:id", authRequired, handler.Remove)
	}
}
