package middleware

import (
	"net/http"
	"strings"

	"ecopontos_arapiraca/internal/domain/entities"
	"ecopontos_arapiraca/internal/infrastructure/auth"
	"ecopontos_arapiraca/pkg"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserIDKey = "user_id"
	ctxRoleKey   = "role"
)

// JWTAuth validates the bearer token and attaches the authenticated actor to
// the gin context.
func JWTAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "AUTH_HEADER_MISSING", "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortUnauthorized(c, "INVALID_AUTH_FORMAT", "Authorization header must be 'Bearer <token>'")
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			abortUnauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxRoleKey, claims.Role)
		c.Next()
	}
}

// CurrentActor reads the authenticated identity set by JWTAuth. The zero
// Actor means the route ran without the middleware.
func CurrentActor(c *gin.Context) entities.Actor {
	return entities.Actor{
		ID:   c.GetString(ctxUserIDKey),
		Role: entities.Role(c.GetString(ctxRoleKey)),
	}
}

func abortUnauthorized(c *gin.Context, code, message string) {
	appErr := pkg.NewDomainErrorSimple(code, message, http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
