package handlers

import (
	"net/http"

	request "ecopontos_arapiraca/internal/adapter/http/dto/request"
	response "ecopontos_arapiraca/internal/adapter/http/dto/response"
	"ecopontos_arapiraca/internal/adapter/http/middleware"
	"ecopontos_arapiraca/internal/domain/entities"
	"ecopontos_arapiraca/internal/usecase"
	"ecopontos_arapiraca/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAuthPayload = pkg.NewDomainErrorSimple("INVALID_AUTH_INPUT", "Invalid payload", http.StatusBadRequest)

// AuthHandler handles registration and login.

type AuthHandler struct {
	usecase usecase.IUserUseCase
}

func NewAuthHandler(uc usecase.IUserUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Register godoc
// @Summary  Register a regular user
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    payload body request.RegisterRequest true "Registration"
// @Success  201 {object} response.UserResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	h.register(c, entities.RoleUser)
}

// RegisterAdmin godoc
// @Summary  Register an admin account
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    payload body request.RegisterRequest true "Registration"
// @Success  201 {object} response.UserResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /auth/register-admin [post]
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	h.register(c, entities.RoleAdmin)
}

func (h *AuthHandler) register(c *gin.Context, role entities.Role) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	user, err := h.usecase.Register(c.Request.Context(), payload.ResolveCommand(), role)
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromUser(user))
}

// RegisterEnterprise godoc
// @Summary  Register an enterprise account (admin only)
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    payload body request.RegisterRequest true "Registration"
// @Success  201 {object} response.UserResponse
// @Failure  403 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /auth/register-enterprise [post]
func (h *AuthHandler) RegisterEnterprise(c *gin.Context) {
	if !middleware.CurrentActor(c).IsAdmin() {
		appErr := mapUserError(usecase.ErrNotAllowed)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	user, err := h.usecase.RegisterEnterprise(c.Request.Context(), payload.ResolveCommand())
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromUser(user))
}

// Login godoc
// @Summary  Authenticate and issue a bearer token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    payload body request.LoginRequest true "Credentials"
// @Success  200 {object} response.LoginResponse
// @Failure  401 {object} pkg.HTTPError
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	token, user, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{
		AccessToken: token,
		User:        response.FromUser(user),
	})
}

// CheckFirstUser godoc
// @Summary  Report whether any account exists yet
// @Tags     auth
// @Produce  json
// @Success  200 {object} map[string]bool
// @Router   /auth/check-first-user [get]
func (h *AuthHandler) CheckFirstUser(c *gin.Context) {
	count, err := h.usecase.CountUsers(c.Request.Context())
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"isFirstUser": count == 0})
}
