package handlers

import (
	"errors"
	"net/http"

	request "ecopontos_arapiraca/internal/adapter/http/dto/request"
	response "ecopontos_arapiraca/internal/adapter/http/dto/response"
	"ecopontos_arapiraca/internal/adapter/http/middleware"
	"ecopontos_arapiraca/internal/domain/entities"
	"ecopontos_arapiraca/internal/usecase"
	"ecopontos_arapiraca/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidUserPayload = pkg.NewDomainErrorSimple("INVALID_USER_INPUT", "Invalid user payload", http.StatusBadRequest)

// UserHandler handles account management routes. Per-account reads and writes
// are self-or-admin; role listings are admin-only.

type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

// FindAll godoc
// @Summary  List all accounts
// @Tags     users
// @Produce  json
// @Success  200 {array} response.UserResponse
// @Router   /users [get]
func (h *UserHandler) FindAll(c *gin.Context) {
	users, err := h.usecase.FindAll(c.Request.Context())
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(users))
}

// FindOne godoc
// @Summary  Get one account
// @Tags     users
// @Produce  json
// @Param    id path string true "User id"
// @Success  200 {object} response.UserResponse
// @Failure  403 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /users/{id} [get]
func (h *UserHandler) FindOne(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	user, err := h.usecase.FindByID(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

// FindByName godoc
// @Summary  Look an account up by exact name (admin only)
// @Tags     users
// @Produce  json
// @Param    name path string true "User name"
// @Success  200 {object} response.UserResponse
// @Failure  403 {object} pkg.HTTPError
// @Security Bearer
// @Router   /users/name/{name} [get]
func (h *UserHandler) FindByName(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	user, found, err := h.usecase.FindByName(c.Request.Context(), c.Param("name"), actor)
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{"message": "Usuário não encontrado"})
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

// Validate godoc
// @Summary  Check whether an account exists
// @Tags     users
// @Produce  json
// @Param    id path string true "User id"
// @Success  200 {object} map[string]bool
// @Router   /users/validate/{id} [get]
func (h *UserHandler) Validate(c *gin.Context) {
	exists, err := h.usecase.ValidateUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": exists})
}

// Update godoc
// @Summary  Update an account
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    id path string true "User id"
// @Param    payload body request.UpdateUserRequest true "Patch"
// @Success  200 {object} response.UserResponse
// @Failure  403 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	var payload request.UpdateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUserPayload.HTTPStatus, errInvalidUserPayload.ToHTTPError())
		return
	}

	actor := middleware.CurrentActor(c)
	user, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ResolveCommand(), actor)
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

// Remove godoc
// @Summary  Delete an account
// @Tags     users
// @Produce  json
// @Param    id path string true "User id"
// @Success  200 {object} map[string]string
// @Failure  403 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /users/{id} [delete]
func (h *UserHandler) Remove(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	if err := h.usecase.Remove(c.Request.Context(), c.Param("id"), actor); err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Usuário removido com sucesso"})
}

// ListByRole godoc
// @Summary  List accounts by role (admin only)
// @Tags     users
// @Produce  json
// @Param    role path string true "Role" Enums(admin, user, enterprise)
// @Success  200 {array} response.UserResponse
// @Failure  403 {object} pkg.HTTPError
// @Security Bearer
// @Router   /users/role/{role} [get]
func (h *UserHandler) ListByRole(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	users, err := h.usecase.ListByRole(c.Request.Context(), entities.Role(c.Param("role")), actor)
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(users))
}

func mapUserError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidUserInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Credenciais inválidas", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrNotAllowed):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Acesso negado", http.StatusForbidden)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "Usuário não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmailInUse):
		return pkg.NewDomainErrorSimple("EMAIL_IN_USE", "E-mail já cadastrado", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
