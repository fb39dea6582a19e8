package handlers

import (
	"errors"
	"net/http"

	request "ecopontos_arapiraca/internal/adapter/http/dto/request"
	response "ecopontos_arapiraca/internal/adapter/http/dto/response"
	"ecopontos_arapiraca/internal/adapter/http/middleware"
	"ecopontos_arapiraca/internal/usecase"
	"ecopontos_arapiraca/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEcoPointPayload = pkg.NewDomainErrorSimple("INVALID_ECOPOINT_INPUT", "Invalid ecopoint payload", http.StatusBadRequest)

// EcoPointHandler handles HTTP requests for collection points.
//
// Reads are public; creation requires an enterprise token and mutations
// require ownership.

type EcoPointHandler struct {
	usecase usecase.IEcoPointUseCase
}

func NewEcoPointHandler(uc usecase.IEcoPointUseCase) *EcoPointHandler {
	return &EcoPointHandler{usecase: uc}
}

// Create godoc
// @Summary  Register an ecopoint
// @Tags     ecopoints
// @Accept   json
// @Produce  json
// @Param    payload body request.CreateEcoPointRequest true "EcoPoint"
// @Success  201 {object} response.EcoPointResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  403 {object} pkg.HTTPError
// @Security Bearer
// @Router   /ecopoints [post]
func (h *EcoPointHandler) Create(c *gin.Context) {
	var payload request.CreateEcoPointRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEcoPointPayload.HTTPStatus, errInvalidEcoPointPayload.ToHTTPError())
		return
	}

	cmd, err := payload.ResolveCommand()
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_ECOPOINT_INPUT", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	ecopoint, err := h.usecase.Create(c.Request.Context(), cmd, middleware.CurrentActor(c))
	if err != nil {
		appErr := mapEcoPointError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEcoPoint(ecopoint))
}

// FindAll godoc
// @Summary  List all ecopoints
// @Tags     ecopoints
// @Produce  json
// @Success  200 {array} response.EcoPointResponse
// @Router   /ecopoints [get]
func (h *EcoPointHandler) FindAll(c *gin.Context) {
	items, err := h.usecase.FindAll(c.Request.Context())
	if err != nil {
		appErr := mapEcoPointError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEcoPoints(items))
}

// FindOne godoc
// @Summary  Get one ecopoint
// @Tags     ecopoints
// @Produce  json
// @Param    id path string true "EcoPoint id"
// @Success  200 {object} response.EcoPointResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /ecopoints/{id} [get]
func (h *EcoPointHandler) FindOne(c *gin.Context) {
	ecopoint, err := h.usecase.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEcoPointError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEcoPoint(ecopoint))
}

// FindByCnpj godoc
// @Summary  Look an ecopoint up by registry number
// @Tags     ecopoints
// @Produce  json
// @Param    cnpj path string true "CNPJ"
// @Success  200 {object} response.EcoPointResponse
// @Router   /ecopoints/cnpj/{cnpj} [get]
func (h *EcoPointHandler) FindByCnpj(c *gin.Context) {
	ecopoint, found, err := h.usecase.FindByCnpj(c.Request.Context(), c.Param("cnpj"))
	if err != nil {
		appErr := mapEcoPointError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !found {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, response.FromEcoPoint(ecopoint))
}

// FindByCompany godoc
// @Summary  List a company's ecopoints
// @Tags     ecopoints
// @Produce  json
// @Param    companyId path string true "Company id"
// @Success  200 {array} response.EcoPointResponse
// @Router   /ecopoints/my-ecopoints/{companyId} [get]
func (h *EcoPointHandler) FindByCompany(c *gin.Context) {
	items, err := h.usecase.FindByCompanyID(c.Request.Context(), c.Param("companyId"))
	if err != nil {
		appErr := mapEcoPointError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEcoPoints(items))
}

// Update godoc
// @Summary  Update an owned ecopoint
// @Tags     ecopoints
// @Accept   json
// @Produce  json
// @Param    id path string true "EcoPoint id"
// @Param    payload body request.UpdateEcoPointRequest true "Patch"
// @Success  200 {object} response.EcoPointResponse
// @Failure  403 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /ecopoints/{id} [patch]
func (h *EcoPointHandler) Update(c *gin.Context) {
	var payload request.UpdateEcoPointRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEcoPointPayload.HTTPStatus, errInvalidEcoPointPayload.ToHTTPError())
		return
	}

	patch, err := payload.ResolvePatch()
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_ECOPOINT_INPUT", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	actor := middleware.CurrentActor(c)
	ecopoint, err := h.usecase.UpdateWithPermission(c.Request.Context(), c.Param("id"), patch, actor.ID)
	if err != nil {
		appErr := mapEcoPointError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEcoPoint(ecopoint))
}

// Remove godoc
// @Summary  Delete an owned ecopoint
// @Tags     ecopoints
// @Produce  json
// @Param    id path string true "EcoPoint id"
// @Success  200 {object} map[string]string
// @Failure  403 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /ecopoints/{id} [delete]
func (h *EcoPointHandler) Remove(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	if err := h.usecase.RemoveWithPermission(c.Request.Context(), c.Param("id"), actor.ID); err != nil {
		appErr := mapEcoPointError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "EcoPoint removido com sucesso"})
}

func mapEcoPointError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEcoPointID), errors.Is(err, usecase.ErrInvalidEcoPointInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOnlyEnterprises):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Apenas empresas podem cadastrar ecopontos", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNotEcoPointOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Acesso negado", http.StatusForbidden)
	case errors.Is(err, usecase.ErrEcoPointNotFound):
		return pkg.NewDomainErrorSimple("ECOPOINT_NOT_FOUND", "EcoPoint não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCnpjRejected):
		return pkg.NewDomainErrorSimple("CNPJ_INVALID", "CNPJ inválido ou não encontrado", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRegistryRateLimited):
		return pkg.NewDomainErrorSimple("REGISTRY_RATE_LIMITED", "Serviço de consulta de CNPJ temporariamente indisponível", http.StatusTooManyRequests)
	case errors.Is(err, usecase.ErrRegistryUnavailable):
		return pkg.NewDomainErrorSimple("REGISTRY_UNAVAILABLE", "Falha ao consultar o CNPJ", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
