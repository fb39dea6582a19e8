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

var errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST_INPUT", "Invalid collection request payload", http.StatusBadRequest)

// RequestCollectionHandler handles HTTP requests for the pickup-request
// workflow. All routes run behind JWT auth.

type RequestCollectionHandler struct {
	usecase usecase.IRequestCollectionUseCase
}

func NewRequestCollectionHandler(uc usecase.IRequestCollectionUseCase) *RequestCollectionHandler {
	return &RequestCollectionHandler{usecase: uc}
}

// Create godoc
// @Summary  Request a pickup at an ecopoint
// @Tags     request-collection
// @Accept   json
// @Produce  json
// @Param    payload body request.CreateRequestCollectionRequest true "Request"
// @Success  201 {object} response.RequestCollectionResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /request-collection [post]
func (h *RequestCollectionHandler) Create(c *gin.Context) {
	var payload request.CreateRequestCollectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	actor := middleware.CurrentActor(c)
	created, err := h.usecase.Create(c.Request.Context(), payload.ResolveCommand(), actor.ID)
	if err != nil {
		appErr := mapRequestCollectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRequestCollection(created))
}

// FindByCompany godoc
// @Summary  List a company's incoming requests
// @Tags     request-collection
// @Produce  json
// @Param    companyId path string true "Company id"
// @Success  200 {array} response.RequestCollectionResponse
// @Failure  403 {object} pkg.HTTPError
// @Security Bearer
// @Router   /request-collection/company/{companyId} [get]
func (h *RequestCollectionHandler) FindByCompany(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	items, err := h.usecase.FindByCompany(c.Request.Context(), c.Param("companyId"), actor.ID)
	if err != nil {
		appErr := mapRequestCollectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRequestCollections(items))
}

// FindByUser godoc
// @Summary  List a requester's own requests
// @Tags     request-collection
// @Produce  json
// @Param    userId path string true "User id"
// @Success  200 {array} response.RequestCollectionResponse
// @Failure  403 {object} pkg.HTTPError
// @Security Bearer
// @Router   /request-collection/user/{userId} [get]
func (h *RequestCollectionHandler) FindByUser(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	items, err := h.usecase.FindByUser(c.Request.Context(), c.Param("userId"), actor.ID)
	if err != nil {
		appErr := mapRequestCollectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRequestCollections(items))
}

// UpdateStatus godoc
// @Summary  Transition a request's status
// @Tags     request-collection
// @Accept   json
// @Produce  json
// @Param    id path string true "Request id"
// @Param    payload body request.UpdateRequestStatusRequest true "New status"
// @Success  200 {object} response.RequestCollectionResponse
// @Failure  403 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /request-collection/{id}/status [patch]
func (h *RequestCollectionHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateRequestStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	actor := middleware.CurrentActor(c)
	updated, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus(), actor.ID)
	if err != nil {
		appErr := mapRequestCollectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRequestCollection(updated))
}

func mapRequestCollectionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID),
		errors.Is(err, usecase.ErrInvalidRequestInput),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrQuantityBelowMin):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEcoPointNotFound):
		return pkg.NewDomainErrorSimple("ECOPOINT_NOT_FOUND", "Ecoponto não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Solicitação não encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotRequestCompany), errors.Is(err, usecase.ErrNotRequestViewer):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Acesso negado", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
