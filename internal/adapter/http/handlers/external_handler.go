package handlers

import (
	"errors"
	"net/http"

	"ecopontos_arapiraca/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// ExternalHandler proxies public lookups against external services so the
// frontend never talks to them directly.

type ExternalHandler struct {
	validator interfaces.ICnpjValidator
}

func NewExternalHandler(validator interfaces.ICnpjValidator) *ExternalHandler {
	return &ExternalHandler{validator: validator}
}

// LookupCnpj godoc
// @Summary  Consult the business registry for a CNPJ
// @Tags     external
// @Produce  json
// @Param    cnpj path string true "CNPJ, digits only or formatted"
// @Success  200 {object} map[string]interface{}
// @Failure  400 {object} map[string]interface{}
// @Failure  429 {object} map[string]interface{}
// @Failure  502 {object} map[string]interface{}
// @Router   /external/cnpj/{cnpj} [get]
func (h *ExternalHandler) LookupCnpj(c *gin.Context) {
	data, err := h.validator.Validate(c.Request.Context(), c.Param("cnpj"))
	if err != nil {
		status, message := mapRegistryLookupError(err)
		c.JSON(status, gin.H{"success": false, "message": message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func mapRegistryLookupError(err error) (int, string) {
	switch {
	case errors.Is(err, interfaces.ErrCnpjFormat):
		return http.StatusBadRequest, "CNPJ deve conter 14 dígitos"
	case errors.Is(err, interfaces.ErrCnpjNotFoundOrInvalid):
		return http.StatusBadRequest, "CNPJ inválido ou não encontrado"
	case errors.Is(err, interfaces.ErrCnpjRateLimited):
		return http.StatusTooManyRequests, "Serviço de consulta temporariamente indisponível"
	default:
		return http.StatusBadGateway, "Falha ao consultar o CNPJ"
	}
}
