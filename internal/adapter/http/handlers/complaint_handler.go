package handlers

import (
	"errors"
	"net/http"

	request "ecopontos_arapiraca/internal/adapter/http/dto/request"
	"ecopontos_arapiraca/internal/usecase"
	"ecopontos_arapiraca/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidComplaintPayload = pkg.NewDomainErrorSimple("INVALID_COMPLAINT_INPUT", "Invalid complaint payload", http.StatusBadRequest)

// ComplaintHandler forwards user complaints to the platform mailbox.

type ComplaintHandler struct {
	usecase usecase.IComplaintUseCase
}

func NewComplaintHandler(uc usecase.IComplaintUseCase) *ComplaintHandler {
	return &ComplaintHandler{usecase: uc}
}

// Submit godoc
// @Summary  Send a complaint to the platform team
// @Tags     complaints
// @Accept   json
// @Produce  json
// @Param    payload body request.ComplaintRequest true "Complaint"
// @Success  200 {object} map[string]string
// @Failure  400 {object} pkg.HTTPError
// @Failure  500 {object} pkg.HTTPError
// @Router   /reclamacao [post]
func (h *ComplaintHandler) Submit(c *gin.Context) {
	var payload request.ComplaintRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidComplaintPayload.HTTPStatus, errInvalidComplaintPayload.ToHTTPError())
		return
	}

	err := h.usecase.Submit(c.Request.Context(), payload.Nome, payload.Email, payload.Mensagem)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidComplaint) {
			c.JSON(errInvalidComplaintPayload.HTTPStatus, errInvalidComplaintPayload.ToHTTPError())
			return
		}
		appErr := pkg.NewDomainError("MAIL_DELIVERY_FAILED", "Não foi possível enviar a reclamação", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reclamação enviada com sucesso"})
}
