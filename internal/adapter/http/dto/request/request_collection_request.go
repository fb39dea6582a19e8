package request

import (
	"strings"

	"ecopontos_arapiraca/internal/domain/entities"
	"ecopontos_arapiraca/internal/usecase"
)

// CreateRequestCollectionRequest is the payload for POST /request-collection.
// The requester and the owning company are stamped server-side.
type CreateRequestCollectionRequest struct {
	EcopointID  string `json:"ecopoint_id" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,min=50"`
	Material    string `json:"material" binding:"required"`
	Address     string `json:"address" binding:"required"`
	Description string `json:"description"`
}

func (r CreateRequestCollectionRequest) ResolveCommand() usecase.CreateRequestCommand {
	return usecase.CreateRequestCommand{
		EcopointID:  strings.TrimSpace(r.EcopointID),
		Quantity:    r.Quantity,
		Material:    strings.TrimSpace(r.Material),
		Address:     strings.TrimSpace(r.Address),
		Description: strings.TrimSpace(r.Description),
	}
}

// UpdateRequestStatusRequest is the payload for PATCH
// /request-collection/:id/status.
type UpdateRequestStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pendente aceita em_coleta finalizada recusada"`
}

func (r UpdateRequestStatusRequest) ResolveStatus() entities.RequestStatus {
	return entities.RequestStatus(strings.TrimSpace(r.Status))
}
