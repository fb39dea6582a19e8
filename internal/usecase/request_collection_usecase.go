package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"ecopontos_arapiraca/internal/domain/entities"
	"ecopontos_arapiraca/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound     = errors.New("collection request not found")
	ErrNotRequestCompany   = errors.New("collection request belongs to another company")
	ErrNotRequestViewer    = errors.New("collection requests can only be listed by their owner")
	ErrInvalidRequestID    = errors.New("invalid collection request id")
	ErrInvalidRequestInput = errors.New("invalid collection request input")
	ErrInvalidStatus       = errors.New("invalid collection request status")
	ErrQuantityBelowMin    = errors.New("quantity below minimum pickup threshold")
)

// CreateRequestCommand carries the caller-supplied fields for a new pickup
// request. UserID and CompanyID are stamped by the use case, never by the
// caller.
type CreateRequestCommand struct {
	EcopointID  string
	Quantity    int
	Material    string
	Address     string
	Description string
}

// IRequestCollectionUseCase exposes the pickup-request workflow.
//
// Listing is self-only on both sides (requester and company). Status
// transitions are company-only and atomic with respect to the ownership
// check.

type IRequestCollectionUseCase interface {
	Create(ctx context.Context, cmd CreateRequestCommand, requestingUserID string) (entities.RequestCollection, error)
	FindByCompany(ctx context.Context, companyID, actingUserID string) ([]entities.RequestCollection, error)
	FindByUser(ctx context.Context, userID, actingUserID string) ([]entities.RequestCollection, error)
	FindByID(ctx context.Context, id string) (entities.RequestCollection, error)
	UpdateStatus(ctx context.Context, id string, status entities.RequestStatus, actingCompanyID string) (entities.RequestCollection, error)
}

type RequestCollectionUseCase struct {
	repo      interfaces.IRequestCollectionRepository
	ecopoints interfaces.IEcoPointRepository
}

var _ IRequestCollectionUseCase = (*RequestCollectionUseCase)(nil)

func NewRequestCollectionUseCase(repo interfaces.IRequestCollectionRepository, ecopoints interfaces.IEcoPointRepository) *RequestCollectionUseCase {
	return &RequestCollectionUseCase{repo: repo, ecopoints: ecopoints}
}

// Create resolves the referenced ecopoint and persists a new request stamped
// with the requesting user and the ecopoint's current owner. This is the only
// point where CompanyID is set; it never follows later ownership changes.
func (u *RequestCollectionUseCase) Create(ctx context.Context, cmd CreateRequestCommand, requestingUserID string) (entities.RequestCollection, error) {
	ecopointID := strings.TrimSpace(cmd.EcopointID)
	if ecopointID == "" || strings.TrimSpace(requestingUserID) == "" {
		return entities.RequestCollection{}, ErrInvalidRequestInput
	}
	if cmd.Quantity < entities.MinCollectionQuantity {
		return entities.RequestCollection{}, ErrQuantityBelowMin
	}
	if strings.TrimSpace(cmd.Material) == "" || strings.TrimSpace(cmd.Address) == "" {
		return entities.RequestCollection{}, ErrInvalidRequestInput
	}

	ecopoint, err := u.ecopoints.GetByID(ctx, ecopointID)
	if err != nil {
		return entities.RequestCollection{}, err
	}
	if ecopoint.ID == "" {
		return entities.RequestCollection{}, ErrEcoPointNotFound
	}

	now := time.Now().UTC()
	r := entities.RequestCollection{
		ID:          uuid.NewString(),
		UserID:      requestingUserID,
		CompanyID:   ecopoint.CompanyID,
		EcopointID:  ecopoint.ID,
		Quantity:    cmd.Quantity,
		Material:    cmd.Material,
		Address:     cmd.Address,
		Description: cmd.Description,
		Status:      entities.RequestStatusPendente,
		Notified:    false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, r)
}

// FindByCompany lists a company's incoming requests. Only the company itself
// may call it.
func (u *RequestCollectionUseCase) FindByCompany(ctx context.Context, companyID, actingUserID string) ([]entities.RequestCollection, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, ErrInvalidRequestInput
	}
	if companyID != actingUserID {
		return nil, ErrNotRequestViewer
	}
	return u.repo.ListByCompanyID(ctx, companyID)
}

// FindByUser lists a requester's own requests. Only the requester may call it.
func (u *RequestCollectionUseCase) FindByUser(ctx context.Context, userID, actingUserID string) ([]entities.RequestCollection, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidRequestInput
	}
	if userID != actingUserID {
		return nil, ErrNotRequestViewer
	}
	return u.repo.ListByUserID(ctx, userID)
}

func (u *RequestCollectionUseCase) FindByID(ctx context.Context, id string) (entities.RequestCollection, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RequestCollection{}, ErrInvalidRequestID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.RequestCollection{}, err
	}
	if r.ID == "" {
		return entities.RequestCollection{}, ErrRequestNotFound
	}
	return r, nil
}

// UpdateStatus transitions the request if and only if the acting company owns
// it. Entering em_coleta also marks the request notified, in the same write.
// Any enum value may be written from any other; the lifecycle is not
// constrained to a transition graph.
func (u *RequestCollectionUseCase) UpdateStatus(ctx context.Context, id string, status entities.RequestStatus, actingCompanyID string) (entities.RequestCollection, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RequestCollection{}, ErrInvalidRequestID
	}
	if !entities.ValidRequestStatus(string(status)) {
		return entities.RequestCollection{}, ErrInvalidStatus
	}

	markNotified := status == entities.RequestStatusEmColeta

	updated, err := u.repo.UpdateStatusOwned(ctx, id, status, markNotified, actingCompanyID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotOwner) {
			return entities.RequestCollection{}, ErrNotRequestCompany
		}
		return entities.RequestCollection{}, err
	}
	if updated.ID == "" {
		return entities.RequestCollection{}, ErrRequestNotFound
	}
	return updated, nil
}
