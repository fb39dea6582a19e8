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
	ErrEcoPointNotFound     = errors.New("ecopoint not found")
	ErrNotEcoPointOwner     = errors.New("ecopoint owned by another company")
	ErrOnlyEnterprises      = errors.New("only enterprise accounts can register ecopoints")
	ErrInvalidEcoPointID    = errors.New("invalid ecopoint id")
	ErrInvalidEcoPointInput = errors.New("invalid ecopoint input")
	ErrCnpjRejected         = errors.New("cnpj invalid or not found in registry")
	ErrRegistryRateLimited  = errors.New("cnpj registry temporarily unavailable")
	ErrRegistryUnavailable  = errors.New("cnpj registry lookup failed")
)

// CreateEcoPointCommand carries the caller-supplied fields for a new
// ecopoint. The owning company is never taken from the payload: it is always
// stamped from the acting user.
type CreateEcoPointCommand struct {
	Title             string
	CNPJ              string
	OpeningHours      string
	Interval          string
	AcceptedMaterials []string
	Address           string
	Coordinates       string
}

// IEcoPointUseCase exposes ecopoint operations.
//
// Mutations are owner-only: Update and Remove take the acting user id and
// fail with ErrEcoPointNotFound or ErrNotEcoPointOwner. Reads are
// unrestricted.

type IEcoPointUseCase interface {
	Create(ctx context.Context, cmd CreateEcoPointCommand, actor entities.Actor) (entities.EcoPoint, error)
	FindAll(ctx context.Context) ([]entities.EcoPoint, error)
	FindOne(ctx context.Context, id string) (entities.EcoPoint, error)
	FindByCnpj(ctx context.Context, cnpj string) (entities.EcoPoint, bool, error)
	FindByCompanyID(ctx context.Context, companyID string) ([]entities.EcoPoint, error)
	UpdateWithPermission(ctx context.Context, id string, patch entities.EcoPointPatch, actingUserID string) (entities.EcoPoint, error)
	RemoveWithPermission(ctx context.Context, id string, actingUserID string) error
}

type EcoPointUseCase struct {
	repo      interfaces.IEcoPointRepository
	validator interfaces.ICnpjValidator
}

var _ IEcoPointUseCase = (*EcoPointUseCase)(nil)

func NewEcoPointUseCase(repo interfaces.IEcoPointRepository, validator interfaces.ICnpjValidator) *EcoPointUseCase {
	return &EcoPointUseCase{repo: repo, validator: validator}
}

// Create registers an ecopoint for the acting enterprise. The CNPJ is checked
// against the external registry before anything is persisted; only a valid
// lookup is acceptable.
func (u *EcoPointUseCase) Create(ctx context.Context, cmd CreateEcoPointCommand, actor entities.Actor) (entities.EcoPoint, error) {
	if actor.Role != entities.RoleEnterprise {
		return entities.EcoPoint{}, ErrOnlyEnterprises
	}

	if _, err := u.validator.Validate(ctx, cmd.CNPJ); err != nil {
		return entities.EcoPoint{}, mapRegistryError(err)
	}

	now := time.Now().UTC()
	e := entities.EcoPoint{
		ID:                uuid.NewString(),
		CompanyID:         actor.ID,
		Title:             cmd.Title,
		CNPJ:              cmd.CNPJ,
		OpeningHours:      cmd.OpeningHours,
		Interval:          cmd.Interval,
		AcceptedMaterials: cmd.AcceptedMaterials,
		Address:           cmd.Address,
		Coordinates:       cmd.Coordinates,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	return u.repo.Create(ctx, e)
}

func (u *EcoPointUseCase) FindAll(ctx context.Context) ([]entities.EcoPoint, error) {
	return u.repo.List(ctx)
}

func (u *EcoPointUseCase) FindOne(ctx context.Context, id string) (entities.EcoPoint, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EcoPoint{}, ErrInvalidEcoPointID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.EcoPoint{}, err
	}
	if e.ID == "" {
		return entities.EcoPoint{}, ErrEcoPointNotFound
	}
	return e, nil
}

// FindByCnpj returns the first ecopoint registered under the given CNPJ. A
// missing record is not an error here: the endpoint answers null.
func (u *EcoPointUseCase) FindByCnpj(ctx context.Context, cnpj string) (entities.EcoPoint, bool, error) {
	cnpj = strings.TrimSpace(cnpj)
	if cnpj == "" {
		return entities.EcoPoint{}, false, ErrInvalidEcoPointInput
	}

	e, err := u.repo.GetByCnpj(ctx, cnpj)
	if err != nil {
		return entities.EcoPoint{}, false, err
	}
	return e, e.ID != "", nil
}

func (u *EcoPointUseCase) FindByCompanyID(ctx context.Context, companyID string) ([]entities.EcoPoint, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, ErrInvalidEcoPointInput
	}
	return u.repo.ListByCompanyID(ctx, companyID)
}

// UpdateWithPermission applies the patch if and only if the acting user owns
// the ecopoint. The ownership check and the write are a single conditional
// update in the repository.
func (u *EcoPointUseCase) UpdateWithPermission(ctx context.Context, id string, patch entities.EcoPointPatch, actingUserID string) (entities.EcoPoint, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EcoPoint{}, ErrInvalidEcoPointID
	}
	if patch.Empty() {
		return entities.EcoPoint{}, ErrInvalidEcoPointInput
	}

	updated, err := u.repo.UpdateOwned(ctx, id, patch, actingUserID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotOwner) {
			return entities.EcoPoint{}, ErrNotEcoPointOwner
		}
		return entities.EcoPoint{}, err
	}
	if updated.ID == "" {
		return entities.EcoPoint{}, ErrEcoPointNotFound
	}
	return updated, nil
}

// RemoveWithPermission deletes the ecopoint if the acting user owns it, with
// the same conditional-write guarantee as UpdateWithPermission.
func (u *EcoPointUseCase) RemoveWithPermission(ctx context.Context, id string, actingUserID string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEcoPointID
	}

	err := u.repo.DeleteOwned(ctx, id, actingUserID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, interfaces.ErrRecordNotFound):
		return ErrEcoPointNotFound
	case errors.Is(err, interfaces.ErrNotOwner):
		return ErrNotEcoPointOwner
	default:
		return err
	}
}

// mapRegistryError translates validator error kinds into the usecase
// taxonomy so handlers can branch without knowing the adapter.
func mapRegistryError(err error) error {
	var regErr *interfaces.RegistryError
	switch {
	case errors.Is(err, interfaces.ErrCnpjFormat),
		errors.Is(err, interfaces.ErrCnpjNotFoundOrInvalid):
		return ErrCnpjRejected
	case errors.Is(err, interfaces.ErrCnpjRateLimited):
		return ErrRegistryRateLimited
	case errors.As(err, &regErr):
		return ErrRegistryUnavailable
	default:
		return ErrRegistryUnavailable
	}
}
