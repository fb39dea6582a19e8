package interfaces

import (
	"context"

	"ecopontos_arapiraca/internal/domain/entities"
)

//go:generate mockgen -source=ecopoint_repository_interface.go -destination=mocks/mock_ecopoint_repository.go -package=mock_interfaces

// IEcoPointRepository abstracts DynamoDB persistence for EcoPoint.
//
// Ownership-gated writes (UpdateOwned, DeleteOwned) must be conditional on
// company_id so the permission check and the write happen as one atomic
// operation: a plain read-then-write would leave a lost-update window.
type IEcoPointRepository interface {
	Create(ctx context.Context, e entities.EcoPoint) (entities.EcoPoint, error)
	GetByID(ctx context.Context, id string) (entities.EcoPoint, error)
	GetByCnpj(ctx context.Context, cnpj string) (entities.EcoPoint, error)
	List(ctx context.Context) ([]entities.EcoPoint, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]entities.EcoPoint, error)
	UpdateOwned(ctx context.Context, id string, patch entities.EcoPointPatch, companyID string) (entities.EcoPoint, error)
	DeleteOwned(ctx context.Context, id string, companyID string) error
}
