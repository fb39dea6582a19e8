package interfaces

import (
	"context"

	"ecopontos_arapiraca/internal/domain/entities"
)

//go:generate mockgen -source=request_collection_repository_interface.go -destination=mocks/mock_request_collection_repository.go -package=mock_interfaces

// IRequestCollectionRepository abstracts DynamoDB persistence for
// RequestCollection.
//
// UpdateStatusOwned applies the status change conditionally on company_id in
// a single UpdateItem. When markNotified is set it also writes notified=true
// and notified_at in the same expression, so the em_coleta side effect can
// never be observed half-applied.
type IRequestCollectionRepository interface {
	Create(ctx context.Context, r entities.RequestCollection) (entities.RequestCollection, error)
	GetByID(ctx context.Context, id string) (entities.RequestCollection, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]entities.RequestCollection, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.RequestCollection, error)
	UpdateStatusOwned(ctx context.Context, id string, status entities.RequestStatus, markNotified bool, companyID string) (entities.RequestCollection, error)
}
