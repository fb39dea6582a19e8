package interfaces

import (
	"context"

	"ecopontos_arapiraca/internal/domain/entities"
)

//go:generate mockgen -source=user_repository_interface.go -destination=mocks/mock_user_repository.go -package=mock_interfaces

// IUserRepository abstracts DynamoDB persistence for User accounts.
type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	GetByName(ctx context.Context, name string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	ListByRole(ctx context.Context, role entities.Role) ([]entities.User, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id string, patch entities.UserPatch) (entities.User, error)
	Delete(ctx context.Context, id string) error
}
