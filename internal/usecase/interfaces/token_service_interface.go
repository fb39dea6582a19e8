package interfaces

import "ecopontos_arapiraca/internal/domain/entities"

//go:generate mockgen -source=token_service_interface.go -destination=mocks/mock_token_service.go -package=mock_interfaces

// ITokenService issues bearer tokens for authenticated accounts.
type ITokenService interface {
	GenerateToken(userID string, role entities.Role) (string, error)
}
