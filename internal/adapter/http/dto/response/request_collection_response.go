package response

import (
	"time"

	"ecopontos_arapiraca/internal/domain/entities"
)

// RequestCollectionResponse is the public projection of a pickup request.
type RequestCollectionResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	CompanyID   string     `json:"company_id"`
	EcopointID  string     `json:"ecopoint_id"`
	Quantity    int        `json:"quantity"`
	Material    string     `json:"material"`
	Address     string     `json:"address"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Notified    bool       `json:"notified"`
	NotifiedAt  *time.Time `json:"notified_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func FromRequestCollection(r entities.RequestCollection) RequestCollectionResponse {
	return RequestCollectionResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		CompanyID:   r.CompanyID,
		EcopointID:  r.EcopointID,
		Quantity:    r.Quantity,
		Material:    r.Material,
		Address:     r.Address,
		Description: r.Description,
		Status:      string(r.Status),
		Notified:    r.Notified,
		NotifiedAt:  r.NotifiedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func FromRequestCollections(items []entities.RequestCollection) []RequestCollectionResponse {
	out := make([]RequestCollectionResponse, 0, len(items))
	for _, r := range items {
		out = append(out, FromRequestCollection(r))
	}
	return out
}
