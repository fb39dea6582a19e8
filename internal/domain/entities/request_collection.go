package entities

import "time"

// RequestStatus is the lifecycle of a collection request.
//
// Domain notes:
//   - Requests start as "pendente" and are advanced by the owning company.
//   - Entering "em_coleta" marks the request notified (notified=true,
//     notified_at=now) in the same write.
//   - The enum is not constrained to a transition graph: any value may be
//     written from any other, matching the platform's historical behavior.

type RequestStatus string

const (
	RequestStatusPendente   RequestStatus = "pendente"
	RequestStatusAceita     RequestStatus = "aceita"
	RequestStatusEmColeta   RequestStatus = "em_coleta"
	RequestStatusFinalizada RequestStatus = "finalizada"
	RequestStatusRecusada   RequestStatus = "recusada"
)

// ValidRequestStatus reports whether s is one of the enum values.
func ValidRequestStatus(s string) bool {
	switch RequestStatus(s) {
	case RequestStatusPendente, RequestStatusAceita, RequestStatusEmColeta,
		RequestStatusFinalizada, RequestStatusRecusada:
		return true
	}
	return false
}

// MinCollectionQuantity is the minimum pickup threshold accepted by the
// platform.
const MinCollectionQuantity = 50

// RequestCollection is a user-submitted pickup request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id
//   - GSI2 (user_id-index): user_id
//
// CompanyID is denormalized from the referenced ecopoint at creation time and
// is the sole authority for who may transition status. It is never re-derived
// from the ecopoint afterwards, even if the ecopoint changes owner.

type RequestCollection struct {
	ID          string        `json:"id"`
	UserID      string        `json:"user_id"`
	CompanyID   string        `json:"company_id"`
	EcopointID  string        `json:"ecopoint_id"`
	Quantity    int           `json:"quantity"`
	Material    string        `json:"material"`
	Address     string        `json:"address"`
	Description string        `json:"description"`
	Status      RequestStatus `json:"status"`
	Notified    bool          `json:"notified"`
	NotifiedAt  *time.Time    `json:"notified_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
