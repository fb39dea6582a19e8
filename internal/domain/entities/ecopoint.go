package entities

import "time"

// EcoPoint is a physical collection point for recyclable materials, owned by
// exactly one enterprise account.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (company_id-index): company_id
//   - GSI2 (cnpj-index): cnpj
//
// CompanyID references the owning enterprise User and is immutable after
// creation: every mutation is gated on it, and no patch can carry it.
// CNPJ is not unique across installations, so lookups by CNPJ return the
// first match.

type EcoPoint struct {
	ID                string    `json:"id"`
	CompanyID         string    `json:"company_id"`
	Title             string    `json:"title"`
	CNPJ              string    `json:"cnpj"`
	OpeningHours      string    `json:"opening_hours"`
	Interval          string    `json:"interval"`
	AcceptedMaterials []string  `json:"accepted_materials"`
	Address           string    `json:"address"`
	Coordinates       string    `json:"coordinates"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// EcoPointPatch is the set of fields an owner may change on its ecopoint.
// Nil fields are left untouched. CompanyID is deliberately absent: ownership
// never moves through the update path.
type EcoPointPatch struct {
	Title             *string
	CNPJ              *string
	OpeningHours      *string
	Interval          *string
	AcceptedMaterials *[]string
	Address           *string
	Coordinates       *string
}

// Empty reports whether the patch changes nothing.
func (p EcoPointPatch) Empty() bool {
	return p.Title == nil && p.CNPJ == nil && p.OpeningHours == nil &&
		p.Interval == nil && p.AcceptedMaterials == nil && p.Address == nil &&
		p.Coordinates == nil
}
