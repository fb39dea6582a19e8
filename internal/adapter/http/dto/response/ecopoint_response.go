package response

import (
	"time"

	"ecopontos_arapiraca/internal/domain/entities"
)

// EcoPointResponse is the public projection of an ecopoint. It is never the
// raw stored record: identifiers are plain strings and nothing
// password-equivalent exists here.
type EcoPointResponse struct {
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

func FromEcoPoint(e entities.EcoPoint) EcoPointResponse {
	return EcoPointResponse{
		ID:                e.ID,
		CompanyID:         e.CompanyID,
		Title:             e.Title,
		CNPJ:              e.CNPJ,
		OpeningHours:      e.OpeningHours,
		Interval:          e.Interval,
		AcceptedMaterials: e.AcceptedMaterials,
		Address:           e.Address,
		Coordinates:       e.Coordinates,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func FromEcoPoints(items []entities.EcoPoint) []EcoPointResponse {
	out := make([]EcoPointResponse, 0, len(items))
	for _, e := range items {
		out = append(out, FromEcoPoint(e))
	}
	return out
}
