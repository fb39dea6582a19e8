package request

import (
	"errors"
	"regexp"
	"strings"

	"ecopontos_arapiraca/internal/domain/entities"
	"ecopontos_arapiraca/internal/usecase"
)

var (
	ErrInvalidCoordinates = errors.New("coordinates must be in latitude,longitude decimal format")
	ErrNoMaterials        = errors.New("at least one accepted material is required")
	ErrEmptyPatch         = errors.New("update payload changes nothing")
)

// coordinatesRe accepts "<lat>,<lon>" decimals, e.g.
// "-9.741951520552348,-36.660397991379185".
var coordinatesRe = regexp.MustCompile(`^[-+]?\d{1,2}\.\d+,\s*[-+]?\d{1,3}\.\d+$`)

// CreateEcoPointRequest is the payload for POST /ecopoints. The owning
// company is taken from the bearer token, never from the body.
type CreateEcoPointRequest struct {
	Title             string   `json:"title" binding:"required"`
	CNPJ              string   `json:"cnpj" binding:"required"`
	OpeningHours      string   `json:"opening_hours" binding:"required"`
	Interval          string   `json:"interval" binding:"required"`
	AcceptedMaterials []string `json:"accepted_materials" binding:"required"`
	Address           string   `json:"address" binding:"required"`
	Coordinates       string   `json:"coordinates" binding:"required"`
}

func (r CreateEcoPointRequest) ResolveCommand() (usecase.CreateEcoPointCommand, error) {
	materials := trimAll(r.AcceptedMaterials)
	if len(materials) == 0 {
		return usecase.CreateEcoPointCommand{}, ErrNoMaterials
	}

	coordinates := strings.TrimSpace(r.Coordinates)
	if !coordinatesRe.MatchString(coordinates) {
		return usecase.CreateEcoPointCommand{}, ErrInvalidCoordinates
	}

	return usecase.CreateEcoPointCommand{
		Title:             strings.TrimSpace(r.Title),
		CNPJ:              strings.TrimSpace(r.CNPJ),
		OpeningHours:      strings.TrimSpace(r.OpeningHours),
		Interval:          strings.TrimSpace(r.Interval),
		AcceptedMaterials: materials,
		Address:           strings.TrimSpace(r.Address),
		Coordinates:       coordinates,
	}, nil
}

// UpdateEcoPointRequest is the payload for PATCH /ecopoints/:id. Every field
// is optional; absent fields are left untouched. There is deliberately no
// company field here, and the patch type it resolves into cannot carry one:
// ownership never moves through this endpoint.
type UpdateEcoPointRequest struct {
	Title             *string   `json:"title"`
	CNPJ              *string   `json:"cnpj"`
	OpeningHours      *string   `json:"opening_hours"`
	Interval          *string   `json:"interval"`
	AcceptedMaterials *[]string `json:"accepted_materials"`
	Address           *string   `json:"address"`
	Coordinates       *string   `json:"coordinates"`
}

func (r UpdateEcoPointRequest) ResolvePatch() (entities.EcoPointPatch, error) {
	patch := entities.EcoPointPatch{
		Title:        trimmed(r.Title),
		CNPJ:         trimmed(r.CNPJ),
		OpeningHours: trimmed(r.OpeningHours),
		Interval:     trimmed(r.Interval),
		Address:      trimmed(r.Address),
	}

	if r.AcceptedMaterials != nil {
		materials := trimAll(*r.AcceptedMaterials)
		if len(materials) == 0 {
			return entities.EcoPointPatch{}, ErrNoMaterials
		}
		patch.AcceptedMaterials = &materials
	}

	if r.Coordinates != nil {
		coordinates := strings.TrimSpace(*r.Coordinates)
		if !coordinatesRe.MatchString(coordinates) {
			return entities.EcoPointPatch{}, ErrInvalidCoordinates
		}
		patch.Coordinates = &coordinates
	}

	if patch.Empty() {
		return entities.EcoPointPatch{}, ErrEmptyPatch
	}
	return patch, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if v := strings.TrimSpace(s); v != "" {
			out = append(out, v)
		}
	}
	return out
}
