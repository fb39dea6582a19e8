package request

import (
	"errors"
	"testing"
)

func TestCreateEcoPointRequest_ResolveCommand(t *testing.T) {
	valid := CreateEcoPointRequest{
		Title:             " Ecoponto Centro ",
		CNPJ:              "12.345.678/0001-95",
		OpeningHours:      "08:00-18:00",
		Interval:          "12:00-13:00",
		AcceptedMaterials: []string{" vidro ", "", "papel"},
		Address:           "Rua A, 123",
		Coordinates:       " -9.741951520552348,-36.660397991379185 ",
	}

	t.Run("trims and keeps non-empty materials", func(t *testing.T) {
		cmd, err := valid.ResolveCommand()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cmd.Title != "Ecoponto Centro" {
			t.Fatalf("title not trimmed: %q", cmd.Title)
		}
		if len(cmd.AcceptedMaterials) != 2 {
			t.Fatalf("expected 2 materials, got %v", cmd.AcceptedMaterials)
		}
		if cmd.Coordinates != "-9.741951520552348,-36.660397991379185" {
			t.Fatalf("coordinates not trimmed: %q", cmd.Coordinates)
		}
	})

	t.Run("rejects empty materials", func(t *testing.T) {
		r := valid
		r.AcceptedMaterials = []string{"  ", ""}
		if _, err := r.ResolveCommand(); !errors.Is(err, ErrNoMaterials) {
			t.Fatalf("expected ErrNoMaterials, got %v", err)
		}
	})

	t.Run("rejects malformed coordinates", func(t *testing.T) {
		for _, bad := range []string{"abc", "-9.74", "-9.74,-", "-9,74,-36,66", "-191.0,-36.6"} {
			r := valid
			r.Coordinates = bad
			if _, err := r.ResolveCommand(); !errors.Is(err, ErrInvalidCoordinates) {
				t.Fatalf("coordinates %q: expected ErrInvalidCoordinates, got %v", bad, err)
			}
		}
	})

	t.Run("accepts positive coordinates with space", func(t *testing.T) {
		r := valid
		r.Coordinates = "9.7419515,36.6603979"
		if _, err := r.ResolveCommand(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		r.Coordinates = "-9.7419515, -36.6603979"
		if _, err := r.ResolveCommand(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestUpdateEcoPointRequest_ResolvePatch(t *testing.T) {
	t.Run("empty payload changes nothing", func(t *testing.T) {
		if _, err := (UpdateEcoPointRequest{}).ResolvePatch(); !errors.Is(err, ErrEmptyPatch) {
			t.Fatalf("expected ErrEmptyPatch, got %v", err)
		}
	})

	t.Run("partial patch keeps absent fields nil", func(t *testing.T) {
		title := " Novo título "
		patch, err := UpdateEcoPointRequest{Title: &title}.ResolvePatch()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patch.Title == nil || *patch.Title != "Novo título" {
			t.Fatalf("title not trimmed: %v", patch.Title)
		}
		if patch.Address != nil || patch.Coordinates != nil || patch.AcceptedMaterials != nil {
			t.Fatal("absent fields must stay nil")
		}
	})

	t.Run("rejects bad coordinates", func(t *testing.T) {
		bad := "not-a-coordinate"
		if _, err := (UpdateEcoPointRequest{Coordinates: &bad}).ResolvePatch(); !errors.Is(err, ErrInvalidCoordinates) {
			t.Fatalf("expected ErrInvalidCoordinates, got %v", err)
		}
	})

	t.Run("rejects materials emptied by the patch", func(t *testing.T) {
		empty := []string{" "}
		if _, err := (UpdateEcoPointRequest{AcceptedMaterials: &empty}).ResolvePatch(); !errors.Is(err, ErrNoMaterials) {
			t.Fatalf("expected ErrNoMaterials, got %v", err)
		}
	})
}
