package usecase

import (
	"context"
	"errors"
	"testing"

	"ecopontos_arapiraca/internal/domain/entities"
	"ecopontos_arapiraca/internal/usecase/interfaces"
	mock_interfaces "ecopontos_arapiraca/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validEcoPointCommand() CreateEcoPointCommand {
	return CreateEcoPointCommand{
		Title:             "Ecoponto Centro",
		CNPJ:              "12.345.678/0001-95",
		OpeningHours:      "08:00-18:00",
		Interval:          "12:00-13:00",
		AcceptedMaterials: []string{"vidro", "papel"},
		Address:           "Rua A, 123",
		Coordinates:       "-9.741951520552348,-36.660397991379185",
	}
}

func TestEcoPointUseCase_Create(t *testing.T) {
	enterprise := entities.Actor{ID: "company-1", Role: entities.RoleEnterprise}

	t.Run("non enterprise actor", func(t *testing.T) {
		uc := NewEcoPointUseCase(nil, nil)
		_, err := uc.Create(context.Background(), validEcoPointCommand(), entities.Actor{ID: "u1", Role: entities.RoleUser})
		if !errors.Is(err, ErrOnlyEnterprises) {
			t.Fatalf("expected ErrOnlyEnterprises, got %v", err)
		}
	})

	t.Run("cnpj invalid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		validator := mock_interfaces.NewMockICnpjValidator(ctrl)
		uc := NewEcoPointUseCase(nil, validator)

		validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil, interfaces.ErrCnpjNotFoundOrInvalid)

		_, err := uc.Create(context.Background(), validEcoPointCommand(), enterprise)
		if !errors.Is(err, ErrCnpjRejected) {
			t.Fatalf("expected ErrCnpjRejected, got %v", err)
		}
	})

	t.Run("cnpj format rejected before persisting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		validator := mock_interfaces.NewMockICnpjValidator(ctrl)
		repo := mock_interfaces.NewMockIEcoPointRepository(ctrl)
		uc := NewEcoPointUseCase(repo, validator)

		validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil, interfaces.ErrCnpjFormat)

		cmd := validEcoPointCommand()
		cmd.CNPJ = "123"
		_, err := uc.Create(context.Background(), cmd, enterprise)
		if !errors.Is(err, ErrCnpjRejected) {
			t.Fatalf("expected ErrCnpjRejected, got %v", err)
		}
	})

	t.Run("registry rate limited", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		validator := mock_interfaces.NewMockICnpjValidator(ctrl)
		uc := NewEcoPointUseCase(nil, validator)

		validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil, interfaces.ErrCnpjRateLimited)

		_, err := uc.Create(context.Background(), validEcoPointCommand(), enterprise)
		if !errors.Is(err, ErrRegistryRateLimited) {
			t.Fatalf("expected ErrRegistryRateLimited, got %v", err)
		}
	})

	t.Run("registry unreachable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		validator := mock_interfaces.NewMockICnpjValidator(ctrl)
		uc := NewEcoPointUseCase(nil, validator)

		validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil, &interfaces.RegistryError{Message: "timeout"})

		_, err := uc.Create(context.Background(), validEcoPointCommand(), enterprise)
		if !errors.Is(err, ErrRegistryUnavailable) {
			t.Fatalf("expected ErrRegistryUnavailable, got %v", err)
		}
	})

	t.Run("success stamps acting company", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		validator := mock_interfaces.NewMockICnpjValidator(ctrl)
		repo := mock_interfaces.NewMockIEcoPointRepository(ctrl)
		uc := NewEcoPointUseCase(repo, validator)

		validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(map[string]interface{}{"status": "OK"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.EcoPoint) (entities.EcoPoint, error) {
				if e.ID == "" {
					t.Fatal("expected generated id")
				}
				if e.CompanyID != "company-1" {
					t.Fatalf("expected company stamped from actor, got %q", e.CompanyID)
				}
				return e, nil
			})

		created, err := uc.Create(context.Background(), validEcoPointCommand(), enterprise)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Title != "Ecoponto Centro" {
			t.Fatalf("unexpected title %q", created.Title)
		}
	})
}

func TestEcoPointUseCase_FindOne(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewEcoPointUseCase(nil, nil)
		_, err := uc.FindOne(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidEcoPointID) {
			t.Fatalf("expected ErrInvalidEcoPointID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEcoPointRepository(ctrl)
		uc := NewEcoPointUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "eco-1").Return(entities.EcoPoint{}, nil)

		_, err := uc.FindOne(context.Background(), "eco-1")
		if !errors.Is(err, ErrEcoPointNotFound) {
			t.Fatalf("expected ErrEcoPointNotFound, got %v", err)
		}
	})
}

func TestEcoPointUseCase_FindByCnpj(t *testing.T) {
	t.Run("missing record is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEcoPointRepository(ctrl)
		uc := NewEcoPointUseCase(repo, nil)

		repo.EXPECT().GetByCnpj(gomock.Any(), "12345678000195").Return(entities.EcoPoint{}, nil)

		_, found, err := uc.FindByCnpj(context.Background(), "12345678000195")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Fatal("expected found=false")
		}
	})
}

func TestEcoPointUseCase_UpdateWithPermission(t *testing.T) {
	title := "Novo título"
	patch := entities.EcoPointPatch{Title: &title}

	t.Run("empty patch", func(t *testing.T) {
		uc := NewEcoPointUseCase(nil, nil)
		_, err := uc.UpdateWithPermission(context.Background(), "eco-1", entities.EcoPointPatch{}, "company-1")
		if !errors.Is(err, ErrInvalidEcoPointInput) {
			t.Fatalf("expected ErrInvalidEcoPointInput, got %v", err)
		}
	})

	t.Run("not owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEcoPointRepository(ctrl)
		uc := NewEcoPointUseCase(repo, nil)

		repo.EXPECT().UpdateOwned(gomock.Any(), "eco-1", patch, "intruder").Return(entities.EcoPoint{}, interfaces.ErrNotOwner)

		_, err := uc.UpdateWithPermission(context.Background(), "eco-1", patch, "intruder")
		if !errors.Is(err, ErrNotEcoPointOwner) {
			t.Fatalf("expected ErrNotEcoPointOwner, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEcoPointRepository(ctrl)
		uc := NewEcoPointUseCase(repo, nil)

		repo.EXPECT().UpdateOwned(gomock.Any(), "missing", patch, "company-1").Return(entities.EcoPoint{}, nil)

		_, err := uc.UpdateWithPermission(context.Background(), "missing", patch, "company-1")
		if !errors.Is(err, ErrEcoPointNotFound) {
			t.Fatalf("expected ErrEcoPointNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEcoPointRepository(ctrl)
		uc := NewEcoPointUseCase(repo, nil)

		repo.EXPECT().UpdateOwned(gomock.Any(), "eco-1", patch, "company-1").
			Return(entities.EcoPoint{ID: "eco-1", CompanyID: "company-1", Title: title}, nil)

		updated, err := uc.UpdateWithPermission(context.Background(), "eco-1", patch, "company-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Title != title {
			t.Fatalf("unexpected title %q", updated.Title)
		}
	})
}

func TestEcoPointUseCase_RemoveWithPermission(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEcoPointRepository(ctrl)
		uc := NewEcoPointUseCase(repo, nil)

		repo.EXPECT().DeleteOwned(gomock.Any(), "missing", "company-1").Return(interfaces.ErrRecordNotFound)

		err := uc.RemoveWithPermission(context.Background(), "missing", "company-1")
		if !errors.Is(err, ErrEcoPointNotFound) {
			t.Fatalf("expected ErrEcoPointNotFound, got %v", err)
		}
	})

	t.Run("not owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEcoPointRepository(ctrl)
		uc := NewEcoPointUseCase(repo, nil)

		repo.EXPECT().DeleteOwned(gomock.Any(), "eco-1", "intruder").Return(interfaces.ErrNotOwner)

		err := uc.RemoveWithPermission(context.Background(), "eco-1", "intruder")
		if !errors.Is(err, ErrNotEcoPointOwner) {
			t.Fatalf("expected ErrNotEcoPointOwner, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEcoPointRepository(ctrl)
		uc := NewEcoPointUseCase(repo, nil)

		repo.EXPECT().DeleteOwned(gomock.Any(), "eco-1", "company-1").Return(nil)

		if err := uc.RemoveWithPermission(context.Background(), "eco-1", "company-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
