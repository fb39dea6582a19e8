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

func validRequestCommand() CreateRequestCommand {
	return CreateRequestCommand{
		EcopointID: "eco-1",
		Quantity:   80,
		Material:   "vidro",
		Address:    "Rua B, 456",
	}
}

func TestRequestCollectionUseCase_Create(t *testing.T) {
	t.Run("missing ecopoint id", func(t *testing.T) {
		uc := NewRequestCollectionUseCase(nil, nil)
		cmd := validRequestCommand()
		cmd.EcopointID = "  "
		_, err := uc.Create(context.Background(), cmd, "user-1")
		if !errors.Is(err, ErrInvalidRequestInput) {
			t.Fatalf("expected ErrInvalidRequestInput, got %v", err)
		}
	})

	t.Run("quantity below minimum", func(t *testing.T) {
		uc := NewRequestCollectionUseCase(nil, nil)
		cmd := validRequestCommand()
		cmd.Quantity = entities.MinCollectionQuantity - 1
		_, err := uc.Create(context.Background(), cmd, "user-1")
		if !errors.Is(err, ErrQuantityBelowMin) {
			t.Fatalf("expected ErrQuantityBelowMin, got %v", err)
		}
	})

	t.Run("ecopoint not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ecopoints := mock_interfaces.NewMockIEcoPointRepository(ctrl)
		uc := NewRequestCollectionUseCase(nil, ecopoints)

		ecopoints.EXPECT().GetByID(gomock.Any(), "eco-1").Return(entities.EcoPoint{}, nil)

		_, err := uc.Create(context.Background(), validRequestCommand(), "user-1")
		if !errors.Is(err, ErrEcoPointNotFound) {
			t.Fatalf("expected ErrEcoPointNotFound, got %v", err)
		}
	})

	t.Run("success stamps requester and current owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestCollectionRepository(ctrl)
		ecopoints := mock_interfaces.NewMockIEcoPointRepository(ctrl)
		uc := NewRequestCollectionUseCase(repo, ecopoints)

		ecopoints.EXPECT().GetByID(gomock.Any(), "eco-1").
			Return(entities.EcoPoint{ID: "eco-1", CompanyID: "company-9"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.RequestCollection) (entities.RequestCollection, error) {
				if r.ID == "" {
					t.Fatal("expected generated id")
				}
				if r.UserID != "user-1" || r.CompanyID != "company-9" {
					t.Fatalf("bad stamping: user=%q company=%q", r.UserID, r.CompanyID)
				}
				if r.Status != entities.RequestStatusPendente {
					t.Fatalf("expected pendente, got %q", r.Status)
				}
				if r.Notified {
					t.Fatal("new request must not be notified")
				}
				return r, nil
			})

		created, err := uc.Create(context.Background(), validRequestCommand(), "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Quantity != 80 {
			t.Fatalf("unexpected quantity %d", created.Quantity)
		}
	})
}

func TestRequestCollectionUseCase_Listings(t *testing.T) {
	t.Run("company listing is self only", func(t *testing.T) {
		uc := NewRequestCollectionUseCase(nil, nil)
		_, err := uc.FindByCompany(context.Background(), "company-1", "someone-else")
		if !errors.Is(err, ErrNotRequestViewer) {
			t.Fatalf("expected ErrNotRequestViewer, got %v", err)
		}
	})

	t.Run("user listing is self only", func(t *testing.T) {
		uc := NewRequestCollectionUseCase(nil, nil)
		_, err := uc.FindByUser(context.Background(), "user-1", "someone-else")
		if !errors.Is(err, ErrNotRequestViewer) {
			t.Fatalf("expected ErrNotRequestViewer, got %v", err)
		}
	})

	t.Run("company listing delegates for owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestCollectionRepository(ctrl)
		uc := NewRequestCollectionUseCase(repo, nil)

		repo.EXPECT().ListByCompanyID(gomock.Any(), "company-1").
			Return([]entities.RequestCollection{{ID: "r1"}}, nil)

		items, err := uc.FindByCompany(context.Background(), "company-1", "company-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}
	})
}

func TestRequestCollectionUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewRequestCollectionUseCase(nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "r1", entities.RequestStatus("cancelada"), "company-1")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("not owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestCollectionRepository(ctrl)
		uc := NewRequestCollectionUseCase(repo, nil)

		repo.EXPECT().UpdateStatusOwned(gomock.Any(), "r1", entities.RequestStatusAceita, false, "intruder").
			Return(entities.RequestCollection{}, interfaces.ErrNotOwner)

		_, err := uc.UpdateStatus(context.Background(), "r1", entities.RequestStatusAceita, "intruder")
		if !errors.Is(err, ErrNotRequestCompany) {
			t.Fatalf("expected ErrNotRequestCompany, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestCollectionRepository(ctrl)
		uc := NewRequestCollectionUseCase(repo, nil)

		repo.EXPECT().UpdateStatusOwned(gomock.Any(), "missing", entities.RequestStatusAceita, false, "company-1").
			Return(entities.RequestCollection{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "missing", entities.RequestStatusAceita, "company-1")
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("em_coleta marks notified in the same write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestCollectionRepository(ctrl)
		uc := NewRequestCollectionUseCase(repo, nil)

		repo.EXPECT().UpdateStatusOwned(gomock.Any(), "r1", entities.RequestStatusEmColeta, true, "company-1").
			Return(entities.RequestCollection{ID: "r1", Status: entities.RequestStatusEmColeta, Notified: true}, nil)

		updated, err := uc.UpdateStatus(context.Background(), "r1", entities.RequestStatusEmColeta, "company-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.Notified {
			t.Fatal("expected notified=true after em_coleta")
		}
	})

	t.Run("other statuses leave notified untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestCollectionRepository(ctrl)
		uc := NewRequestCollectionUseCase(repo, nil)

		repo.EXPECT().UpdateStatusOwned(gomock.Any(), "r1", entities.RequestStatusFinalizada, false, "company-1").
			Return(entities.RequestCollection{ID: "r1", Status: entities.RequestStatusFinalizada}, nil)

		if _, err := uc.UpdateStatus(context.Background(), "r1", entities.RequestStatusFinalizada, "company-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
