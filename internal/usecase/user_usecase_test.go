package usecase

import (
	"context"
	"errors"
	"testing"

	"ecopontos_arapiraca/internal/domain/entities"
	mock_interfaces "ecopontos_arapiraca/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserUseCase_Register(t *testing.T) {
	cmd := RegisterCommand{Name: "Maria", Email: "Maria@Example.com", Password: "secret1"}

	t.Run("short password", func(t *testing.T) {
		uc := NewUserUseCase(nil, nil)
		_, err := uc.Register(context.Background(), RegisterCommand{Name: "Maria", Email: "m@x.com", Password: "123"}, entities.RoleUser)
		if !errors.Is(err, ErrInvalidUserInput) {
			t.Fatalf("expected ErrInvalidUserInput, got %v", err)
		}
	})

	t.Run("email already in use", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil)

		repo.EXPECT().GetByEmail(gomock.Any(), "maria@example.com").Return(entities.User{ID: "existing"}, nil)

		_, err := uc.Register(context.Background(), cmd, entities.RoleUser)
		if !errors.Is(err, ErrEmailInUse) {
			t.Fatalf("expected ErrEmailInUse, got %v", err)
		}
	})

	t.Run("regular user starts approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil)

		repo.EXPECT().GetByEmail(gomock.Any(), "maria@example.com").Return(entities.User{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if !u.Approved {
					t.Fatal("regular user must start approved")
				}
				if u.Email != "maria@example.com" {
					t.Fatalf("email not normalized: %q", u.Email)
				}
				if u.Password == "secret1" {
					t.Fatal("password stored in plaintext")
				}
				return u, nil
			})

		if _, err := uc.Register(context.Background(), cmd, entities.RoleUser); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("public enterprise starts unapproved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil)

		repo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(entities.User{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Approved {
					t.Fatal("public enterprise registration must start unapproved")
				}
				return u, nil
			})

		if _, err := uc.Register(context.Background(), cmd, entities.RoleEnterprise); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("admin-driven enterprise starts approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil)

		repo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(entities.User{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if !u.Approved || u.Role != entities.RoleEnterprise {
					t.Fatalf("bad account: approved=%v role=%q", u.Approved, u.Role)
				}
				return u, nil
			})

		if _, err := uc.RegisterEnterprise(context.Background(), cmd); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestUserUseCase_Login(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcryptCost)
	stored := entities.User{ID: "u1", Email: "maria@example.com", Password: string(hash), Role: entities.RoleUser}

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil)

		repo.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(entities.User{}, nil)

		_, _, err := uc.Login(context.Background(), "ghost@example.com", "secret1")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil)

		repo.EXPECT().GetByEmail(gomock.Any(), "maria@example.com").Return(stored, nil)

		_, _, err := uc.Login(context.Background(), "maria@example.com", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success issues token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		uc := NewUserUseCase(repo, tokens)

		repo.EXPECT().GetByEmail(gomock.Any(), "maria@example.com").Return(stored, nil)
		tokens.EXPECT().GenerateToken("u1", entities.RoleUser).Return("token-abc", nil)

		token, user, err := uc.Login(context.Background(), "Maria@Example.com", "secret1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "token-abc" || user.ID != "u1" {
			t.Fatalf("unexpected result: token=%q user=%q", token, user.ID)
		}
	})
}

func TestUserUseCase_AccessControl(t *testing.T) {
	admin := entities.Actor{ID: "adm", Role: entities.RoleAdmin}
	stranger := entities.Actor{ID: "other", Role: entities.RoleUser}

	t.Run("stranger cannot read another account", func(t *testing.T) {
		uc := NewUserUseCase(nil, nil)
		_, err := uc.FindByID(context.Background(), "u1", stranger)
		if !errors.Is(err, ErrNotAllowed) {
			t.Fatalf("expected ErrNotAllowed, got %v", err)
		}
	})

	t.Run("admin can read any account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1"}, nil)

		if _, err := uc.FindByID(context.Background(), "u1", admin); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("role listing is admin only", func(t *testing.T) {
		uc := NewUserUseCase(nil, nil)
		_, err := uc.ListByRole(context.Background(), entities.RoleEnterprise, stranger)
		if !errors.Is(err, ErrNotAllowed) {
			t.Fatalf("expected ErrNotAllowed, got %v", err)
		}
	})

	t.Run("name lookup is admin only", func(t *testing.T) {
		uc := NewUserUseCase(nil, nil)
		_, _, err := uc.FindByName(context.Background(), "Maria", stranger)
		if !errors.Is(err, ErrNotAllowed) {
			t.Fatalf("expected ErrNotAllowed, got %v", err)
		}
	})
}

func TestUserUseCase_Update(t *testing.T) {
	admin := entities.Actor{ID: "adm", Role: entities.RoleAdmin}

	t.Run("email collision with another account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil)

		email := "taken@example.com"
		repo.EXPECT().GetByEmail(gomock.Any(), email).Return(entities.User{ID: "someone-else"}, nil)

		_, err := uc.Update(context.Background(), "u1", UpdateUserCommand{Email: &email}, admin)
		if !errors.Is(err, ErrEmailInUse) {
			t.Fatalf("expected ErrEmailInUse, got %v", err)
		}
	})

	t.Run("new password is rehashed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil)

		password := "newsecret"
		repo.EXPECT().Update(gomock.Any(), "u1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, patch entities.UserPatch) (entities.User, error) {
				if patch.Password == nil || *patch.Password == password {
					t.Fatal("password must be hashed before persisting")
				}
				return entities.User{ID: "u1"}, nil
			})

		if _, err := uc.Update(context.Background(), "u1", UpdateUserCommand{Password: &password}, admin); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
