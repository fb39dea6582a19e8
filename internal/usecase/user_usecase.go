package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"ecopontos_arapiraca/internal/domain/entities"
	"ecopontos_arapiraca/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrInvalidUserInput   = errors.New("invalid user input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAllowed         = errors.New("not allowed to act on this user")
)

const bcryptCost = 10

// Default admin credentials used by the bootstrap routine. Meant for local
// installs; production deployments change them on first login.
const (
	defaultAdminName     = "Admin"
	defaultAdminEmail    = "admin@admin.com"
	defaultAdminPassword = "123456"
)

// RegisterCommand carries a registration payload. Role is decided by the
// calling endpoint, not the payload.
type RegisterCommand struct {
	Name     string
	Email    string
	Password string
}

// UpdateUserCommand carries a self-or-admin account update. Password, when
// set, is the plaintext to be re-hashed.
type UpdateUserCommand struct {
	Name     *string
	Email    *string
	Password *string
	Approved *bool
}

// IUserUseCase exposes account management and authentication.
//
// Access rules: reads and writes on a specific account are self-or-admin,
// role listings are admin-only, everything else is public.

type IUserUseCase interface {
	Register(ctx context.Context, cmd RegisterCommand, role entities.Role) (entities.User, error)
	RegisterEnterprise(ctx context.Context, cmd RegisterCommand) (entities.User, error)
	Login(ctx context.Context, email, password string) (string, entities.User, error)
	FindAll(ctx context.Context) ([]entities.User, error)
	FindByID(ctx context.Context, id string, actor entities.Actor) (entities.User, error)
	FindByName(ctx context.Context, name string, actor entities.Actor) (entities.User, bool, error)
	ValidateUser(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, id string, cmd UpdateUserCommand, actor entities.Actor) (entities.User, error)
	Remove(ctx context.Context, id string, actor entities.Actor) error
	ListByRole(ctx context.Context, role entities.Role, actor entities.Actor) ([]entities.User, error)
	CountUsers(ctx context.Context) (int64, error)
}

type UserUseCase struct {
	repo   interfaces.IUserRepository
	tokens interfaces.ITokenService
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository, tokens interfaces.ITokenService) *UserUseCase {
	return &UserUseCase{repo: repo, tokens: tokens}
}

// Register creates an account with the given role. Enterprise registrations
// through the public endpoint start unapproved.
func (u *UserUseCase) Register(ctx context.Context, cmd RegisterCommand, role entities.Role) (entities.User, error) {
	return u.register(ctx, cmd, role, role != entities.RoleEnterprise)
}

// RegisterEnterprise is the admin-driven enterprise registration: the account
// is approved from the start.
func (u *UserUseCase) RegisterEnterprise(ctx context.Context, cmd RegisterCommand) (entities.User, error) {
	return u.register(ctx, cmd, entities.RoleEnterprise, true)
}

func (u *UserUseCase) register(ctx context.Context, cmd RegisterCommand, role entities.Role, approved bool) (entities.User, error) {
	name := strings.TrimSpace(cmd.Name)
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if name == "" || email == "" || len(cmd.Password) < 6 {
		return entities.User{}, ErrInvalidUserInput
	}
	if !entities.ValidRole(string(role)) {
		return entities.User{}, ErrInvalidUserInput
	}

	if existing, err := u.repo.GetByEmail(ctx, email); err != nil {
		return entities.User{}, err
	} else if existing.ID != "" {
		return entities.User{}, ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcryptCost)
	if err != nil {
		return entities.User{}, err
	}

	now := time.Now().UTC()
	user := entities.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  string(hash),
		Role:      role,
		Approved:  approved,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, user)
}

// Login verifies credentials and issues a bearer token.
func (u *UserUseCase) Login(ctx context.Context, email, password string) (string, entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", entities.User{}, ErrInvalidCredentials
	}

	user, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", entities.User{}, err
	}
	if user.ID == "" {
		return "", entities.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", entities.User{}, ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", entities.User{}, err
	}
	return token, user, nil
}

func (u *UserUseCase) FindAll(ctx context.Context) ([]entities.User, error) {
	return u.repo.List(ctx)
}

func (u *UserUseCase) FindByID(ctx context.Context, id string, actor entities.Actor) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}
	if !actor.CanAccessUser(id) {
		return entities.User{}, ErrNotAllowed
	}

	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

// FindByName is an admin-only exact-name lookup. A missing account is not an
// error: the endpoint answers with a message body.
func (u *UserUseCase) FindByName(ctx context.Context, name string, actor entities.Actor) (entities.User, bool, error) {
	if !actor.IsAdmin() {
		return entities.User{}, false, ErrNotAllowed
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.User{}, false, ErrInvalidUserInput
	}

	user, err := u.repo.GetByName(ctx, name)
	if err != nil {
		return entities.User{}, false, err
	}
	return user, user.ID != "", nil
}

// ValidateUser is a public existence check used by other services.
func (u *UserUseCase) ValidateUser(ctx context.Context, id string) (bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return false, nil
	}
	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return user.ID != "", nil
}

// Update applies a self-or-admin account patch. A new password is re-hashed;
// a new email must not collide with another account.
func (u *UserUseCase) Update(ctx context.Context, id string, cmd UpdateUserCommand, actor entities.Actor) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}
	if !actor.CanAccessUser(id) {
		return entities.User{}, ErrNotAllowed
	}

	patch := entities.UserPatch{Approved: cmd.Approved}
	if cmd.Name != nil {
		name := strings.TrimSpace(*cmd.Name)
		if name == "" {
			return entities.User{}, ErrInvalidUserInput
		}
		patch.Name = &name
	}
	if cmd.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*cmd.Email))
		if email == "" {
			return entities.User{}, ErrInvalidUserInput
		}
		if existing, err := u.repo.GetByEmail(ctx, email); err != nil {
			return entities.User{}, err
		} else if existing.ID != "" && existing.ID != id {
			return entities.User{}, ErrEmailInUse
		}
		patch.Email = &email
	}
	if cmd.Password != nil {
		if len(*cmd.Password) < 6 {
			return entities.User{}, ErrInvalidUserInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*cmd.Password), bcryptCost)
		if err != nil {
			return entities.User{}, err
		}
		hashed := string(hash)
		patch.Password = &hashed
	}
	if patch.Empty() {
		return entities.User{}, ErrInvalidUserInput
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.User{}, err
	}
	if updated.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return updated, nil
}

func (u *UserUseCase) Remove(ctx context.Context, id string, actor entities.Actor) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidUserID
	}
	if !actor.CanAccessUser(id) {
		return ErrNotAllowed
	}

	err := u.repo.Delete(ctx, id)
	if errors.Is(err, interfaces.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (u *UserUseCase) ListByRole(ctx context.Context, role entities.Role, actor entities.Actor) ([]entities.User, error) {
	if !actor.IsAdmin() {
		return nil, ErrNotAllowed
	}
	if !entities.ValidRole(string(role)) {
		return nil, ErrInvalidUserInput
	}
	return u.repo.ListByRole(ctx, role)
}

func (u *UserUseCase) CountUsers(ctx context.Context) (int64, error) {
	return u.repo.Count(ctx)
}

// EnsureDefaultAdmin guarantees at least one admin account exists. It runs
// once at startup, outside the request path, and is best effort: a failure is
// logged, never fatal.
func (u *UserUseCase) EnsureDefaultAdmin(ctx context.Context) {
	admins, err := u.repo.ListByRole(ctx, entities.RoleAdmin)
	if err != nil {
		log.Warn().Err(err).Msg("default admin check failed")
		return
	}
	if len(admins) > 0 {
		return
	}

	_, err = u.register(ctx, RegisterCommand{
		Name:     defaultAdminName,
		Email:    defaultAdminEmail,
		Password: defaultAdminPassword,
	}, entities.RoleAdmin, true)
	if err != nil && !errors.Is(err, ErrEmailInUse) {
		log.Warn().Err(err).Msg("default admin bootstrap failed")
		return
	}
	log.Info().Str("email", defaultAdminEmail).Msg("default admin ensured")
}
