package repository

import (
	"context"

	"traiteur/internal/domain/entity"
	"traiteur/internal/errors"
)

var (
	// ErrIdentityNotFound is returned when an identity account is not found.
	ErrIdentityNotFound = errors.New("identity account not found")
	// ErrUserNameTaken is returned when another account already uses the login name.
	ErrUserNameTaken = errors.New("user name already taken")
)

// IdentityRepository gives access to identity accounts and their roles.
type IdentityRepository interface {
	// CreateAccount persists a new account together with its roles.
	CreateAccount(ctx context.Context, account *entity.IdentityAccount) error

	// FindAccountByUserName retrieves an account by login name.
	FindAccountByUserName(ctx context.Context, userName string) (*entity.IdentityAccount, error)

	// FindAccountByID retrieves an account by its ID.
	FindAccountByID(ctx context.Context, id string) (*entity.IdentityAccount, error)

	// ListAccountsInRole returns every account holding the role, ordered by user name.
	ListAccountsInRole(ctx context.Context, role entity.Role) ([]*entity.IdentityAccount, error)
}
