package usecase

import (
	"context"
	"time"

	"traiteur/internal/domain/entity"
)

// LoginInput defines the data required for an identity account to log in.
type LoginInput struct {
	UserName string `json:"userName" form:"userName" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	Account     *entity.IdentityAccount
}

// RegisterAccountInput defines the data required to create an identity account.
type RegisterAccountInput struct {
	UserName string
	Email    string
	Password string
	Roles    entity.Roles
}

// AuthUsecase defines identity account operations used by the login endpoint and the seed command.
type AuthUsecase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	RegisterAccount(ctx context.Context, input RegisterAccountInput) (*entity.IdentityAccount, error)
}
