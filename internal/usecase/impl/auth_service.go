package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "traiteur/internal/delivery/context"
	"traiteur/internal/domain/entity"
	domainerrors "traiteur/internal/domain/errors"
	"traiteur/internal/domain/repository"
	"traiteur/internal/domain/service"
	"traiteur/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	identityRepo repository.IdentityRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	IdentityRepo repository.IdentityRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		identityRepo: params.IdentityRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks the account password and issues an access token carrying the account roles.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("userName", input.UserName))

	account, err := srv.identityRepo.FindAccountByUserName(ctx, input.UserName)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("userName", input.UserName), slog.Any("error", err))

		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load identity account")
	}

	// Password check is CPU-bound, keep it away from any open transaction.
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("userName", input.UserName), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if _, ok := account.Roles.Primary(); !ok {
		srv.log(ctx).Warn("Login rejected for account without roles", slog.String("accountID", account.ID))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "account holds no role")
	}

	accessToken, expiresAt, err := srv.tokenService.GenerateAccessToken(account.ID, account.Roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("Logged in successfully", slog.String("accountID", account.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		Account:     account,
	}, nil
}

// RegisterAccount creates an identity account with a hashed password.
func (srv *authService) RegisterAccount(ctx context.Context, input usecase.RegisterAccountInput) (*entity.IdentityAccount, error) {
	userName := strings.TrimSpace(input.UserName)
	if userName == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("user name and password are required")
	}
	for _, role := range input.Roles {
		if !role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role " + role.String())
		}
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	account := &entity.IdentityAccount{
		ID:           uuid.New().String(),
		UserName:     userName,
		Email:        input.Email,
		PasswordHash: hash,
		Roles:        input.Roles,
		CreatedAt:    time.Now().UTC(),
	}
	if err := srv.identityRepo.CreateAccount(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to create identity account")
	}

	srv.log(ctx).Info("Identity account created", slog.String("accountID", account.ID), slog.Any("roles", account.Roles.ToStrings()))

	return account, nil
}
