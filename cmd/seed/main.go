// Command seed creates an identity account, by default the first administrator.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strings"

	"traiteur/config"
	"traiteur/internal/domain/entity"
	"traiteur/internal/domain/lifecycle"
	"traiteur/internal/infra/auth"
	logs "traiteur/internal/infra/log"
	"traiteur/internal/infra/persistence/postgres"
	"traiteur/internal/usecase"
	"traiteur/internal/usecase/impl"

	"go.uber.org/fx"
)

type seedFlags struct {
	userName string
	email    string
	password string
	roles    string
}

func main() {
	var flags seedFlags
	flag.StringVar(&flags.userName, "username", "admin", "user name of the account")
	flag.StringVar(&flags.email, "email", "", "email of the account")
	flag.StringVar(&flags.password, "password", os.Getenv("SEED_PASSWORD"), "password, defaults to $SEED_PASSWORD")
	flag.StringVar(&flags.roles, "roles", entity.RoleAdministrator.String(), "comma separated roles")
	flag.Parse()

	app := fx.New(
		fx.NopLogger,
		fx.Supply(flags),
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewIdentityRepository,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			impl.NewAuthService,
		),
		fx.Invoke(seed),
	)

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		slog.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}
	if err := app.Stop(ctx); err != nil {
		slog.Error("Shutdown failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func seed(lc fx.Lifecycle, flags seedFlags, authUC usecase.AuthUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		// Runs after the database hook has pinged and migrated.
		OnStart: func(ctx context.Context) error {
			account, err := authUC.RegisterAccount(ctx, usecase.RegisterAccountInput{
				UserName: flags.userName,
				Email:    flags.email,
				Password: flags.password,
				Roles:    parseRoles(flags.roles),
			})
			if err != nil {
				return err
			}

			logger.Info("Account seeded",
				slog.String("accountID", account.ID),
				slog.String("userName", account.UserName),
				slog.Any("roles", account.Roles.ToStrings()),
			)

			return nil
		},
	})
}

// parseRoles keeps unknown names so RegisterAccount rejects them.
func parseRoles(raw string) entity.Roles {
	var roles entity.Roles
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			roles = append(roles, entity.Role(part))
		}
	}

	return roles
}
