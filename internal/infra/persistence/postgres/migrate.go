package postgres

import (
	"context"

	"traiteur/internal/errors"
	"traiteur/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the tables used by the customer service.
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&model.IdentityAccountModel{},
		&model.AccountRoleModel{},
		&model.CustomerModel{},
		&model.OrderModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
