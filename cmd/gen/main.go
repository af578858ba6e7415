// Command gen regenerates the type-safe query builders under
// internal/infra/persistence/postgres/query from the persistence models.
// Run it from the repository root: go run ./cmd/gen
package main

import (
	"traiteur/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.CustomerModel{},
		model.OrderModel{},
		model.IdentityAccountModel{},
		model.AccountRoleModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
