package impl

import (
	"io"
	"log/slog"

	"traiteur/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(enforceDeleteGuard bool) *config.Config {
	return &config.Config{
		Customers: &config.CustomersConfig{
			EnforceDeleteGuard: enforceDeleteGuard,
			Grid: config.GridConfig{
				MaskErrors:  true,
				MaxPageSize: 50,
			},
		},
	}
}

func int64Ptr(v int64) *int64 {
	return &v
}

func stringPtr(v string) *string {
	return &v
}
