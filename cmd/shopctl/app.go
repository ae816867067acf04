package main

import (
	"context"

	"storefront/config"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// runWithDB starts a short-lived fx app holding the database and the given
// providers, populates targets and runs fn before stopping the app.
func runWithDB(ctx context.Context, providers []any, fn func(ctx context.Context) error, targets ...any) error {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Provide(providers...),
		fx.Populate(targets...),
	)

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start")
	}

	runErr := fn(ctx)

	if err := app.Stop(context.WithoutCancel(ctx)); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to stop")
	}

	return runErr
}
