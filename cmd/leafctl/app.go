package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"leafcare/internal/bootstrap"
	"leafcare/internal/domain/lifecycle"
	"leafcare/internal/errors"

	"go.uber.org/fx"
)

// withApp builds the core graph, fills targets, starts the lifecycle hooks
// (database ping and, when configured, migration) and runs fn.
func withApp(ctx context.Context, fn func(ctx context.Context) error, targets ...any) (err error) {
	app := fx.New(
		fx.NopLogger,
		bootstrap.Core(),
		fx.Populate(targets...),
	)
	if err := app.Err(); err != nil {
		return errors.WithStack(err)
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start")
	}

	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()
		if stopErr := app.Stop(stopCtx); stopErr != nil && err == nil {
			err = errors.Wrap(stopErr, "failed to stop")
		}
	}()

	return fn(ctx)
}

// report prints v as indented JSON with --json and as text otherwise.
func report(w io.Writer, v any, text string, args ...any) error {
	if !flagJSON {
		_, err := fmt.Fprintf(w, text+"\n", args...)

		return errors.WithStack(err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.WithStack(enc.Encode(v))
}
