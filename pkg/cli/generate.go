/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/raspi-recipe/pkg/errors"
	"github.com/NVIDIA/raspi-recipe/pkg/recipe"
	"github.com/NVIDIA/raspi-recipe/pkg/resolver"
	"github.com/NVIDIA/raspi-recipe/pkg/target"
)

// generateAction renders the recipe for the <version> <suite> arguments.
// All argument checks happen before the template is opened.
func generateAction(d *deps) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		args := cmd.Args()
		if args.Len() != 2 {
			return errors.New(errors.ErrCodeInvalidRequest, "need 2 arguments")
		}

		t, err := target.New(args.Get(0), args.Get(1))
		if err != nil {
			return err
		}

		g := recipe.NewGenerator(
			recipe.WithTemplatePath(d.cfg.TemplatePath()),
			recipe.WithOutputDir(d.cfg.OutputDir()),
			recipe.WithResolverOptions(resolverOptions(d)...),
		)

		if cmd.Bool(flagStdout) {
			return g.RenderTo(ctx, t, d.stdout)
		}

		_, err = g.Generate(ctx, t)
		return err
	}
}

// resolverOptions maps the effective config onto resolver options.
func resolverOptions(d *deps) []resolver.Option {
	opts := []resolver.Option{
		resolver.WithBackports(d.cfg.Backports()),
		resolver.WithFixFirmware(d.cfg.FixFirmware()),
	}
	if d.info != nil {
		opts = append(opts, resolver.WithBuildInfo(d.info))
	}
	return opts
}
