/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/raspi-recipe/pkg/errors"
	"github.com/NVIDIA/raspi-recipe/pkg/resolver"
	"github.com/NVIDIA/raspi-recipe/pkg/serializer"
	"github.com/NVIDIA/raspi-recipe/pkg/target"
)

func varsCmd(d *deps) *cli.Command {
	return &cli.Command{
		Name:      "vars",
		Usage:     "Print the template variables resolved for a target",
		ArgsUsage: "<version> <suite>",
		Description: `Resolve the template variables for one target and print them without
reading the template or writing a recipe. Backports and firmware settings
from the root flags or config file apply.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  flagFormat,
				Value: string(serializer.FormatYAML),
				Usage: fmt.Sprintf("output format (supported values: %s)",
					strings.Join(serializer.SupportedFormats(), ", ")),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String(flagFormat))
			if outFormat.IsUnknown() {
				return errors.New(errors.ErrCodeInvalidRequest,
					fmt.Sprintf("unknown output format: %q", outFormat))
			}

			args := cmd.Args()
			if args.Len() != 2 {
				return errors.New(errors.ErrCodeInvalidRequest, "need 2 arguments")
			}
			t, err := target.New(args.Get(0), args.Get(1))
			if err != nil {
				return err
			}

			vars, err := resolver.Resolve(ctx, t, resolverOptions(d)...)
			if err != nil {
				return err
			}

			return serializer.NewWriter(outFormat, d.stdout).Serialize(ctx, vars)
		},
	}
}
