/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/raspi-recipe/pkg/target"
)

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List supported targets and the recipe file each one produces",
		Action: func(_ context.Context, cmd *cli.Command) error {
			tw := tabwriter.NewWriter(cmd.Root().Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "VERSION\tSUITE\tRECIPE")
			for _, t := range target.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Version(), t.Suite(), t.OutputName())
			}
			return tw.Flush()
		},
	}
}
