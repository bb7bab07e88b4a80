/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/raspi-recipe/pkg/buildinfo"
	"github.com/NVIDIA/raspi-recipe/pkg/config"
	"github.com/NVIDIA/raspi-recipe/pkg/errors"
	"github.com/NVIDIA/raspi-recipe/pkg/logging"
)

const (
	name           = "raspi-recipe"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// deps are the collaborators a command run needs. Zero values select the
// production implementations.
type deps struct {
	info   buildinfo.Provider
	stdout io.Writer
	stderr io.Writer

	// cfg is populated by the root Before hook.
	cfg *config.Config
}

// Execute runs the CLI with the process arguments and exits non-zero on error.
// This is called by main.main().
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	d := &deps{stdout: os.Stdout, stderr: os.Stderr}
	if err := newRootCmd(d).Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, diagnostic(err))
		cancel()
		os.Exit(1)
	}
}

func newRootCmd(d *deps) *cli.Command {
	if d.stdout == nil {
		d.stdout = os.Stdout
	}
	if d.stderr == nil {
		d.stderr = os.Stderr
	}

	return &cli.Command{
		Name:      name,
		Version:   fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date),
		Usage:     "Generate Raspberry Pi image build recipes",
		ArgsUsage: "<version> <suite>",
		Description: `Render raspi_master.yaml for one hardware version and Debian suite.

The recipe is written to raspi_<version>_<suite>.yaml in the output
directory, replacing any existing file.`,
		Writer:          d.stdout,
		ErrWriter:       d.stderr,
		HideHelpCommand: true,
		Flags:           rootFlags(),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, initConfig(cmd, d)
		},
		Action: generateAction(d),
		Commands: []*cli.Command{
			listCmd(),
			varsCmd(d),
		},
	}
}

// Flag names.
const (
	flagConfig      = "config"
	flagLogLevel    = "log-level"
	flagTemplate    = "template"
	flagOutputDir   = "output-dir"
	flagStdout      = "stdout"
	flagBackports   = "backports"
	flagFixFirmware = "fix-firmware"
	flagFormat      = "format"
)

// rootFlags returns new flag instances; urfave flags hold parse state and
// must not be shared between command trees.
func rootFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  flagConfig,
			Usage: "YAML file with generator settings",
		},
		&cli.StringFlag{
			Name:  flagLogLevel,
			Usage: "log level (debug, info, warn, error)",
		},
		&cli.StringFlag{
			Name:    flagTemplate,
			Aliases: []string{"t"},
			Usage:   "master template path (default: raspi_master.yaml)",
		},
		&cli.StringFlag{
			Name:    flagOutputDir,
			Aliases: []string{"o"},
			Usage:   "directory to write the recipe to (default: current directory)",
		},
		&cli.BoolFlag{
			Name:  flagStdout,
			Usage: "print the recipe instead of writing it to a file",
		},
		&cli.StringFlag{
			Name:  flagBackports,
			Usage: "enable backports; the value is written as a comment above the source line",
		},
		&cli.BoolFlag{
			Name:  flagFixFirmware,
			Usage: "rename raspi-firmware to raspi3-firmware in the reconfigure unit",
		},
	}
}

// initConfig layers flags over the optional config file and configures slog.
func initConfig(cmd *cli.Command, d *deps) error {
	cfg, err := config.Load(cmd.String(flagConfig))
	if err != nil {
		return err
	}

	var opts []config.Option
	if cmd.IsSet(flagTemplate) {
		opts = append(opts, config.WithTemplatePath(cmd.String(flagTemplate)))
	}
	if cmd.IsSet(flagOutputDir) {
		opts = append(opts, config.WithOutputDir(cmd.String(flagOutputDir)))
	}
	if cmd.IsSet(flagBackports) {
		opts = append(opts, config.WithBackports(cmd.String(flagBackports)))
	}
	if cmd.IsSet(flagFixFirmware) {
		opts = append(opts, config.WithFixFirmware(cmd.Bool(flagFixFirmware)))
	}
	if cmd.IsSet(flagLogLevel) {
		opts = append(opts, config.WithLogLevel(cmd.String(flagLogLevel)))
	}

	cfg = cfg.Apply(opts...)
	if err := cfg.Validate(); err != nil {
		return err
	}
	d.cfg = cfg

	logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.LogLevel())
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"template", cfg.TemplatePath(),
		"outputDir", cfg.OutputDir())

	return nil
}

// diagnostic formats err for the terminal. Structured errors print their
// message and cause without the code prefix.
func diagnostic(err error) string {
	var se *errors.StructuredError
	if stderrors.As(err, &se) {
		if se.Cause != nil {
			return fmt.Sprintf("E: %s: %v", se.Message, se.Cause)
		}
		return "E: " + se.Message
	}
	return "E: " + err.Error()
}
