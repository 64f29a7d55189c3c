// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/tmplrc/cmd/tmplrc/commands"
	"github.com/walteh/tmplrc/cmd/tmplrc/opts"
	"github.com/walteh/tmplrc/pkg/config"
	"github.com/walteh/tmplrc/pkg/host"
	"github.com/walteh/tmplrc/pkg/log"
	"github.com/walteh/tmplrc/pkg/operation"
	"github.com/walteh/tmplrc/pkg/store"
	"gitlab.com/tozd/go/errors"
)

// rootFlags are the flags shared by every command
type rootFlags struct {
	configFile   string
	debug        bool
	templateRoot string
}

// newRootCmd builds the command tree. Shared options are filled in before
// any command runs.
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	ro := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "tmplrc",
		Short: "Create projects from folder templates",
		Long: `tmplrc keeps project templates as plain folders in ~/.templates.
Folder names, file names and file contents may hold #{TOKEN} placeholders;
loading a template asks for a value per token and substitutes it everywhere.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), cmd.ErrOrStderr(), flags.debug)
			cmd.SetContext(ctx)
			return initRootOpts(ctx, flags, ro, cmd.InOrStdin(), cmd.ErrOrStderr())
		},
	}

	addRootFlags(rootCmd, flags)

	rootCmd.AddCommand(
		commands.NewLoadCmd(ro),
		commands.NewSaveCmd(ro),
		commands.NewDeleteCmd(ro),
		commands.NewListCmd(ro),
		commands.NewScanCmd(ro),
		newVersionCmd(flags),
	)

	return rootCmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "config file path (default ~/.config/tmplrc/config.{yaml,yml,json,hcl})")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.templateRoot, "root", "", "template root, overriding the config file")
}

// setupLogging configures zerolog based on flags and returns a context
// carrying the logger
func setupLogging(ctx context.Context, w io.Writer, debug bool) context.Context {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger

	return logger.WithContext(ctx)
}

// initRootOpts loads the config and builds the store, the host and the runner
func initRootOpts(ctx context.Context, flags *rootFlags, ro *opts.RootOpts, in io.Reader, console io.Writer) error {
	cfg, err := config.Resolve(ctx, flags.configFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	if flags.templateRoot != "" {
		root, err := config.ExpandHome(flags.templateRoot)
		if err != nil {
			return err
		}
		if cfg.TemplateRoot, err = filepath.Abs(root); err != nil {
			return errors.Errorf("resolving --root: %w", err)
		}
	}

	ignore, err := cfg.Matcher()
	if err != nil {
		return errors.Errorf("compiling ignore patterns: %w", err)
	}

	st, err := store.New(ctx, cfg.TemplateRoot, store.Options{Ignore: ignore})
	if err != nil {
		return errors.Errorf("opening template store: %w", err)
	}

	logger := log.NewWithZerolog(console, *zerolog.Ctx(ctx))
	termOpts := host.TerminalOptions{In: in, Out: console}
	if in != os.Stdin {
		interactive := false
		termOpts.Interactive = &interactive
	}
	term := host.NewTerminal(logger, termOpts)

	ro.Config = cfg
	ro.Ignore = ignore
	ro.Store = st
	ro.Host = term
	ro.Logger = logger
	ro.Runner = operation.NewRunner(term)

	zerolog.Ctx(ctx).Debug().Str("config", cfg.Location()).Str("root", cfg.TemplateRoot).Strs("ignore", ignore.Patterns()).Msg("initialized")

	return nil
}
