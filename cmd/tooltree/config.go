// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/invowk/tooltree/internal/config"
	"github.com/invowk/tooltree/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `tooltree config` command tree.
func newConfigCommand(app *App, flags *rootFlagValues) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage tooltree configuration",
		Long: `Manage tooltree configuration.

Configuration is stored in:
  - Linux: ~/.config/tooltree/config.cue
  - macOS: ~/Library/Application Support/tooltree/config.cue
  - Windows: %APPDATA%\tooltree\config.cue

Every key can be overridden from the environment with the TOOLTREE_ prefix,
e.g. TOOLTREE_INDEX_NAME or TOOLTREE_UI_VERBOSE.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app, flags)
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app.stdout, force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing configuration file")
	cfgCmd.AddCommand(initCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app.stdout)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.openSession(cmd.Context(), flags)
			if err != nil {
				return err
			}
			fmt.Fprint(app.stdout, config.GenerateCUE(s.cfg))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App, flags *rootFlagValues) error {
	s, err := app.openSession(ctx, flags)
	if err != nil {
		return err
	}
	cfg := s.cfg
	w := app.stdout

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if s.cfgSource != "" {
		fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("Config file"), s.cfgSource)
	} else {
		fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	writeList := func(key string, values []string) {
		fmt.Fprintf(w, "%s:\n", CmdStyle.Render(key))
		if len(values) == 0 {
			fmt.Fprintf(w, "  %s\n", SubtitleStyle.Render("(none configured)"))
			return
		}
		for _, v := range values {
			fmt.Fprintf(w, "  - %s\n", SuccessStyle.Render(v))
		}
	}
	writeList("paths", cfg.Paths)
	writeList("config_paths", cfg.ConfigPaths)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("index_name"), SuccessStyle.Render(cfg.IndexName))
	fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("config_name"), SuccessStyle.Render(cfg.ConfigName))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", CmdStyle.Render("ui"))
	fmt.Fprintf(w, "  color_scheme: %s\n", SuccessStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(w, "  verbose: %s\n", SuccessStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	return nil
}

func initConfig(w io.Writer, force bool) error {
	cfgPath, err := config.CreateDefaultConfig(force)
	if errors.Is(err, config.ErrConfigExists) {
		return issue.NewErrorContext().
			WithOperation("create config").
			WithResource(cfgPath).
			WithSuggestion("Use --force to overwrite it with the defaults").
			Wrap(err).
			Err()
	}
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	fmt.Fprintf(w, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), cfgPath)
	return nil
}

func showConfigPath(w io.Writer) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	cfgPath, err := config.DefaultConfigPath()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(w, "Config file: %s\n", cfgPath)
	fmt.Fprintf(w, "Environment prefix: %s_\n", strings.ToUpper(config.EnvPrefix))
	return nil
}
