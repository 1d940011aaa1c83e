// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/invowk/tooltree/internal/config"
	"github.com/invowk/tooltree/internal/issue"
	"github.com/invowk/tooltree/internal/lookup"
	"github.com/invowk/tooltree/pkg/toolfile"

	"github.com/charmbracelet/log"
)

// localRootDir is the directory root picked up from the working directory.
const localRootDir = "." + config.AppName

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer; every command handler receives an App reference.
	App struct {
		Config  config.Provider
		stdout  io.Writer
		stderr  io.Writer
		workDir string
	}

	// Dependencies defines the injection points for building an App. Nil or
	// empty fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		Stdout io.Writer
		Stderr io.Writer
		// WorkDir is searched for the local roots; "" means the process
		// working directory.
		WorkDir string
	}

	// session is the state of one command invocation: the loaded config,
	// the root registry built from it and a resolver with a fresh cache.
	session struct {
		cfg       *config.Config
		cfgSource string
		resolver  *lookup.Resolver
		logger    *slog.Logger
		verbose   bool
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		deps.WorkDir = wd
	}

	return &App{
		Config:  deps.Config,
		stdout:  deps.Stdout,
		stderr:  deps.Stderr,
		workDir: deps.WorkDir,
	}, nil
}

// openSession loads configuration and builds the resolver for one command.
func (a *App) openSession(ctx context.Context, flags *rootFlagValues) (*session, error) {
	cfg, source, err := a.Config.LoadWithSource(ctx, config.LoadOptions{ConfigFilePath: flags.configPath})
	if err != nil {
		var ae *issue.ActionableError
		if !errors.As(err, &ae) {
			ae = issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(flags.configPath).
				WithIssue(issue.ConfigLoadFailedId).
				WithSuggestion("Check the CUE syntax of the config file").
				WithSuggestion("Run 'tooltree config show --verbose' for details").
				Wrap(err).
				Build()
			err = ae
		}
		if flags.verbose {
			a.renderIssue(ae.Issue, config.ColorSchemeAuto)
		}
		return nil, &ExitError{Code: ExitFailure, Err: err}
	}

	verbose := flags.verbose || cfg.UI.Verbose
	logger := newLogger(a.stderr, verbose)

	registry, err := a.buildRegistry(cfg, flags)
	if err != nil {
		return nil, &ExitError{Code: ExitFailure, Err: err}
	}
	logger.Debug("root registry built", "roots", registry.Len(), "config", source)

	resolver := lookup.NewResolver(registry,
		lookup.WithLogger(logger),
		lookup.WithIndexName(cfg.IndexName),
		lookup.WithConfigName(cfg.ConfigName),
	)

	return &session{
		cfg:       cfg,
		cfgSource: source,
		resolver:  resolver,
		logger:    logger,
		verbose:   verbose,
	}, nil
}

// buildRegistry prepends roots from lowest to highest priority: config
// lists, then flags, then the working directory.
func (a *App) buildRegistry(cfg *config.Config, flags *rootFlagValues) (*lookup.Registry, error) {
	registry := lookup.NewRegistry()

	prepend := func(add func(string) error, paths []string) error {
		for _, p := range paths {
			if err := add(p); err != nil {
				return fmt.Errorf("failed to add root %s: %w", p, err)
			}
		}
		return nil
	}

	if err := prepend(registry.PrependPaths, cfg.Paths); err != nil {
		return nil, err
	}
	if err := prepend(registry.PrependConfigPaths, cfg.ConfigPaths); err != nil {
		return nil, err
	}
	if err := prepend(registry.PrependPaths, flags.paths); err != nil {
		return nil, err
	}
	if err := prepend(registry.PrependConfigPaths, flags.configPaths); err != nil {
		return nil, err
	}

	localDir := filepath.Join(a.workDir, localRootDir)
	if info, err := os.Stat(localDir); err == nil && info.IsDir() {
		if err := registry.PrependPaths(localDir); err != nil {
			return nil, err
		}
	}
	localFile, err := toolfile.Find(a.workDir, cfg.ConfigName)
	if err != nil {
		return nil, err
	}
	if localFile != "" {
		if err := registry.PrependConfigPaths(localFile); err != nil {
			return nil, err
		}
	}

	return registry, nil
}

// renderIssue prints the issue page for id to stderr. Unknown ids, including
// zero, print nothing.
func (a *App) renderIssue(id issue.Id, scheme config.ColorScheme) {
	page := issue.Get(id)
	if page == nil {
		return
	}
	style := string(config.ColorSchemeDark)
	if scheme == config.ColorSchemeLight {
		style = string(config.ColorSchemeLight)
	}
	rendered, err := page.Render(style)
	if err != nil {
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+"failed to render issue page: "+err.Error())
		return
	}
	fmt.Fprint(a.stderr, rendered)
}

// fail wraps a lookup failure into an actionable error with the exit code
// for generic failures. Known failures link their issue page, which is
// printed when verbose.
func (a *App) fail(s *session, operation, resource string, err error) error {
	ctx := issue.NewErrorContext().WithOperation(operation).WithResource(resource)

	switch {
	case errors.Is(err, lookup.ErrAliasCycle):
		ctx.WithIssue(issue.AliasCycleId).
			WithSuggestion("Point one of the aliases in the chain at a tool")
	case errors.Is(err, lookup.ErrDuplicateDefinition):
		ctx.WithIssue(issue.DuplicateDefinitionId).
			WithSuggestion("Remove one of the two declarations named above")
	case errors.Is(err, lookup.ErrLoadFailed):
		ctx.WithIssue(issue.DefinitionFileInvalidId).
			WithSuggestion("Fix the definition file named above")
	}

	ae := ctx.Wrap(err).Build()
	if s != nil && s.verbose {
		a.renderIssue(ae.Issue, s.cfg.UI.ColorScheme)
	}
	return &ExitError{Code: ExitFailure, Err: ae}
}

// newLogger builds the slog logger used by library packages, backed by a
// charmbracelet/log handler. Verbose mode logs at debug level.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
		Level:  level,
	})
	return slog.New(handler)
}
