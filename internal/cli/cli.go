// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jordan Doyle

// Package cli wires configuration, the vault backend, the metadata cache,
// and the renderer into the 1p command tree. Commands print through
// cmd.OutOrStdout so tests can drive them with buffers.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/w4/1p/backend"
	"github.com/w4/1p/backend/connect"
	"github.com/w4/1p/backend/op"
	"github.com/w4/1p/internal/config"
	"github.com/w4/1p/internal/display"
	"github.com/w4/1p/internal/logger"
	"github.com/w4/1p/internal/service"
	"github.com/w4/1p/internal/store"
	"github.com/w4/1p/internal/tui"
)

// BuildInfo carries the ldflags-injected build identifiers printed by the
// version command.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// App is the composition root shared by every command. Dependencies are
// built lazily on first use; fields already set (by tests) are kept as-is.
type App struct {
	flags   config.Config // overlay assembled from persistent flags
	vault   string
	noCache bool
	offline bool

	cfg     *config.Config
	log     *logger.Logger
	render  *display.Renderer
	svc     service.ItemService
	meta    store.MetadataRepository // nil when the cache is disabled
	dbClose func() error

	clip   func(text string) error
	browse func(ctx context.Context, svc service.ItemService, opts service.ListOptions, noColor bool) error
}

func newApp() *App {
	return &App{
		clip:   clipboard.WriteAll,
		browse: tui.Run,
	}
}

// New builds the root command with every subcommand attached.
func New(info BuildInfo) *cobra.Command {
	return newApp().root(info)
}

// Execute runs the cli and returns the process exit code. Errors are mapped
// to their human explanations and printed to stderr.
func Execute(info BuildInfo) int {
	root := New(info)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, friendly(err))
		return 1
	}
	return 0
}

func (a *App) root(info BuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:           "1p",
		Short:         "1password cli for humans",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.initConfig(); err != nil {
				return err
			}
			cmd.SetContext(a.log.WithContext(cmd.Context()))
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.close()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.ConfigFile, "config", "", "Path to a JSON config file")
	pf.StringVar(&a.flags.Backend, "backend", "", "Vault backend to use: op or connect")
	pf.StringVar(&a.flags.Session.Token, "session", "", "op session token from `op signin --raw`")
	pf.StringVar(&a.flags.Session.Account, "account", "", "op account shorthand the session belongs to")
	pf.DurationVar(&a.flags.Timeout, "timeout", 0, "Time limit per backend operation")
	pf.BoolVar(&a.flags.NoColor, "no-color", false, "Disable colored output")
	pf.StringVar(&a.vault, "vault", "", "Only consider items in this vault (name or uuid)")
	pf.BoolVar(&a.noCache, "no-cache", false, "Bypass the metadata cache for this run")
	pf.BoolVar(&a.offline, "offline", false, "Serve listings from the cache without touching the backend")

	root.AddCommand(
		newListCmd(a),
		newSearchCmd(a),
		newShowCmd(a),
		newTOTPCmd(a),
		newGenerateCmd(a),
		newVaultsCmd(a),
		newBrowseCmd(a),
		newCacheCmd(a),
		newVersionCmd(info),
	)
	return root
}

func (a *App) initConfig() error {
	if a.cfg == nil {
		cfg, err := config.Load(a.flags)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.log == nil {
		a.log = logger.New("cli", a.cfg.LogLevel)
	}
	if a.render == nil {
		a.render = display.New(display.NewStyles(a.cfg.NoColor))
	}
	return nil
}

// Service returns the shared ItemService, building the backend and the
// metadata cache on first call.
func (a *App) Service(ctx context.Context) (service.ItemService, error) {
	if a.svc != nil {
		return a.svc, nil
	}

	source, err := a.newSource()
	if err != nil {
		return nil, err
	}

	if !a.cfg.Cache.Disabled {
		db, err := store.NewSQLite(ctx, a.cfg.Cache.Path, a.log)
		if err != nil {
			return nil, fmt.Errorf("open metadata cache: %w", err)
		}
		if err := db.Migrate(); err != nil {
			return nil, fmt.Errorf("migrate metadata cache: %w", err)
		}
		a.meta = store.NewMetadataRepository(db, a.log)
		a.dbClose = db.Close
	}

	a.svc = service.NewItemService(source, a.meta, a.cfg.Cache.TTL, a.log)
	return a.svc, nil
}

// Meta returns the metadata repository for the cache commands, or
// [service.ErrCacheDisabled] when the cache is off.
func (a *App) Meta(ctx context.Context) (store.MetadataRepository, error) {
	if _, err := a.Service(ctx); err != nil {
		return nil, err
	}
	if a.meta == nil {
		return nil, service.ErrCacheDisabled
	}
	return a.meta, nil
}

func (a *App) newSource() (backend.VaultSource, error) {
	switch a.cfg.Backend {
	case config.BackendOp:
		return op.New(op.Config{
			Binary:         a.cfg.Op.Binary,
			SessionAccount: a.cfg.Session.Account,
			SessionToken:   a.cfg.Session.Token,
		}), nil
	case config.BackendConnect:
		return connect.New(connect.Config{
			Host:    a.cfg.Connect.Host,
			Token:   a.cfg.Connect.Token,
			Timeout: a.cfg.Timeout,
		}), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, a.cfg.Backend)
	}
}

func (a *App) listOptions() service.ListOptions {
	return service.ListOptions{
		NoCache: a.noCache,
		Offline: a.offline,
		Vault:   a.vault,
	}
}

// opContext bounds a command with the configured timeout.
func (a *App) opContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	if a.cfg != nil && a.cfg.Timeout > 0 {
		return context.WithTimeout(cmd.Context(), a.cfg.Timeout)
	}
	return context.WithCancel(cmd.Context())
}

func (a *App) close() error {
	if a.dbClose == nil {
		return nil
	}
	err := a.dbClose()
	a.dbClose = nil
	return err
}
