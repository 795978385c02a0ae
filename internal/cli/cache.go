package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/w4/1p/internal/store"
)

func newCacheCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the metadata cache",
	}
	cmd.AddCommand(
		newCacheStatusCmd(a),
		newCacheRefreshCmd(a),
		newCacheClearCmd(a),
	)
	return cmd
}

func newCacheStatusCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show what the cache holds and how stale it is",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.opContext(cmd)
			defer cancel()

			meta, err := a.Meta(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			snap, err := meta.Snapshot(ctx)
			if errors.Is(err, store.ErrCacheEmpty) {
				fmt.Fprintln(out, "The cache is empty. Run `1p cache refresh` to populate it.")
				return nil
			}
			if err != nil {
				return err
			}

			age := time.Since(snap.FetchedAt).Round(time.Second)
			fmt.Fprintf(out, "Path:    %s\n", a.cfg.Cache.Path)
			fmt.Fprintf(out, "Age:     %s (ttl %s)\n", age, a.cfg.Cache.TTL)
			fmt.Fprintf(out, "Vaults:  %d\n", len(snap.Vaults))
			fmt.Fprintf(out, "Items:   %d\n", len(snap.Items))
			fmt.Fprintf(out, "Account: %s (%s)\n", snap.Account.Name, snap.Account.Domain)
			return nil
		},
	}
}

func newCacheRefreshCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Re-fetch the listing from the backend into the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.opContext(cmd)
			defer cancel()

			svc, err := a.Service(ctx)
			if err != nil {
				return err
			}

			snap, err := svc.Refresh(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Cached %d items across %d vaults.\n", len(snap.Items), len(snap.Vaults))
			return nil
		},
	}
}

func newCacheClearCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Drop everything from the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.opContext(cmd)
			defer cancel()

			meta, err := a.Meta(ctx)
			if err != nil {
				return err
			}

			if err := meta.Clear(ctx); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Cache cleared.")
			return nil
		},
	}
}
