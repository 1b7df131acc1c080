package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/eorx/internal/config"
	"github.com/rshade/eorx/internal/engine/cache"
)

// NewCacheStatusCmd creates the cache status command.
func NewCacheStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the series cache location and entry count",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := runtimeFrom(cmd).cfg
			dir := config.CacheDir()

			cmd.Printf("Directory: %s\n", dir)
			if !cfg.Cache.Enabled {
				cmd.Printf("Enabled:   false\n")
				return nil
			}
			store, err := cache.NewFileStore(dir, true, cfg.Cache.TTLSeconds)
			if err != nil {
				return err
			}
			n, err := store.Count()
			if err != nil {
				return err
			}
			cmd.Printf("Enabled:   true\nTTL:       %ds\nEntries:   %d\n", cfg.Cache.TTLSeconds, n)
			return nil
		},
	}
}

// NewCacheClearCmd creates the cache clear command.
func NewCacheClearCmd() *cobra.Command {
	var expiredOnly bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove cached series results",
		Example: `  # Remove everything
  eorx cache clear

  # Remove only expired entries
  eorx cache clear --expired`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := runtimeFrom(cmd).cfg
			ttl := cfg.Cache.TTLSeconds
			if !cfg.Cache.Enabled {
				// clearing still works when caching is switched off
				ttl = cache.DefaultTTLSeconds
			}
			store, err := cache.NewFileStore(config.CacheDir(), true, ttl)
			if err != nil {
				return err
			}

			if expiredOnly {
				err = store.CleanupExpired()
			} else {
				err = store.Clear()
			}
			if err != nil {
				return fmt.Errorf("clearing cache: %w", err)
			}
			cmd.Printf("Cache cleared\n")
			return nil
		},
	}
	cmd.Flags().BoolVar(&expiredOnly, "expired", false, "remove only expired entries")
	return cmd
}
