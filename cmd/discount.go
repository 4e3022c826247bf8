package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/menu-service/config"
	"github.com/guttosm/menu-service/internal/app"
	"github.com/guttosm/menu-service/internal/cache"
	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/guttosm/menu-service/internal/service"
	"github.com/spf13/cobra"
)

func newDiscountCmd(getConfig func() config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discount",
		Short: "Manage dish price overrides in the cache",
	}
	cmd.AddCommand(newDiscountSetCmd(getConfig), newDiscountClearCmd(getConfig))
	return cmd
}

func newDiscountSetCmd(getConfig func() config.Config) *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "set <dish-id> <price>",
		Short: "Override the price served for a dish",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dishID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("dish id: %w", err)
			}
			price, err := model.ParsePrice(args[1])
			if err != nil {
				return fmt.Errorf("price: %w", err)
			}
			return withDiscounts(getConfig(), func(d *service.DiscountService) error {
				if err := d.Set(cmd.Context(), dishID, price, ttl); err != nil {
					return err
				}
				cmd.Printf("dish %s now served at %s\n", dishID, price)
				return nil
			})
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "expire the override after this long (0 keeps it until cleared)")
	return cmd
}

func newDiscountClearCmd(getConfig func() config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <dish-id>",
		Short: "Remove a dish price override",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dishID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("dish id: %w", err)
			}
			return withDiscounts(getConfig(), func(d *service.DiscountService) error {
				if err := d.Clear(cmd.Context(), dishID); err != nil {
					return err
				}
				cmd.Printf("dish %s override cleared\n", dishID)
				return nil
			})
		},
	}
}

// withDiscounts opens the cache store without failing open, so an
// unreachable backend is reported instead of silently skipped.
func withDiscounts(cfg config.Config, fn func(*service.DiscountService) error) error {
	cacheCfg := cfg.Cache
	cacheCfg.FailOpen = false
	if cacheCfg.Driver == config.DriverMemory {
		return fmt.Errorf("discounts need a shared cache, CACHE_DRIVER is %q", cacheCfg.Driver)
	}

	store, err := app.InitializeCache(cacheCfg)
	if err != nil {
		return err
	}
	defer func(s cache.Store) { _ = s.Close() }(store)

	return fn(service.NewDiscountService(store))
}
