package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/menu-service/internal/cache"
	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/guttosm/menu-service/internal/logger"
	"github.com/guttosm/menu-service/internal/metrics"
)

// DiscountService is the price override layer. Overrides live under
// DiscountKey in the cache store, separate from entity payloads, and replace
// a dish's price on every read. Entity writes never evict them.
type DiscountService struct {
	store cache.Store
}

// NewDiscountService creates a discount service over store.
func NewDiscountService(store cache.Store) *DiscountService {
	return &DiscountService{store: store}
}

// Apply overrides dish.Price when a discount is set for the dish.
func (d *DiscountService) Apply(ctx context.Context, dish *model.Dish) error {
	if dish == nil {
		return nil
	}
	raw, found, err := d.store.Get(ctx, DiscountKey(dish.ID))
	if err != nil {
		return fmt.Errorf("discount lookup %s: %w", dish.ID, err)
	}
	if !found {
		metrics.RecordDiscountOverlay(false)
		return nil
	}
	d.override(dish, raw)
	return nil
}

// ApplyAll overrides prices in place, looking every dish up in one round trip.
func (d *DiscountService) ApplyAll(ctx context.Context, dishes []model.Dish) error {
	if len(dishes) == 0 {
		return nil
	}

	keys := make([]string, len(dishes))
	for i := range dishes {
		keys[i] = DiscountKey(dishes[i].ID)
	}

	values, err := d.store.GetMany(ctx, keys...)
	if err != nil {
		return fmt.Errorf("discount lookup: %w", err)
	}

	for i := range dishes {
		if i >= len(values) || values[i] == nil {
			metrics.RecordDiscountOverlay(false)
			continue
		}
		d.override(&dishes[i], values[i])
	}
	return nil
}

func (d *DiscountService) override(dish *model.Dish, raw []byte) {
	var price model.Price
	if err := price.UnmarshalJSON(raw); err != nil {
		log := logger.Logger()
		log.Warn().Err(err).Str("dish_id", dish.ID.String()).Msg("Ignoring malformed discount value")
		metrics.RecordDiscountOverlay(false)
		return
	}
	dish.Price = price
	metrics.RecordDiscountOverlay(true)
}

// Set stores a price override for dishID. A non-positive ttl keeps it until
// cleared.
func (d *DiscountService) Set(ctx context.Context, dishID uuid.UUID, price model.Price, ttl time.Duration) error {
	raw, err := price.MarshalJSON()
	if err != nil {
		return err
	}
	if err := d.store.Set(ctx, DiscountKey(dishID), raw, ttl); err != nil {
		return fmt.Errorf("discount set %s: %w", dishID, err)
	}
	return nil
}

// Clear removes the override for dishID. Clearing an absent override is a
// no-op.
func (d *DiscountService) Clear(ctx context.Context, dishID uuid.UUID) error {
	if err := d.store.Delete(ctx, DiscountKey(dishID)); err != nil {
		return fmt.Errorf("discount clear %s: %w", dishID, err)
	}
	return nil
}
