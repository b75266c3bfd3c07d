package recommend

import (
	"context"
	"time"

	"github.com/hotmeal/recommender/internal/domain"
)

// DishCount is a dish's order-item volume within the popularity window.
type DishCount struct {
	DishID int64
	Name   string
	Count  int64
}

// DishSales is a dish's lifetime sales volume, used for category rankings.
type DishSales struct {
	DishID int64
	Sales  int64
}

// InteractionReader provides read-only access to historical purchase facts.
// Implemented over the relational store; faked in tests.
type InteractionReader interface {
	// AllPurchases returns every distinct (user, dish) purchase pair.
	AllPurchases(ctx context.Context) ([]Purchase, error)
	// UserDishes returns the distinct dish IDs a user has purchased.
	UserDishes(ctx context.Context, userID int64) (map[int64]struct{}, error)
	// DishOrderCounts returns per-dish order-item counts within the trailing
	// window, ordered by count descending then dish ID ascending.
	DishOrderCounts(ctx context.Context, window time.Duration, limit int) ([]DishCount, error)
	// UserFirstPurchases returns, per dish the user purchased, the earliest
	// purchase timestamp.
	UserFirstPurchases(ctx context.Context, userID int64) (map[int64]time.Time, error)
}

// ProfileReader resolves user category preferences and category rankings.
type ProfileReader interface {
	// ExplicitPreference returns the user's recorded favorite cuisine,
	// empty when unset.
	ExplicitPreference(ctx context.Context, userID int64) (string, error)
	// TopOrderedCategory returns the category the user ordered from most,
	// empty when the user has no order history.
	TopOrderedCategory(ctx context.Context, userID int64) (string, error)
	// CategoryDishesBySales returns a category's available dishes ordered by
	// sales descending then dish ID ascending.
	CategoryDishesBySales(ctx context.Context, category string, limit int) ([]DishSales, error)
}

// DishReader hydrates dish IDs into presentable records.
type DishReader interface {
	DishByID(ctx context.Context, dishID int64) (*domain.Dish, error)
}
