package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/hotmeal/recommender/internal/recommend"
)

// AllPurchases returns every distinct (user, dish) purchase pair across all
// orders, the input of the similarity matrix.
func (r *Repository) AllPurchases(ctx context.Context) ([]recommend.Purchase, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT o.user_id, oi.dish_id
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query purchase pairs: %w", err)
	}
	defer rows.Close()

	var pairs []recommend.Purchase
	for rows.Next() {
		var p recommend.Purchase
		if err := rows.Scan(&p.UserID, &p.DishID); err != nil {
			return nil, fmt.Errorf("scan purchase pair: %w", err)
		}
		pairs = append(pairs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate purchase pairs: %w", err)
	}
	return pairs, nil
}

// UserDishes returns the distinct dish IDs the user has ever ordered.
func (r *Repository) UserDishes(ctx context.Context, userID int64) (map[int64]struct{}, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT oi.dish_id
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		WHERE o.user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query purchases for user %d: %w", userID, err)
	}
	defer rows.Close()

	dishes := make(map[int64]struct{})
	for rows.Next() {
		var dishID int64
		if err := rows.Scan(&dishID); err != nil {
			return nil, fmt.Errorf("scan purchased dish: %w", err)
		}
		dishes[dishID] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate purchased dishes: %w", err)
	}
	return dishes, nil
}

// DishOrderCounts returns per-dish order-item counts within the trailing
// window, ordered by count descending then dish ID ascending so rankings are
// deterministic.
func (r *Repository) DishOrderCounts(ctx context.Context, window time.Duration, limit int) ([]recommend.DishCount, error) {
	since := time.Now().Add(-window)
	rows, err := r.pool.Query(ctx,
		`SELECT oi.dish_id, d.name, COUNT(oi.id) AS order_item_count
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN dishes d ON d.id = oi.dish_id
		WHERE o.created_at >= $1
		GROUP BY oi.dish_id, d.name
		ORDER BY order_item_count DESC, oi.dish_id ASC
		LIMIT $2`,
		since, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query dish order counts: %w", err)
	}
	defer rows.Close()

	var counts []recommend.DishCount
	for rows.Next() {
		var c recommend.DishCount
		if err := rows.Scan(&c.DishID, &c.Name, &c.Count); err != nil {
			return nil, fmt.Errorf("scan dish order count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dish order counts: %w", err)
	}
	return counts, nil
}

// UserFirstPurchases returns, per dish the user ordered, the earliest order
// timestamp, feeding the time-decay scoring variant.
func (r *Repository) UserFirstPurchases(ctx context.Context, userID int64) (map[int64]time.Time, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT oi.dish_id, MIN(o.created_at) AS first_purchase
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		WHERE o.user_id = $1
		GROUP BY oi.dish_id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query first purchases for user %d: %w", userID, err)
	}
	defer rows.Close()

	firstPurchases := make(map[int64]time.Time)
	for rows.Next() {
		var dishID int64
		var first time.Time
		if err := rows.Scan(&dishID, &first); err != nil {
			return nil, fmt.Errorf("scan first purchase: %w", err)
		}
		firstPurchases[dishID] = first
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate first purchases: %w", err)
	}
	return firstPurchases, nil
}
