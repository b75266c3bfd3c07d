package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hotmeal/recommender/internal/recommend"
	"github.com/jackc/pgx/v5"
)

// ExplicitPreference returns the user's recorded favorite cuisine. An
// unknown user or an unset preference both read as empty; the engine treats
// either as "no explicit preference".
func (r *Repository) ExplicitPreference(ctx context.Context, userID int64) (string, error) {
	var preference string
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(favorite_cuisine, '') FROM users WHERE id = $1`,
		userID,
	).Scan(&preference)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("query preference for user %d: %w", userID, err)
	}
	return preference, nil
}

// TopOrderedCategory infers the user's preferred category as the one with
// the highest order-item count across their history. Ties break by ascending
// category name to keep the inference deterministic.
func (r *Repository) TopOrderedCategory(ctx context.Context, userID int64) (string, error) {
	var category string
	err := r.pool.QueryRow(ctx,
		`SELECT c.name
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN dishes d ON d.id = oi.dish_id
		JOIN categories c ON c.id = d.category_id
		WHERE o.user_id = $1
		GROUP BY c.name
		ORDER BY COUNT(oi.id) DESC, c.name ASC
		LIMIT 1`,
		userID,
	).Scan(&category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("infer category for user %d: %w", userID, err)
	}
	return category, nil
}

// CategoryDishesBySales returns the category's currently available dishes by
// sales volume descending, ties by ascending dish ID.
func (r *Repository) CategoryDishesBySales(ctx context.Context, category string, limit int) ([]recommend.DishSales, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT d.id, d.sales
		FROM dishes d
		JOIN categories c ON c.id = d.category_id
		WHERE c.name = $1 AND d.is_available
		ORDER BY d.sales DESC, d.id ASC
		LIMIT $2`,
		category, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query dishes for category %q: %w", category, err)
	}
	defer rows.Close()

	var dishes []recommend.DishSales
	for rows.Next() {
		var d recommend.DishSales
		if err := rows.Scan(&d.DishID, &d.Sales); err != nil {
			return nil, fmt.Errorf("scan category dish: %w", err)
		}
		dishes = append(dishes, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category dishes: %w", err)
	}
	return dishes, nil
}
