package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hotmeal/recommender/internal/domain"
	"github.com/jackc/pgx/v5"
)

// DishByID hydrates a dish ID into a full record.
func (r *Repository) DishByID(ctx context.Context, dishID int64) (*domain.Dish, error) {
	dish := &domain.Dish{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, price, COALESCE(category_id, 0), sales, is_available,
			COALESCE(description, ''), created_at
		FROM dishes WHERE id = $1`,
		dishID,
	).Scan(&dish.ID, &dish.Name, &dish.Price, &dish.CategoryID, &dish.Sales,
		&dish.IsAvailable, &dish.Description, &dish.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDishNotFound
		}
		return nil, fmt.Errorf("query dish id=%d: %w", dishID, err)
	}
	return dish, nil
}
