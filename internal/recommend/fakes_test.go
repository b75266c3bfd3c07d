package recommend

import (
	"context"
	"time"

	"github.com/hotmeal/recommender/internal/domain"
)

type fakeInteractionReader struct {
	purchases      []Purchase
	counts         []DishCount
	firstPurchases map[int64]map[int64]time.Time
	err            error
}

func (f *fakeInteractionReader) AllPurchases(ctx context.Context) ([]Purchase, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.purchases, nil
}

func (f *fakeInteractionReader) UserDishes(ctx context.Context, userID int64) (map[int64]struct{}, error) {
	if f.err != nil {
		return nil, f.err
	}
	dishes := make(map[int64]struct{})
	for _, p := range f.purchases {
		if p.UserID == userID {
			dishes[p.DishID] = struct{}{}
		}
	}
	return dishes, nil
}

func (f *fakeInteractionReader) DishOrderCounts(ctx context.Context, window time.Duration, limit int) ([]DishCount, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.counts) > limit {
		return f.counts[:limit], nil
	}
	return f.counts, nil
}

func (f *fakeInteractionReader) UserFirstPurchases(ctx context.Context, userID int64) (map[int64]time.Time, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.firstPurchases[userID], nil
}

type fakeProfileReader struct {
	explicit       map[int64]string
	topCategory    map[int64]string
	categoryDishes map[string][]DishSales
	err            error
}

func (f *fakeProfileReader) ExplicitPreference(ctx context.Context, userID int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.explicit[userID], nil
}

func (f *fakeProfileReader) TopOrderedCategory(ctx context.Context, userID int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.topCategory[userID], nil
}

func (f *fakeProfileReader) CategoryDishesBySales(ctx context.Context, category string, limit int) ([]DishSales, error) {
	if f.err != nil {
		return nil, f.err
	}
	dishes := f.categoryDishes[category]
	if len(dishes) > limit {
		return dishes[:limit], nil
	}
	return dishes, nil
}

type fakeDishReader struct {
	dishes map[int64]*domain.Dish
}

func (f *fakeDishReader) DishByID(ctx context.Context, dishID int64) (*domain.Dish, error) {
	dish, ok := f.dishes[dishID]
	if !ok {
		return nil, domain.ErrDishNotFound
	}
	return dish, nil
}

// dishCatalog builds a reader that resolves the given IDs to simple records.
func dishCatalog(ids ...int64) *fakeDishReader {
	dishes := make(map[int64]*domain.Dish, len(ids))
	for _, id := range ids {
		dishes[id] = &domain.Dish{ID: id, Name: "dish", Price: 9.90, CategoryID: 1}
	}
	return &fakeDishReader{dishes: dishes}
}
