package seeds

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const (
	userCount  = 20
	orderCount = 150
)

var cuisines = []string{"Sichuan", "Cantonese", "Hunan", "Jiangsu", "Noodles", "Desserts"}

var dishNames = map[string][]string{
	"Sichuan": {
		"Kung Pao Chicken", "Mapo Tofu", "Twice-Cooked Pork", "Boiled Fish in Chili Oil",
		"Dan Dan Noodles", "Sichuan Hot Pot", "Dry-Fried Green Beans", "Chongqing Chicken",
	},
	"Cantonese": {
		"Char Siu Pork", "Steamed Sea Bass", "Shrimp Dumplings", "White Cut Chicken",
		"Roast Goose", "Beef Chow Fun", "Congee with Century Egg", "Sweet and Sour Pork",
	},
	"Hunan": {
		"Steamed Fish Head with Chili", "Mao's Braised Pork", "Hunan Spicy Beef",
		"Stir-Fried Pork with Peppers", "Dong'an Chicken", "Smoked Bacon with Leeks",
		"Spicy Eggplant Clay Pot", "Pickled Pepper Tofu",
	},
	"Jiangsu": {
		"Sweet and Sour Mandarin Fish", "Lion's Head Meatballs", "Yangzhou Fried Rice",
		"Braised Pork Belly", "Crystal Shrimp", "Duck Blood Vermicelli Soup",
		"Drunken Chicken", "Crab Roe Tofu",
	},
	"Noodles": {
		"Beef Noodle Soup", "Zhajiang Noodles", "Cold Sesame Noodles", "Wonton Noodles",
		"Scallion Oil Noodles", "Lanzhou Hand-Pulled Noodles", "Hot Dry Noodles",
		"Knife-Cut Noodles",
	},
	"Desserts": {
		"Mango Pomelo Sago", "Red Bean Soup", "Egg Tarts", "Sesame Balls",
		"Tangyuan", "Osmanthus Jelly", "Double-Skin Milk", "Pineapple Buns",
	},
}

func Setup(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) error {
	rng := rand.New(rand.NewSource(42))

	// Truncate existing data before insert
	log.Info().Msg("[seed] truncating existing data")
	if _, err := pool.Exec(ctx, `
		TRUNCATE order_items, orders, dishes, categories, users RESTART IDENTITY CASCADE
	`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	log.Info().Msg("[seed] inserting users")
	if err := seedUsers(ctx, pool, rng); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	log.Info().Msg("[seed] inserting categories and dishes")
	dishTotal, err := seedMenu(ctx, pool, rng)
	if err != nil {
		return fmt.Errorf("seed menu: %w", err)
	}

	log.Info().Msg("[seed] inserting orders")
	if err := seedOrders(ctx, pool, rng, dishTotal); err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}

	log.Info().Msg("[seed] seeding complete")
	return nil
}

func seedUsers(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand) error {
	rows := []string{}
	args := []any{}

	for i := 0; i < userCount; i++ {
		account := fmt.Sprintf("diner%02d", i+1)
		username := fmt.Sprintf("Diner %d", i+1)

		// Roughly a third of users record an explicit favorite cuisine.
		var favorite any
		if rng.Intn(3) == 0 {
			favorite = cuisines[rng.Intn(len(cuisines))]
		}
		createdAt := time.Now().AddDate(0, 0, -rng.Intn(365))

		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4))
		args = append(args, account, username, favorite, createdAt)
	}

	query := "INSERT INTO users (account, username, favorite_cuisine, created_at) VALUES " +
		strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func seedMenu(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand) (int, error) {
	for _, cuisine := range cuisines {
		if _, err := pool.Exec(ctx,
			"INSERT INTO categories (name) VALUES ($1)", cuisine); err != nil {
			return 0, fmt.Errorf("insert category %s: %w", cuisine, err)
		}
	}

	rows := []string{}
	args := []any{}
	total := 0

	for catIdx, cuisine := range cuisines {
		for _, name := range dishNames[cuisine] {
			price := math.Round((5+rng.Float64()*45)*100) / 100
			sales := powerLawSales(rng)
			available := rng.Float64() > 0.1

			base := len(args)
			rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)",
				base+1, base+2, base+3, base+4, base+5))
			args = append(args, name, price, sales, catIdx+1, available)
			total++
		}
	}

	query := "INSERT INTO dishes (name, price, sales, category_id, is_available) VALUES " +
		strings.Join(rows, ", ")

	if _, err := pool.Exec(ctx, query, args...); err != nil {
		return 0, err
	}
	return total, nil
}

func seedOrders(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, dishTotal int) error {
	for i := 0; i < orderCount; i++ {
		// Power-law user and dish selection so a few users and dishes
		// dominate, giving the similarity matrix real overlap.
		userID := int64(math.Ceil(math.Pow(rng.Float64(), 1.5) * userCount))
		userID = max(1, min(userID, userCount))

		createdAt := time.Now().AddDate(0, 0, -rng.Intn(90))

		var orderID int64
		err := pool.QueryRow(ctx,
			"INSERT INTO orders (user_id, created_at) VALUES ($1, $2) RETURNING id",
			userID, createdAt,
		).Scan(&orderID)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		itemCount := 1 + rng.Intn(4)
		seen := make(map[int64]bool, itemCount)
		rows := []string{}
		args := []any{}
		for j := 0; j < itemCount; j++ {
			dishID := int64(math.Ceil(math.Pow(rng.Float64(), 1.3) * float64(dishTotal)))
			dishID = max(1, min(dishID, int64(dishTotal)))
			if seen[dishID] {
				continue
			}
			seen[dishID] = true

			base := len(args)
			rows = append(rows, fmt.Sprintf("($%d, $%d, $%d)", base+1, base+2, base+3))
			args = append(args, orderID, dishID, 1+rng.Intn(3))
		}

		query := "INSERT INTO order_items (order_id, dish_id, quantity) VALUES " +
			strings.Join(rows, ", ")
		if _, err := pool.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("insert order items: %w", err)
		}
	}
	return nil
}

func powerLawSales(rng *rand.Rand) int {
	u := rng.Float64()
	if u == 0 {
		u = 0.001
	}
	return int(math.Pow(u, 2.0)*500) + 1
}
