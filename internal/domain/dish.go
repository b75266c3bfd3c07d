package domain

import "time"

type Dish struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	CategoryID  int64     `json:"category_id"`
	Sales       int64     `json:"sales"`
	IsAvailable bool      `json:"is_available"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
