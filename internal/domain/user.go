package domain

import "time"

type User struct {
	ID              int64     `json:"id"`
	Account         string    `json:"account"`
	Username        string    `json:"username,omitempty"`
	FavoriteCuisine string    `json:"favorite_cuisine,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
