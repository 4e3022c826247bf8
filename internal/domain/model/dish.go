package model

import "github.com/google/uuid"

// Dish belongs to exactly one Submenu.
//
// @Description Dish with its display price
type Dish struct {
	ID          uuid.UUID `json:"id" example:"0c1d9b0e-3a7e-4a7b-8d53-2f0b7d6d3c11"`
	SubmenuID   uuid.UUID `json:"submenu_id" example:"5f0b1d67-1d8c-4b44-9a77-7a3a3f8d1c2e"`
	Title       string    `json:"title" example:"Caesar"`
	Description string    `json:"description" example:"Romaine, croutons, parmesan"`
	Price       Price     `json:"price" swaggertype:"string" example:"12.50"`
} // @name Dish

// DishInput carries the writable fields of a Dish.
type DishInput struct {
	Title       string
	Description string
	Price       Price
}
