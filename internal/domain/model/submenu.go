package model

import "github.com/google/uuid"

// Submenu belongs to exactly one Menu.
//
// @Description Submenu with a derived dish count
type Submenu struct {
	ID          uuid.UUID `json:"id" example:"5f0b1d67-1d8c-4b44-9a77-7a3a3f8d1c2e"`
	MenuID      uuid.UUID `json:"menu_id" example:"a2eb416c-2245-4526-bb4b-6343d5c5016f"`
	Title       string    `json:"title" example:"Salads"`
	Description string    `json:"description" example:"Cold starters"`
	// DishesCount is the live number of dishes under this submenu.
	DishesCount int `json:"dishes_count" example:"3"`
} // @name Submenu

// SubmenuInput carries the writable fields of a Submenu.
type SubmenuInput struct {
	Title       string
	Description string
}
