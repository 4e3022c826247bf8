// Package model defines the core domain entities for the menu service.
package model

import "github.com/google/uuid"

// Menu is the root of the menu hierarchy.
//
// SubmenusCount and DishesCount are derived at read time and never stored.
//
// @Description Menu with derived submenu and dish counts
type Menu struct {
	ID            uuid.UUID `json:"id" example:"a2eb416c-2245-4526-bb4b-6343d5c5016f"`
	Title         string    `json:"title" example:"Main menu"`
	Description   string    `json:"description" example:"Served all day"`
	SubmenusCount int       `json:"submenus_count" example:"2"`
	DishesCount   int       `json:"dishes_count" example:"7"`
} // @name Menu

// MenuInput carries the writable fields of a Menu.
type MenuInput struct {
	Title       string
	Description string
}
