// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// MenuRequest is the JSON body for creating or updating a menu.
//
// @Description Menu fields accepted on create and update
type MenuRequest struct {
	Title       string `json:"title" binding:"required,max=255" example:"Main menu"`
	Description string `json:"description" binding:"max=1024" example:"Served all day"`
} // @name MenuRequest

// ToInput converts the request into the domain input.
func (r MenuRequest) ToInput() model.MenuInput {
	return model.MenuInput{Title: r.Title, Description: r.Description}
}

// SubmenuRequest is the JSON body for creating or updating a submenu.
//
// @Description Submenu fields accepted on create and update
type SubmenuRequest struct {
	Title       string `json:"title" binding:"required,max=255" example:"Salads"`
	Description string `json:"description" binding:"max=1024" example:"Cold starters"`
} // @name SubmenuRequest

// ToInput converts the request into the domain input.
func (r SubmenuRequest) ToInput() model.SubmenuInput {
	return model.SubmenuInput{Title: r.Title, Description: r.Description}
}

// DishRequest is the JSON body for creating or updating a dish.
// Price is a non-negative decimal string with at most two fractional digits.
//
// @Description Dish fields accepted on create and update
type DishRequest struct {
	Title       string `json:"title" binding:"required,max=255" example:"Caesar"`
	Description string `json:"description" binding:"max=1024" example:"Romaine, croutons, parmesan"`
	Price       string `json:"price" binding:"required,price" example:"12.50"`
} // @name DishRequest

// ToInput converts the request into the domain input. Binding has already
// checked the price, so a parse failure here is a programming error.
func (r DishRequest) ToInput() (model.DishInput, error) {
	price, err := model.ParsePrice(r.Price)
	if err != nil {
		return model.DishInput{}, err
	}
	return model.DishInput{Title: r.Title, Description: r.Description, Price: price}, nil
}

var registerOnce sync.Once

// RegisterValidators installs the custom rules on gin's binding engine and
// reports fields by their JSON names. Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("price", validatePrice)
	})
}

// validatePrice accepts decimal strings that are non-negative and carry no
// more than model.PriceScale fractional digits.
func validatePrice(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return !d.IsNegative() && d.Exponent() >= -model.PriceScale
}

// ValidationDetails flattens binding errors into field → rule pairs for the
// error response. It returns nil for errors that are not validation failures.
func ValidationDetails(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg := fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		details[fe.Field()] = msg
	}
	return details
}
