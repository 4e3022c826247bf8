package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name    string
		entity  string
		message string
	}{
		{name: "menu", entity: EntityMenu, message: "menu not found"},
		{name: "submenu", entity: EntitySubmenu, message: "submenu not found"},
		{name: "dish", entity: EntityDish, message: "dish not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fmt.Errorf("lookup: %w", NewNotFoundError(tt.entity))

			assert.True(t, errors.Is(err, ErrNotFound))
			assert.Contains(t, err.Error(), tt.message)

			var nf *NotFoundError
			assert.True(t, errors.As(err, &nf))
			assert.Equal(t, tt.entity, nf.Entity)
		})
	}

	assert.False(t, errors.Is(errors.New("other"), ErrNotFound))
}
