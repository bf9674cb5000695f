package middleware

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validationProbe struct {
	Name        string   `json:"name" binding:"required,min=2,max=100"`
	Description string   `json:"description" binding:"required,min=10,max=500"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Quantity    int      `json:"quantity" binding:"gte=0"`
}

func TestFormatValidationErrors(t *testing.T) {
	SetupValidator()
	validate := binding.Validator.Engine().(*validator.Validate)

	t.Run("maps violations to contract messages keyed by json field", func(t *testing.T) {
		price := -1.0
		err := validate.Struct(validationProbe{
			Name:        "",
			Description: "short",
			Price:       &price,
			Quantity:    0,
		})
		require.Error(t, err)

		fields := FormatValidationErrors(err)
		assert.Equal(t, "Name cannot be blank", fields["name"])
		assert.Equal(t, "Description must be between 10 and 500 characters", fields["description"])
		assert.Equal(t, "Price must be non-negative", fields["price"])
		assert.NotContains(t, fields, "quantity")
	})

	t.Run("missing price reports the null message", func(t *testing.T) {
		err := validate.Struct(validationProbe{
			Name:        "Laptop",
			Description: "A fast developer laptop",
		})
		require.Error(t, err)

		fields := FormatValidationErrors(err)
		assert.Equal(t, "Price cannot be null", fields["price"])
		assert.Len(t, fields, 1)
	})

	t.Run("non-validator errors yield an empty map", func(t *testing.T) {
		fields := FormatValidationErrors(errors.New("boom"))
		assert.Empty(t, fields)
	})
}
