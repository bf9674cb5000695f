package middleware

import (
	"reflect"
	"strings"

	"github.com/agile/ecommerce-backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SetupValidator configures the binding validator. Field names in validation
// errors use the JSON tag so they match the wire contract.
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			return name
		})
	}
}

// fieldMessages carries the client-facing message per field and violated tag.
// The texts are part of the API contract.
var fieldMessages = map[string]map[string]string{
	"name": {
		"required": "Name cannot be blank",
		"min":      "Name must be between 2 and 100 characters",
		"max":      "Name must be between 2 and 100 characters",
	},
	"description": {
		"required": "Description cannot be blank",
		"min":      "Description must be between 10 and 500 characters",
		"max":      "Description must be between 10 and 500 characters",
	},
	"price": {
		"required": "Price cannot be null",
		"gte":      "Price must be non-negative",
		"gt":       "Price must be greater than 0",
	},
	"quantity": {
		"gte": "Quantity must be non-negative",
		"min": "Quantity must be at least 1",
	},
	"orderDate": {
		"required": "Order date cannot be null",
	},
	"customerName": {
		"required": "Customer name cannot be blank",
		"min":      "Customer name must be between 2 and 100 characters",
		"max":      "Customer name must be between 2 and 100 characters",
	},
	"customerAddress": {
		"required": "Customer address cannot be blank",
		"min":      "Customer address must be between 5 and 255 characters",
		"max":      "Customer address must be between 5 and 255 characters",
	},
	"orderItems": {
		"required": "Order must contain at least one item",
		"min":      "Order must contain at least one item",
	},
	"productName": {
		"required": "Product name cannot be blank",
		"min":      "Product name must be between 2 and 100 characters",
		"max":      "Product name must be between 2 and 100 characters",
	},
}

// FormatValidationErrors maps validator errors into the field-to-message wire
// shape. Later violations of the same field overwrite earlier ones, so each
// field reports exactly one message.
func FormatValidationErrors(err error) dto.FieldErrors {
	fields := dto.FieldErrors{}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fields
	}

	for _, e := range validationErrors {
		fields[e.Field()] = validationMessage(e)
	}
	return fields
}

func validationMessage(e validator.FieldError) string {
	if byTag, ok := fieldMessages[e.Field()]; ok {
		if msg, ok := byTag[e.Tag()]; ok {
			return msg
		}
	}

	switch e.Tag() {
	case "required":
		return "This field is required"
	case "min":
		if e.Type().Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Type().Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "gte":
		return "Must be greater than or equal to " + e.Param()
	case "gt":
		return "Must be greater than " + e.Param()
	case "oneof":
		return "Must be one of: " + e.Param()
	default:
		return "Invalid value"
	}
}
