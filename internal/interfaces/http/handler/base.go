package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/agile/ecommerce-backend/internal/domain/shared"
	"github.com/agile/ecommerce-backend/internal/interfaces/http/dto"
	"github.com/agile/ecommerce-backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// OK sends a 200 response with the payload
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 created response with the payload
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// HandleBindingError maps a request binding failure to a 400 response.
// Validator errors become a field-to-message map; anything else (malformed
// JSON, type mismatches) becomes a single-message error body.
func (h *BaseHandler) HandleBindingError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, middleware.FormatValidationErrors(err))
		return
	}

	c.JSON(http.StatusBadRequest, dto.NewErrorBody("Malformed request body"))
}

// HandleError maps application errors to HTTP responses. Missing entities
// produce 404 with the entity's own message text, domain rule violations
// produce 400, everything else is a 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var notFound *shared.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, dto.NewErrorBody(notFound.Error()))
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(http.StatusBadRequest, dto.NewErrorBody(domainErr.Message))
		return
	}

	c.JSON(http.StatusInternalServerError, dto.NewErrorBody("An unexpected error occurred"))
}

// parseIDParam parses the :id path parameter
func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
