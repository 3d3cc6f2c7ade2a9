package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	domainErrors "github.com/polkiloo/bakery/internal/domain/errors"
	"github.com/polkiloo/bakery/internal/server/http/dto"
)

// NewValidator returns a validator reporting fields by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// BindAndValidate decodes the JSON body into out and validates it.
// On failure it writes a 422 response and returns the error.
func BindAndValidate(c *gin.Context, out any, v *validator.Validate) error {
	if err := c.ShouldBindJSON(out); err != nil {
		abortWithDetail(c, http.StatusUnprocessableEntity, "invalid request body: "+err.Error())
		return err
	}
	if err := v.Struct(out); err != nil {
		abortWithDetail(c, http.StatusUnprocessableEntity, validationDetail(err))
		return err
	}
	return nil
}

func validationDetail(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.TrimPrefix(fe.Namespace(), rootNamespace(fe))
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: failed on %s=%s", field, fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: failed on %s", field, fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

// Namespace carries the struct type name as its first segment.
func rootNamespace(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[:i+1]
	}
	return ""
}

// parseBoolQuery reads an optional boolean query parameter.
func parseBoolQuery(c *gin.Context, key string) (*bool, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be a boolean", key)
	}
	return &value, nil
}

func abortWithDetail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Detail: detail})
}

// writeError maps domain errors onto HTTP statuses.
func writeError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidReference),
		errors.Is(err, domainErrors.ErrItemUnavailable):
		abortWithDetail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domainErrors.ErrNotFound):
		abortWithDetail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domainErrors.ErrValidation):
		abortWithDetail(c, http.StatusUnprocessableEntity, err.Error())
	default:
		logger.Error("request failed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()),
		)
		abortWithDetail(c, http.StatusInternalServerError, "internal server error")
	}
}
