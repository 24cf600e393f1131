package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/pageza/portfolio/backend/internal/middleware"
	"github.com/pageza/portfolio/backend/internal/service"
	"github.com/pageza/portfolio/backend/internal/store"
	"github.com/pageza/portfolio/backend/internal/types"
	"github.com/sirupsen/logrus"
)

// ValidationResponse is the body of a 422 response.
type ValidationResponse struct {
	Error  string               `json:"error"`
	Fields []service.FieldError `json:"fields"`
}

var registerTagNames sync.Once

// useJSONFieldNames makes validator report fields by their JSON names.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// respondError maps a service error to its HTTP response.
func respondError(c *gin.Context, err error) {
	var (
		notFound *service.NotFoundError
		invalid  *service.ValidationError
	)
	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, middleware.ErrorResponse{Error: notFound.Error()})
	case errors.As(err, &invalid):
		c.JSON(http.StatusUnprocessableEntity, ValidationResponse{Error: "validation failed", Fields: invalid.Fields})
	default:
		_ = c.Error(err)
		logrus.WithError(err).WithFields(logrus.Fields{
			"request_id": c.GetString(middleware.RequestIDKey),
			"path":       c.Request.URL.Path,
		}).Error("request failed")
		c.JSON(http.StatusInternalServerError, middleware.ErrorResponse{Error: "internal server error"})
	}
}

// bindJSON decodes and validates the request body into req.
func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return toValidationError(err)
	}
	return nil
}

// bindPatch decodes an update body into req and returns the fields that
// were present in it.
func bindPatch(c *gin.Context, req any) (store.Fields, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, err
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, service.NewValidationError("body", "request body is required")
	}

	var present map[string]json.RawMessage
	if err := json.Unmarshal(body, &present); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, service.NewValidationError("body", "must be a JSON object")
		}
		return nil, toValidationError(err)
	}
	if present == nil {
		return nil, service.NewValidationError("body", "must be a JSON object")
	}
	if err := json.Unmarshal(body, req); err != nil {
		return nil, toValidationError(err)
	}
	if err := binding.Validator.ValidateStruct(req); err != nil {
		return nil, toValidationError(err)
	}
	return types.PatchOf(req, present)
}

// toValidationError describes a binding failure field by field.
func toValidationError(err error) error {
	var (
		verrs    validator.ValidationErrors
		typeErr  *json.UnmarshalTypeError
		syntaxEr *json.SyntaxError
	)
	switch {
	case errors.As(err, &verrs):
		fields := make([]service.FieldError, len(verrs))
		for i, fe := range verrs {
			fields[i] = service.FieldError{Field: fieldPath(fe), Message: describe(fe)}
		}
		return &service.ValidationError{Fields: fields}
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return service.NewValidationError(field, fmt.Sprintf("must be of type %s", jsonType(typeErr.Type)))
	case errors.As(err, &syntaxEr):
		return service.NewValidationError("body", "malformed JSON")
	case errors.Is(err, io.EOF):
		return service.NewValidationError("body", "request body is required")
	default:
		return service.NewValidationError("body", err.Error())
	}
}

// fieldPath drops the top-level struct name from the validator namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return fmt.Sprintf("failed the %q rule", fe.Tag())
	}
}

func jsonType(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}
