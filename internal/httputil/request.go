package httputil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ID is a resource ID in a URI parameter.
//
// gin cannot bind uri parameters to uuid.UUID directly.
type ID struct {
	uuid.UUID
}

// UnmarshalParam parses the parameter. An empty parameter is the nil UUID.
func (i *ID) UnmarshalParam(p string) error {
	if p == "" {
		*i = ID{}
		return nil
	}

	parsed, err := uuid.Parse(p)
	if err != nil {
		return ErrInvalidUUID
	}

	*i = ID{parsed}
	return nil
}

// UnmarshalText parses IDs in request bodies. An empty string is the nil UUID.
func (i *ID) UnmarshalText(text []byte) error {
	return i.UnmarshalParam(string(text))
}

// Ptr returns the ID as pointer, nil for the nil UUID.
func (i ID) Ptr() *uuid.UUID {
	if i.UUID == uuid.Nil {
		return nil
	}

	id := i.UUID
	return &id
}

// URIID binds the id parameter of detail routes.
type URIID struct {
	ID ID `uri:"id" binding:"required"`
}

// BindURIID binds the id parameter of the request.
func BindURIID(c *gin.Context) (uuid.UUID, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		if errors.Is(err, ErrInvalidUUID) {
			return uuid.Nil, ErrInvalidUUID
		}

		return uuid.Nil, ValidationError(err)
	}

	return uri.ID.UUID, nil
}

// BindData binds the data from the request to the struct passed in the interface.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return err
		}

		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return ValidationError(err)
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// ValidationError converts binding validation errors into one readable error.
func ValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	texts := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		texts = append(texts, validationErrorText(e))
	}

	return errors.New(strings.Join(texts, ", "))
}

func validationErrorText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", e.Field(), e.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", e.Field(), e.Param())
	}

	return fmt.Sprintf("%s is not valid", e.Field())
}

// GetBodyFields returns the names of the fields of resource which
// are set in the request body.
//
// This function reads and copies the request body, it must always
// be called before any of gin's c.*Bind methods.
func GetBodyFields(c *gin.Context, resource any) ([]any, error) {
	// Copy the body to be able to use it multiple times
	body, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	if len(body) == 0 {
		return nil, ErrRequestBodyEmpty
	}

	// Parse the body into a map to have all fields available
	var mapBody map[string]any
	if err := json.Unmarshal(body, &mapBody); err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return nil, ErrInvalidBody
	}

	var bodyFields []any
	val := reflect.Indirect(reflect.ValueOf(resource))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param, _, _ := strings.Cut(val.Type().Field(i).Tag.Get("json"), ",")

		if _, ok := mapBody[param]; ok {
			bodyFields = append(bodyFields, field)
		}
	}

	return bodyFields, nil
}
