package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var structs = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// BodyError describes a request body that could not be accepted.
type BodyError struct {
	Reason string
	Fields map[string]string
}

func (e *BodyError) Error() string {
	if len(e.Fields) == 0 {
		return e.Reason
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return e.Reason + ": " + strings.Join(parts, "; ")
}

// DecodeJSON strictly decodes body into dest and runs its validate tags.
// Unknown fields and trailing data are rejected.
func DecodeJSON(body []byte, dest any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		return &BodyError{Reason: "invalid request body"}
	}
	if dec.More() {
		return &BodyError{Reason: "invalid request body"}
	}
	if err := structs.Struct(dest); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) *BodyError {
	if errs, ok := err.(validator.ValidationErrors); ok {
		fields := map[string]string{}
		for _, fe := range errs {
			fields[fe.Field()] = validationMessage(fe)
		}
		return &BodyError{Reason: "validation failed", Fields: fields}
	}
	return &BodyError{Reason: "validation failed"}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return "must be one of " + fe.Param()
	}
	return "is invalid"
}
