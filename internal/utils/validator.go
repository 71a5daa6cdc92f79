package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DecodeJSON decodes the request body into dst, rejecting unknown fields
func DecodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// ValidationErrors maps field name -> error message
type ValidationErrors map[string]string

func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report errors under the wire field name, not the Go one
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct runs the `validate` struct tags and flattens the result
// into a field-keyed message map.
func ValidateStruct(dst interface{}) ValidationErrors {
	errs := ValidationErrors{}
	if err := validate.Struct(dst); err != nil {
		var invalid validator.ValidationErrors
		if ok := errors.As(err, &invalid); !ok {
			errs["_"] = err.Error()
			return errs
		}
		for _, fe := range invalid {
			field := strings.ToLower(fe.Field())
			switch fe.Tag() {
			case "required":
				errs[field] = "field is required"
			case "email":
				errs[field] = "invalid email format"
			case "max":
				errs[field] = "value too long (max " + fe.Param() + ")"
			case "oneof":
				errs[field] = "must be one of: " + fe.Param()
			default:
				errs[field] = "invalid value"
			}
		}
	}
	return errs
}

func SanitizeString(s string) string {
	return strings.TrimSpace(s)
}
