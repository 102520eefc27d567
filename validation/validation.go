// Package validation runs structural checks over record types.
// It wraps a single validator instance and reports failures through the
// errors.ValidationError taxonomy, with field paths taken from json tags.
package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	apperrors "chatbet-models/errors"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct validates v against its `validate` tags and returns a
// ValidationError listing every failing field by its json path.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// validator.InvalidValidationError, programming error
		return apperrors.NewValidation("", err.Error())
	}
	out := &apperrors.ValidationError{}
	for _, fe := range fieldErrs {
		out.Add(fieldPath(fe), reason(fe))
	}
	return out
}

// fieldPath strips the root struct name from the namespace, leaving a
// dotted json path like "limits.max_bet_amount".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required field is missing"
	case "url", "http_url", "uri":
		return "must be a well-formed URL"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "min":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("must have at least %s characters or elements", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("must have at most %s characters or elements", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "startswith":
		return fmt.Sprintf("must start with %q", fe.Param())
	default:
		return fmt.Sprintf("failed %q constraint", fe.Tag())
	}
}

// DecodeStrict decodes JSON into v, rejecting payloads that carry
// fields the target type does not declare.
func DecodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return decodeError(err)
	}
	return nil
}

func decodeError(err error) error {
	if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
		return apperrors.NewValidation(typeErr.Field,
			fmt.Sprintf("wrong type: expected %s, got %s", typeErr.Type, typeErr.Value))
	}
	msg := err.Error()
	// encoding/json reports strict-mode violations as
	// `json: unknown field "name"`.
	if rest, found := strings.CutPrefix(msg, `json: unknown field `); found {
		return apperrors.NewValidation(strings.Trim(rest, `"`), "unknown field")
	}
	return apperrors.NewValidation("", msg)
}
