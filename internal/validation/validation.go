package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/alexanderramin/juku/internal/domain"
	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator. Field names in errors come from
// the `name` struct tag when present. Extra tags:
//
//	notblank  string is not empty after trimming spaces
//	level     string is one of the known levels
//	role      string is a known user role
//	date      string is blank or a YYYY-MM-DD date
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if name := fld.Tag.Get("name"); name != "" && name != "-" {
				return name
			}
			return fld.Name
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = v.RegisterValidation("level", func(fl validator.FieldLevel) bool {
			return domain.ValidLevels[fl.Field().String()]
		})
		_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
			return domain.ValidRoles[fl.Field().String()]
		})
		_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseOptionalDate(fl.Field().String())
			return err == nil
		})
		validate = v
	})
	return validate
}

// Struct validates s and returns one message per failing field, keyed by
// field name. A nil map means s is valid.
func Struct(s any) map[string]string {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	return FieldErrors(err)
}

// FieldErrors converts validator errors into readable messages.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, e := range verrs {
		out[e.Field()] = message(e)
	}
	return out
}

// Summary joins field messages in field order, e.g. "name: is required; ...".
func Summary(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + fields[k]
	}
	return strings.Join(parts, "; ")
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "notblank":
		return "is required"
	case "gte":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", e.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())
	case "min":
		return fmt.Sprintf("needs at least %s entries", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", e.Param())
	case "level":
		return fmt.Sprintf("unknown level %q (want basic, tier2, tier3 or tier4)", e.Value())
	case "role":
		return fmt.Sprintf("unknown role %q", e.Value())
	case "date":
		return fmt.Sprintf("invalid date %q (want YYYY-MM-DD)", e.Value())
	default:
		return "is invalid"
	}
}
