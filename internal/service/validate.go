package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/iliyamo/showbook/internal/model"
)

var phonePattern = regexp.MustCompile(`^[0-9]{3}-?[0-9]{3}-?[0-9]{4}$`)

// startTimeLayouts are tried in order.  Layouts without a zone are read
// as UTC.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// ParseStartTime reads a submitted show start time.
func ParseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid start time %q", s)
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		return model.IsValidGenre(fl.Field().String())
	})
	_ = v.RegisterValidation("usstate", func(fl validator.FieldLevel) bool {
		return model.IsValidState(fl.Field().String())
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("starttime", func(fl validator.FieldLevel) bool {
		_, err := ParseStartTime(fl.Field().String())
		return err == nil
	})
	return v
}

// validateStruct runs the struct tags of in and folds the violations into
// one FieldError per submitted field, in the order they were reported.
func validateStruct(v *validator.Validate, in any) []FieldError {
	err := v.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "form", Rules: []string{err.Error()}}}
	}

	var out []FieldError
	index := map[string]int{}
	for _, fe := range verrs {
		field, _, _ := strings.Cut(fe.Field(), "[")
		rule := describe(fe)
		i, seen := index[field]
		if !seen {
			index[field] = len(out)
			out = append(out, FieldError{Field: field, Rules: []string{rule}})
			continue
		}
		if !contains(out[i].Rules, rule) {
			out[i].Rules = append(out[i].Rules, rule)
		}
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Select at least %s.", fe.Param())
		}
		return fmt.Sprintf("Field must be at least %s characters long.", fe.Param())
	case "max":
		return fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param())
	case "genre":
		return fmt.Sprintf("'%v' is not a valid choice.", fe.Value())
	case "usstate":
		return "Not a valid choice."
	case "phone":
		return "Invalid phone number."
	case "url":
		return "Invalid URL."
	case "starttime":
		return "Not a valid datetime value."
	}
	return fmt.Sprintf("Failed the '%s' rule.", fe.Tag())
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
