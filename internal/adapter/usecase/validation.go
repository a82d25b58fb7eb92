package usecase

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"campaign-desk/internal/core/domain"
)

// newValidator returns a validator that reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// check validates s and converts validator failures into a
// *domain.ValidationError for entity. extra are appended to the field list.
func (u *UseCase) check(entity string, s any, extra ...domain.FieldError) error {
	var fields []domain.FieldError
	if err := u.validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate %s: %w", entity, err)
		}
		for _, fe := range verrs {
			fields = append(fields, domain.FieldError{Field: fieldPath(fe), Message: fieldMessage(fe)})
		}
	}
	fields = append(fields, extra...)
	if len(fields) == 0 {
		return nil
	}
	return &domain.ValidationError{Entity: entity, Fields: fields}
}

// fieldPath drops the struct name from the namespace: "CampaignInput.platforms[0]"
// becomes "platforms[0]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		if k := fe.Kind(); k == reflect.Slice || k == reflect.Array {
			return fmt.Sprintf("Must contain at least %s item(s)", fe.Param())
		}
		return "Must not be empty"
	case "gte":
		return "Must be greater than or equal to " + fe.Param()
	case "gt":
		return "Must be greater than " + fe.Param()
	default:
		return "Invalid value"
	}
}

// nullableRef checks a nullable reference id: null is fine, a value must be
// positive.
func nullableRef(field string, n domain.Nullable[int64]) []domain.FieldError {
	if n.Valid && n.Value <= 0 {
		return []domain.FieldError{{Field: field, Message: "Must be greater than 0"}}
	}
	return nil
}

// nullableAmount checks a nullable money amount: null is fine, a value must
// not be negative.
func nullableAmount(field string, n domain.Nullable[int64]) []domain.FieldError {
	if n.Valid && n.Value < 0 {
		return []domain.FieldError{{Field: field, Message: "Must be greater than or equal to 0"}}
	}
	return nil
}
