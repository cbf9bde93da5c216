package activity

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"

	"hurghada-dream/go_backend/internal/domain/errs"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks a draft before it is written anywhere. Every failing field
// is reported in a single ValidationError.
func Validate(op string, d Draft) error {
	d.Name = strings.TrimSpace(d.Name)
	err := validatorInstance().Struct(d)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errs.Wrap(errs.KindValidation, op, err)
	}
	var combined error
	for _, fe := range fieldErrs {
		combined = multierr.Append(combined, fieldError(fe))
	}
	return errs.Wrap(errs.KindValidation, op, combined)
}

func fieldError(fe validator.FieldError) error {
	field := strings.ToLower(fe.StructField())
	if strings.HasPrefix(fe.Namespace(), "Draft.Days[") {
		field = "days"
	}
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "oneof":
		return fmt.Errorf("%s must be one of %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Errorf("%s must not be negative", field)
	case "unique":
		return fmt.Errorf("%s must not contain duplicates", field)
	case "min", "max":
		return fmt.Errorf("%s must be weekdays between 0 and 6", field)
	default:
		return fmt.Errorf("%s is invalid (%s)", field, fe.Tag())
	}
}
