// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"strings"

	"safezone/internal/domain/entity"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type echoValidator struct {
	validate *playground.Validate
}

// New builds the request validator with the domain enum rules registered.
func New() *echoValidator {
	v := playground.New(playground.WithRequiredStructEnabled())

	_ = v.RegisterValidation("incident_category", func(fl playground.FieldLevel) bool {
		return entity.IncidentCategory(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("zone_type", func(fl playground.FieldLevel) bool {
		return entity.ZoneType(fl.Field().String()).Valid()
	})

	return &echoValidator{validate: v}
}

// Validate implements echo.Validator. Field errors are flattened into one
// readable message.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg := fe.Field() + " failed " + fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		msgs = append(msgs, msg)
	}

	return errors.New(strings.Join(msgs, "; "))
}
