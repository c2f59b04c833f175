package validation

import (
	"time"

	"github.com/go-playground/validator/v10"

	"gardgear/pkg/status"
)

// registerRules wires the domain-specific tags used by the DTOs.
func registerRules(v *validator.Validate) error {
	// storage_status: one of the four title-case statuses the API stores.
	if err := v.RegisterValidation("storage_status", func(fl validator.FieldLevel) bool {
		return status.IsValid(fl.Field().String())
	}); err != nil {
		return err
	}

	// display_status: one of the four lowercase column identifiers.
	if err := v.RegisterValidation("display_status", func(fl validator.FieldLevel) bool {
		return status.IsValidDisplay(fl.Field().String())
	}); err != nil {
		return err
	}

	// date_yyyymmdd: empty or a calendar date in API wire format.
	if err := v.RegisterValidation("date_yyyymmdd", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		return isWireDate(s)
	}); err != nil {
		return err
	}

	return nil
}

func isWireDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
