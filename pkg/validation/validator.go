package validation

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator adapts go-playground/validator to the echo.Validator
// interface.
type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// New creates the validator with the project's custom rules registered.
// Rule registration failures are programming errors, so the server must
// not start past them.
func New() *CustomValidator {
	v := validator.New()

	if err := registerRules(v); err != nil {
		panic("validator rule registration failed: " + err.Error())
	}

	return &CustomValidator{validator: v}
}
