package validator

import (
	"github.com/go-playground/validator/v10"

	apperrors "github.com/johnquangdev/meeting-manager/errors"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance
func New() *CustomValidator {
	v := validator.New()
	return &CustomValidator{v: v}
}

// Validate performs struct validation and maps failures to an AppError with
// per-field details
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.v.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	appErr := apperrors.ErrInvalidPayload()
	for _, fe := range validationErrs {
		appErr = appErr.WithDetail(fe.Field(), fe.Tag())
	}
	return appErr
}
