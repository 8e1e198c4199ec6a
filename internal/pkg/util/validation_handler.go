package util

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var ErrInvalidDTO = errors.New("invalid request")

// ValidateDTO struct tag validation, first failure only
func ValidateDTO(dto any) error {
	if err := validate.Struct(dto); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			first := vErrs[0]
			return fmt.Errorf("%w: field [%s] failed rule [%s]", ErrInvalidDTO, first.Field(), first.Tag())
		}
		return err
	}
	return nil
}
