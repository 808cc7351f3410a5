package validate

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var patronIDRe = regexp.MustCompile(`^[0-9]{6}$`)

type CustomValidator struct {
	validator *validator.Validate
}

// NewCustomValidator registers the library specific tags:
// patronid (exactly six digits).
func NewCustomValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("patronid", func(fl validator.FieldLevel) bool {
		return patronIDRe.MatchString(fl.Field().String())
	})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
