package validator

import (
	stderrors "errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/travel-agency/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	registerRules(validate)
}

// Validate - валидация структуры. Ошибки полей возвращаются как ErrValidationFailed
// с картой "поле -> нарушенное правило" в деталях.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.ErrInvalidRequest.Wrap(err)
	}

	fields := make(map[string]interface{}, len(fieldErrs))
	names := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Namespace()] = fe.Tag()
		names = append(names, fe.Field())
	}
	return errors.ErrValidationFailed.
		WithMessage("invalid fields: %s", strings.Join(names, ", ")).
		WithDetails(map[string]interface{}{"fields": fields}).
		Wrap(err)
}

// registerRules - регистрация кастомных тегов для кириллических полей
func registerRules(v *validator.Validate) {
	_ = v.RegisterValidation("cyrillic_name", func(fl validator.FieldLevel) bool {
		return ValidateNamePart(fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("cyrillic_name_optional", func(fl validator.FieldLevel) bool {
		return ValidateOptionalNamePart(fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("cyrillic_text", func(fl validator.FieldLevel) bool {
		return addressTextRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("house", func(fl validator.FieldLevel) bool {
		return houseRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("postal_code", func(fl validator.FieldLevel) bool {
		return postalCodeRegex.MatchString(fl.Field().String())
	})
}
