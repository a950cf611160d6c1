package validator

import (
	"regexp"
	"strings"

	"github.com/travel-agency/internal/pkg/errors"
)

var (
	nameRegex        = regexp.MustCompile(`^[А-ЯЁа-яё]+(-[А-ЯЁа-яё]+)*$`)
	addressTextRegex = regexp.MustCompile(`^[А-ЯЁа-яё]+([ -][А-ЯЁа-яё]+)*$`)
	houseRegex       = regexp.MustCompile(`^\d+[А-Яа-я]?(/\d+[А-Яа-я]?)?$`)
	postalCodeRegex  = regexp.MustCompile(`^\d{6}$`)
)

// AddressFields - проверяемые поля адреса
type AddressFields struct {
	Region     string
	City       string
	Street     string
	House      string
	Building   string
	Apartment  string
	PostalCode string
}

// ValidateNamePart - часть ФИО: только кириллица и внутренние дефисы
func ValidateNamePart(value string) error {
	if strings.TrimSpace(value) == "" {
		return fieldError("name", "Field is required")
	}
	if !nameRegex.MatchString(value) {
		return fieldError("name", "Only Cyrillic letters and hyphens are allowed, no spaces")
	}
	return nil
}

// ValidateOptionalNamePart - как ValidateNamePart, но пустое значение допустимо
func ValidateOptionalNamePart(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return ValidateNamePart(value)
}

// ValidateAddress - проверка адреса в фиксированном порядке, первая ошибка побеждает
func ValidateAddress(a AddressFields) error {
	textFields := []struct {
		field, label, value string
	}{
		{"region", "Region", a.Region},
		{"city", "City", a.City},
		{"street", "Street", a.Street},
	}
	for _, f := range textFields {
		if strings.TrimSpace(f.value) == "" || !addressTextRegex.MatchString(f.value) {
			return fieldError(f.field, f.label+": only Cyrillic letters, spaces and hyphens")
		}
	}

	if strings.TrimSpace(a.House) == "" || !houseRegex.MatchString(a.House) {
		return fieldError("house", "House: digits, an optional letter and '/' are allowed")
	}
	if strings.TrimSpace(a.Building) != "" && !houseRegex.MatchString(a.Building) {
		return fieldError("building", "Building: digits, an optional letter and '/' are allowed")
	}
	if strings.TrimSpace(a.Apartment) != "" && !houseRegex.MatchString(a.Apartment) {
		return fieldError("apartment", "Apartment: digits, an optional letter and '/' are allowed")
	}
	if strings.TrimSpace(a.PostalCode) == "" || !postalCodeRegex.MatchString(a.PostalCode) {
		return fieldError("postalCode", "Postal code: exactly 6 digits")
	}
	return nil
}

func fieldError(field, message string) error {
	return errors.ErrValidationFailed.WithMessage("%s", message).
		WithDetails(map[string]interface{}{"field": field})
}
