package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-agency/internal/pkg/errors"
)

func validAddress() AddressFields {
	return AddressFields{
		Region:     "Московская область",
		City:       "Москва",
		Street:     "Тверская",
		House:      "1",
		PostalCode: "123456",
	}
}

func TestValidateNamePart(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"simple name", "Иван", false},
		{"double surname", "Римский-Корсаков", false},
		{"yo letter", "Королёв", false},
		{"empty", "", true},
		{"only spaces", "   ", true},
		{"latin", "Ivan", true},
		{"digits", "Иван2", true},
		{"space inside", "Иван Петрович", true},
		{"leading hyphen", "-Иван", true},
		{"trailing hyphen", "Иван-", true},
		{"surrounding spaces", " Иван ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNamePart(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateOptionalNamePart(t *testing.T) {
	assert.NoError(t, ValidateOptionalNamePart(""))
	assert.NoError(t, ValidateOptionalNamePart("  "))
	assert.NoError(t, ValidateOptionalNamePart("Иванович"))
	assert.Error(t, ValidateOptionalNamePart("Ivanovich"))
}

func TestValidateAddress_Valid(t *testing.T) {
	addresses := []AddressFields{
		validAddress(),
		func() AddressFields {
			a := validAddress()
			a.City = "Ростов-на-Дону"
			a.House = "12а/3б"
			a.Building = "2"
			a.Apartment = "45"
			return a
		}(),
	}
	for _, a := range addresses {
		assert.NoError(t, ValidateAddress(a))
	}
}

func TestValidateAddress_FieldFailures(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(a *AddressFields)
	}{
		{"region", func(a *AddressFields) { a.Region = "" }},
		{"region", func(a *AddressFields) { a.Region = "Moscow" }},
		{"city", func(a *AddressFields) { a.City = "Москва1" }},
		{"street", func(a *AddressFields) { a.Street = "Тверская  улица" }},
		{"house", func(a *AddressFields) { a.House = "" }},
		{"house", func(a *AddressFields) { a.House = "abc" }},
		{"building", func(a *AddressFields) { a.Building = "к1" }},
		{"apartment", func(a *AddressFields) { a.Apartment = "1/" }},
		{"postalCode", func(a *AddressFields) { a.PostalCode = "12345" }},
		{"postalCode", func(a *AddressFields) { a.PostalCode = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			a := validAddress()
			tt.mutate(&a)

			err := ValidateAddress(a)
			require.Error(t, err)

			appErr, ok := errors.As(err)
			require.True(t, ok)
			assert.Equal(t, errors.CodeValidationFailed, appErr.Code)
			assert.Equal(t, tt.field, appErr.Details["field"])
		})
	}
}

func TestValidateAddress_FirstFailureWins(t *testing.T) {
	a := validAddress()
	a.City = ""
	a.PostalCode = "1"

	err := ValidateAddress(a)
	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, "city", appErr.Details["field"])
}

func TestValidate_CustomTags(t *testing.T) {
	type person struct {
		LastName   string `validate:"cyrillic_name"`
		MiddleName string `validate:"cyrillic_name_optional"`
		PostalCode string `validate:"postal_code"`
		House      string `validate:"house"`
		City       string `validate:"cyrillic_text"`
	}

	assert.NoError(t, Validate(person{LastName: "Петров", PostalCode: "101000", House: "7", City: "Нижний Новгород"}))
	assert.Error(t, Validate(person{LastName: "Petrov", PostalCode: "101000", House: "7", City: "Москва"}))
	assert.Error(t, Validate(person{LastName: "Петров", MiddleName: "X", PostalCode: "101000", House: "7", City: "Москва"}))
	assert.Error(t, Validate(person{LastName: "Петров", PostalCode: "10100", House: "7", City: "Москва"}))
}

func TestValidate_ReturnsAppError(t *testing.T) {
	type request struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
	}

	err := Validate(request{Email: "broken"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrValidationFailed)

	appErr, ok := errors.As(err)
	require.True(t, ok)
	fields, ok := appErr.Details["fields"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "required", fields["request.Name"])
	assert.Equal(t, "email", fields["request.Email"])
	assert.Contains(t, appErr.Message, "Name")
}
