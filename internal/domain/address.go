package domain

import (
	"strings"

	"github.com/travel-agency/internal/pkg/validator"
)

// Address - почтовый адрес клиента (регистрации или фактический)
type Address struct {
	Region     string `json:"region"`
	City       string `json:"city"`
	Street     string `json:"street"`
	House      string `json:"house"`
	Building   string `json:"building"`
	Apartment  string `json:"apartment"`
	PostalCode string `json:"postalCode"`
	Additional string `json:"additional"`
}

// IsEmpty - все поля пустые после обрезки пробелов
func (a Address) IsEmpty() bool {
	for _, v := range []string{a.Region, a.City, a.Street, a.House, a.Building, a.Apartment, a.PostalCode, a.Additional} {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Validate - проверка адреса по правилам валидатора
func (a Address) Validate() error {
	return validator.ValidateAddress(validator.AddressFields{
		Region:     a.Region,
		City:       a.City,
		Street:     a.Street,
		House:      a.House,
		Building:   a.Building,
		Apartment:  a.Apartment,
		PostalCode: a.PostalCode,
	})
}
