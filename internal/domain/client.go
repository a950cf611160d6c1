package domain

import (
	"strings"
	"time"

	"github.com/travel-agency/internal/pkg/errors"
	"github.com/travel-agency/internal/pkg/validator"
)

// Client - клиент агентства
type Client struct {
	ID                  int64
	LastName            string
	FirstName           string
	MiddleName          string
	Phone               string
	Email               string
	DateOfBirth         time.Time
	Comments            string
	RegistrationAddress Address
	ActualAddress       Address
}

// ClientInput - данные для создания и редактирования клиента
type ClientInput struct {
	LastName            string
	FirstName           string
	MiddleName          string
	Phone               string
	Email               string
	DateOfBirth         time.Time
	Comments            string
	RegistrationAddress Address
	ActualAddress       Address
}

// NewClient - конструктор; фамилия и имя обязательны
func NewClient(id int64, in ClientInput) (*Client, error) {
	if strings.TrimSpace(in.LastName) == "" || strings.TrimSpace(in.FirstName) == "" {
		return nil, invalidArgument("client last name and first name must not be empty")
	}
	c := &Client{ID: id}
	c.apply(in)
	return c, nil
}

func (c *Client) apply(in ClientInput) {
	c.LastName = in.LastName
	c.FirstName = in.FirstName
	c.MiddleName = in.MiddleName
	c.Phone = in.Phone
	c.Email = in.Email
	c.DateOfBirth = in.DateOfBirth
	c.Comments = in.Comments
	c.RegistrationAddress = in.RegistrationAddress
	c.ActualAddress = in.ActualAddress
}

func (c *Client) FullName() string {
	return joinName(c.LastName, c.FirstName, c.MiddleName)
}

// ValidateClientInput - полная проверка анкеты клиента перед сохранением
func ValidateClientInput(in ClientInput) error {
	if err := validator.ValidateNamePart(in.LastName); err != nil {
		return prefixed("Last name", err)
	}
	if err := validator.ValidateNamePart(in.FirstName); err != nil {
		return prefixed("First name", err)
	}
	if err := validator.ValidateOptionalNamePart(in.MiddleName); err != nil {
		return prefixed("Middle name", err)
	}
	if err := in.RegistrationAddress.Validate(); err != nil {
		return prefixed("Registration address", err)
	}
	if err := in.ActualAddress.Validate(); err != nil {
		return prefixed("Actual address", err)
	}
	if strings.TrimSpace(in.Phone) == "" {
		return errors.ErrValidationFailed.WithMessage("Phone is required").
			WithDetails(map[string]interface{}{"field": "phone"})
	}
	if strings.TrimSpace(in.Email) == "" {
		return errors.ErrValidationFailed.WithMessage("Email is required").
			WithDetails(map[string]interface{}{"field": "email"})
	}
	return nil
}

func prefixed(prefix string, err error) error {
	appErr, ok := errors.As(err)
	if !ok {
		return err
	}
	return appErr.WithMessage("%s: %s", prefix, appErr.Message)
}
