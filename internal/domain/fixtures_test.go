package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var fixedToday = time.Date(2025, time.May, 1, 10, 0, 0, 0, time.UTC)

// freezeTime фиксирует текущую дату для проверок возраста
func freezeTime(t *testing.T) {
	t.Helper()
	prev := nowFunc
	nowFunc = func() time.Time { return fixedToday }
	t.Cleanup(func() { nowFunc = prev })
}

func validAddress() Address {
	return Address{
		Region:     "Московская",
		City:       "Москва",
		Street:     "Тверская",
		House:      "1",
		PostalCode: "123456",
	}
}

func validClientInput() ClientInput {
	return ClientInput{
		LastName:            "Иванов",
		FirstName:           "Иван",
		MiddleName:          "Иванович",
		Phone:               "+7 999 123-45-67",
		Email:               "ivan@mail.ru",
		DateOfBirth:         time.Date(1990, time.May, 15, 0, 0, 0, 0, time.UTC),
		Comments:            "VIP",
		RegistrationAddress: validAddress(),
		ActualAddress:       validAddress(),
	}
}

func tourInput(domestic, visa bool) TourInput {
	return TourInput{
		Name:         "Отдых",
		Country:      "Россия",
		TourType:     "Пляжный",
		StartDate:    time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		DurationDays: 7,
		BasePrice:    10000,
		Domestic:     domestic,
		VisaRequired: visa,
	}
}

func newTestBooking(t *testing.T, in TourInput) *Booking {
	t.Helper()
	client, err := NewClient(1, validClientInput())
	require.NoError(t, err)
	tour, err := NewTour(1, in)
	require.NoError(t, err)
	b, err := NewBooking(1, client, tour, nil)
	require.NoError(t, err)
	return b
}

func documentTypes(docs []*Document) []DocumentType {
	out := make([]DocumentType, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Type)
	}
	return out
}
