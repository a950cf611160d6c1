package domain

import (
	"fmt"
	"strings"
	"time"
)

// MaxChildAge - максимальный возраст ребёнка в заявке
const MaxChildAge = 18

type TravelerKind int

const (
	TravelerAdult TravelerKind = iota
	TravelerChild
)

func (k TravelerKind) String() string {
	if k == TravelerChild {
		return "child"
	}
	return "adult"
}

// Traveler - турист в заявке. Kind определяет вариант:
// DateOfBirth используется только для детей.
type Traveler struct {
	Kind        TravelerKind
	LastName    string
	FirstName   string
	MiddleName  string
	HasBenefit  bool
	DateOfBirth time.Time
	Documents   []*Document
}

func NewAdult(lastName, firstName, middleName string) (*Traveler, error) {
	if strings.TrimSpace(lastName) == "" || strings.TrimSpace(firstName) == "" {
		return nil, invalidArgument("traveler last name and first name must not be empty")
	}
	return &Traveler{
		Kind:       TravelerAdult,
		LastName:   lastName,
		FirstName:  firstName,
		MiddleName: middleName,
	}, nil
}

// NewChild - ребёнок; дата рождения проверяется относительно today
func NewChild(lastName, firstName, middleName string, dateOfBirth, today time.Time) (*Traveler, error) {
	if strings.TrimSpace(lastName) == "" || strings.TrimSpace(firstName) == "" {
		return nil, invalidArgument("child last name and first name must not be empty")
	}
	if err := checkChildBirthDate(dateOfBirth, today); err != nil {
		return nil, err
	}
	return &Traveler{
		Kind:        TravelerChild,
		LastName:    lastName,
		FirstName:   firstName,
		MiddleName:  middleName,
		DateOfBirth: dateOnly(dateOfBirth),
	}, nil
}

func (t *Traveler) IsChild() bool {
	return t.Kind == TravelerChild
}

func (t *Traveler) FullName() string {
	return joinName(t.LastName, t.FirstName, t.MiddleName)
}

// Age - полных лет на дату asOf. Для взрослых и при неизвестной дате рождения 0.
func (t *Traveler) Age(asOf time.Time) int {
	if !t.IsChild() || t.DateOfBirth.IsZero() || asOf.IsZero() {
		return 0
	}
	return fullYears(t.DateOfBirth, asOf)
}

// SetDateOfBirth - смена даты рождения ребёнка с той же проверкой, что и в конструкторе
func (t *Traveler) SetDateOfBirth(dateOfBirth, today time.Time) error {
	if !t.IsChild() {
		return invalidArgument("date of birth is tracked for children only")
	}
	if err := checkChildBirthDate(dateOfBirth, today); err != nil {
		return err
	}
	t.DateOfBirth = dateOnly(dateOfBirth)
	return nil
}

func (t *Traveler) DisplayName(today time.Time) string {
	if t.IsChild() {
		return fmt.Sprintf("%s (child, %d y.o.)", t.FullName(), t.Age(today))
	}
	return t.FullName() + " (adult)"
}

func checkChildBirthDate(dateOfBirth, today time.Time) error {
	if dateOfBirth.IsZero() || dateOnly(dateOfBirth).After(dateOnly(today)) {
		return invalidArgument("invalid date of birth")
	}
	if fullYears(dateOfBirth, today) > MaxChildAge {
		return invalidArgument("child age must not exceed %d years", MaxChildAge)
	}
	return nil
}

func fullYears(from, asOf time.Time) int {
	age := asOf.Year() - from.Year()
	if asOf.Month() < from.Month() || (asOf.Month() == from.Month() && asOf.Day() < from.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
