package domain

import "strings"

// Animal - животное, путешествующее с туристами
type Animal struct {
	Type      string
	Weight    float64
	Transport string
}

func NewAnimal(kind string, weight float64, transport string) (*Animal, error) {
	if err := ValidateAnimal(kind, weight, transport); err != nil {
		return nil, err
	}
	return &Animal{Type: kind, Weight: weight, Transport: transport}, nil
}

// ValidateAnimal - минимальная проверка: тип и способ перевозки заданы, вес > 0
func ValidateAnimal(kind string, weight float64, transport string) error {
	if strings.TrimSpace(kind) == "" {
		return invalidArgument("animal type is not specified")
	}
	if weight <= 0 {
		return invalidArgument("animal weight must be greater than 0")
	}
	if strings.TrimSpace(transport) == "" {
		return invalidArgument("animal transport method is not specified")
	}
	return nil
}
