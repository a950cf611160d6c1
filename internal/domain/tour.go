package domain

import (
	"strings"
	"time"
)

const (
	ModePlane = "Plane"
	ModeTrain = "Train"
)

// DefaultTravelModes - способы проезда, если у тура они не заданы
func DefaultTravelModes() []string {
	return []string{ModePlane, ModeTrain}
}

// Tour - тур из каталога агентства
type Tour struct {
	ID           int64
	Name         string
	Country      string
	TourType     string
	StartDate    time.Time
	DurationDays int
	BasePrice    float64
	Domestic     bool
	VisaRequired bool
	TravelModes  []string
}

// TourInput - данные для создания и редактирования тура
type TourInput struct {
	Name         string
	Country      string
	TourType     string
	StartDate    time.Time
	DurationDays int
	BasePrice    float64
	Domestic     bool
	VisaRequired bool
	TravelModes  []string
}

func NewTour(id int64, in TourInput) (*Tour, error) {
	if err := validateTourInput(in); err != nil {
		return nil, err
	}
	t := &Tour{ID: id}
	t.apply(in)
	return t, nil
}

func validateTourInput(in TourInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return invalidArgument("tour name must not be empty")
	}
	if in.DurationDays <= 0 {
		return invalidArgument("duration must be greater than 0")
	}
	if in.BasePrice < 0 {
		return invalidArgument("base price must not be negative")
	}
	return nil
}

func (t *Tour) apply(in TourInput) {
	t.Name = in.Name
	t.Country = in.Country
	t.TourType = in.TourType
	t.StartDate = in.StartDate
	t.DurationDays = in.DurationDays
	t.BasePrice = in.BasePrice
	t.Domestic = in.Domestic
	t.VisaRequired = in.VisaRequired
	if len(in.TravelModes) == 0 {
		t.TravelModes = DefaultTravelModes()
	} else {
		t.TravelModes = append([]string(nil), in.TravelModes...)
	}
}

func (t *Tour) EndDate() time.Time {
	return t.StartDate.AddDate(0, 0, t.DurationDays)
}

// IsActiveCategory - активный отдых (требует страховку даже внутри страны)
func (t *Tour) IsActiveCategory() bool {
	kind := strings.ToLower(t.TourType)
	return strings.Contains(kind, "active") || strings.Contains(kind, "актив")
}

func (t *Tour) AllowsMode(mode string) bool {
	for _, m := range t.TravelModes {
		if m == mode {
			return true
		}
	}
	return false
}
