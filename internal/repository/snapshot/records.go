package snapshot

import "github.com/travel-agency/internal/domain"

// Записи файла снапшота. Имена полей - часть формата, менять нельзя.

type fileRecord struct {
	Clients  []clientRecord  `json:"clients"`
	Tours    []tourRecord    `json:"tours"`
	Requests []requestRecord `json:"requests"`
}

type clientRecord struct {
	ID                  int64          `json:"id"`
	LastName            string         `json:"lastName"`
	FirstName           string         `json:"firstName"`
	MiddleName          string         `json:"middleName"`
	FullName            string         `json:"fullName"`
	Phone               string         `json:"phone"`
	Email               string         `json:"email"`
	DateOfBirth         string         `json:"dateOfBirth"`
	Comments            string         `json:"comments"`
	RegistrationAddress domain.Address `json:"registrationAddress"`
	ActualAddress       domain.Address `json:"actualAddress"`
}

type tourRecord struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Country      string   `json:"country"`
	TourType     string   `json:"tourType"`
	StartDate    string   `json:"startDate"`
	DurationDays int      `json:"durationDays"`
	BasePrice    float64  `json:"basePrice"`
	IsDomestic   bool     `json:"isDomestic"`
	VisaRequired bool     `json:"visaRequired"`
	TravelModes  []string `json:"travelModes"`
}

type requestRecord struct {
	ID          int64            `json:"id"`
	ClientID    int64            `json:"clientId"`
	TourID      int64            `json:"tourId"`
	Status      int              `json:"status"`
	TravelMode  *string          `json:"travelMode,omitempty"`
	TravelClass *string          `json:"travelClass,omitempty"`
	Tourists    []touristRecord  `json:"tourists"`
	Animals     []animalRecord   `json:"animals"`
	Documents   []documentRecord `json:"documents"`
}

type touristRecord struct {
	IsChild     bool             `json:"isChild"`
	LastName    string           `json:"lastName"`
	FirstName   string           `json:"firstName"`
	MiddleName  string           `json:"middleName"`
	FullName    string           `json:"fullName"`
	HasBenefit  bool             `json:"hasBenefit"`
	DateOfBirth string           `json:"dateOfBirth,omitempty"`
	Documents   []documentRecord `json:"documents"`
}

type animalRecord struct {
	Type      string  `json:"type"`
	Weight    float64 `json:"weight"`
	Transport string  `json:"transport"`
}

type documentRecord struct {
	Type   int                    `json:"type"`
	Status int                    `json:"status"`
	Fields map[string]interface{} `json:"fields"`
}
