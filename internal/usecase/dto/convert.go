package dto

import (
	"fmt"
	"time"

	"github.com/travel-agency/internal/domain"
)

const DateLayout = "2006-01-02"

// ParseDate - пустая строка означает "не задано"
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(DateLayout, s)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// FormatCost - две цифры после точки, как в интерфейсе оператора
func FormatCost(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func (a AddressRequest) ToDomain() domain.Address {
	return domain.Address{
		Region:     a.Region,
		City:       a.City,
		Street:     a.Street,
		House:      a.House,
		Building:   a.Building,
		Apartment:  a.Apartment,
		PostalCode: a.PostalCode,
		Additional: a.Additional,
	}
}

func ConvertAddress(a domain.Address) AddressRequest {
	return AddressRequest{
		Region:     a.Region,
		City:       a.City,
		Street:     a.Street,
		House:      a.House,
		Building:   a.Building,
		Apartment:  a.Apartment,
		PostalCode: a.PostalCode,
		Additional: a.Additional,
	}
}

// ToInput - данные формы клиента в доменном виде
func (r ClientRequest) ToInput() (domain.ClientInput, error) {
	dob, err := ParseDate(r.DateOfBirth)
	if err != nil {
		return domain.ClientInput{}, err
	}
	reg := r.RegistrationAddress.ToDomain()
	actual := r.ActualAddress.ToDomain()
	if r.SameAddress || actual.IsEmpty() {
		actual = reg
	}
	return domain.ClientInput{
		LastName:            r.LastName,
		FirstName:           r.FirstName,
		MiddleName:          r.MiddleName,
		Phone:               r.Phone,
		Email:               r.Email,
		DateOfBirth:         dob,
		Comments:            r.Comments,
		RegistrationAddress: reg,
		ActualAddress:       actual,
	}, nil
}

func (r TourRequest) ToInput() (domain.TourInput, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return domain.TourInput{}, err
	}
	return domain.TourInput{
		Name:         r.Name,
		Country:      r.Country,
		TourType:     r.TourType,
		StartDate:    start,
		DurationDays: r.DurationDays,
		BasePrice:    r.BasePrice,
		Domestic:     r.IsDomestic,
		VisaRequired: r.VisaRequired,
		TravelModes:  r.TravelModes,
	}, nil
}

func ConvertClient(c *domain.Client) ClientResponse {
	return ClientResponse{
		ID:                  c.ID,
		LastName:            c.LastName,
		FirstName:           c.FirstName,
		MiddleName:          c.MiddleName,
		FullName:            c.FullName(),
		Phone:               c.Phone,
		Email:               c.Email,
		DateOfBirth:         FormatDate(c.DateOfBirth),
		Comments:            c.Comments,
		RegistrationAddress: ConvertAddress(c.RegistrationAddress),
		ActualAddress:       ConvertAddress(c.ActualAddress),
	}
}

func ConvertTour(t *domain.Tour) TourResponse {
	resp := TourResponse{
		ID:           t.ID,
		Name:         t.Name,
		Country:      t.Country,
		TourType:     t.TourType,
		StartDate:    FormatDate(t.StartDate),
		DurationDays: t.DurationDays,
		BasePrice:    t.BasePrice,
		IsDomestic:   t.Domestic,
		VisaRequired: t.VisaRequired,
		TravelModes:  append([]string{}, t.TravelModes...),
	}
	if !t.StartDate.IsZero() {
		resp.EndDate = FormatDate(t.EndDate())
	}
	return resp
}

// ConvertBookingSummary - client может быть nil, если клиент не найден
func ConvertBookingSummary(b *domain.Booking, client *domain.Client) BookingSummary {
	s := BookingSummary{
		ID:        b.ID(),
		ClientID:  b.ClientID(),
		TourID:    b.TourID(),
		Status:    b.Status().String(),
		Travelers: len(b.Travelers()),
		TotalCost: b.TotalCost(),
	}
	if client != nil {
		s.ClientName = client.FullName()
	}
	if tour := b.Tour(); tour != nil {
		s.TourName = tour.Name
	}
	return s
}

func ConvertBooking(b *domain.Booking, client *domain.Client, today time.Time) BookingResponse {
	resp := BookingResponse{
		BookingSummary:     ConvertBookingSummary(b, client),
		TravelMode:         b.TravelMode(),
		TravelClass:        b.TravelClass(),
		TravelClassOptions: domain.TravelClassOptions(b.TravelMode()),
		TravelerList:       make([]TravelerResponse, 0, len(b.Travelers())),
		Animals:            make([]AnimalResponse, 0, len(b.Animals())),
		Documents:          ConvertDocuments(b.Documents(), domain.RequiredBookingDocuments(b)),
		DocumentsComplete:  b.CheckDocumentsComplete(),
	}
	if resp.TravelClassOptions == nil {
		resp.TravelClassOptions = []string{}
	}

	for i, t := range b.Travelers() {
		tr := TravelerResponse{
			Index:       i,
			Kind:        t.Kind.String(),
			LastName:    t.LastName,
			FirstName:   t.FirstName,
			MiddleName:  t.MiddleName,
			FullName:    t.FullName(),
			DisplayName: t.DisplayName(today),
			HasBenefit:  t.HasBenefit,
			Documents:   ConvertDocuments(t.Documents, domain.RequiredPersonalDocuments(b, t)),
		}
		if t.IsChild() {
			tr.DateOfBirth = FormatDate(t.DateOfBirth)
			tr.Age = t.Age(today)
		}
		resp.TravelerList = append(resp.TravelerList, tr)
	}

	for i, a := range b.Animals() {
		resp.Animals = append(resp.Animals, AnimalResponse{
			Index:     i,
			Type:      a.Type,
			Weight:    a.Weight,
			Transport: a.Transport,
		})
	}
	return resp
}

func ConvertDocuments(docs []*domain.Document, required []domain.DocumentType) []DocumentResponse {
	requiredSet := make(map[domain.DocumentType]bool, len(required))
	for _, t := range required {
		requiredSet[t] = true
	}

	out := make([]DocumentResponse, 0, len(docs))
	for i, d := range docs {
		fields := make(map[string]interface{}, len(d.Fields))
		for k, v := range d.Fields {
			fields[k] = v
		}
		out = append(out, DocumentResponse{
			Index:         i,
			TypeCode:      int(d.Type),
			Type:          d.DisplayName(),
			Status:        d.Status.String(),
			Required:      requiredSet[d.Type],
			MinimumFilled: domain.IsMinimumFilled(d),
			Fields:        fields,
		})
	}
	return out
}

func ConvertDocumentType(t domain.DocumentType) DocumentTypeResponse {
	defs := domain.FieldsForType(t)
	resp := DocumentTypeResponse{
		Code:   int(t),
		Name:   t.String(),
		Fields: make([]FieldDefinitionResponse, 0, len(defs)),
	}
	for _, def := range defs {
		f := FieldDefinitionResponse{
			Key:         def.Key,
			Label:       def.Label,
			InputMask:   def.InputMask,
			Required:    def.Required,
			Placeholder: def.Placeholder,
		}
		if def.Pattern != nil {
			f.Pattern = def.Pattern.String()
		}
		resp.Fields = append(resp.Fields, f)
	}
	return resp
}
