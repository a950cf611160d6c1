package dto

// AddressRequest - адрес клиента
type AddressRequest struct {
	Region     string `json:"region"`
	City       string `json:"city"`
	Street     string `json:"street"`
	House      string `json:"house"`
	Building   string `json:"building,omitempty"`
	Apartment  string `json:"apartment,omitempty"`
	PostalCode string `json:"postal_code"`
	Additional string `json:"additional,omitempty"`
}

// ClientRequest - создание и редактирование клиента.
// Адреса проверяются доменными правилами, чтобы сообщение называло поле.
type ClientRequest struct {
	LastName            string         `json:"last_name" validate:"required,cyrillic_name"`
	FirstName           string         `json:"first_name" validate:"required,cyrillic_name"`
	MiddleName          string         `json:"middle_name" validate:"cyrillic_name_optional"`
	Phone               string         `json:"phone" validate:"required"`
	Email               string         `json:"email" validate:"required"`
	DateOfBirth         string         `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Comments            string         `json:"comments"`
	RegistrationAddress AddressRequest `json:"registration_address"`
	ActualAddress       AddressRequest `json:"actual_address"`
	SameAddress         bool           `json:"actual_same_as_registration"`
}

// TourRequest - создание и редактирование тура
type TourRequest struct {
	Name         string   `json:"name" validate:"required"`
	Country      string   `json:"country"`
	TourType     string   `json:"tour_type"`
	StartDate    string   `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	DurationDays int      `json:"duration_days" validate:"required,min=1"`
	BasePrice    float64  `json:"base_price" validate:"min=0"`
	IsDomestic   bool     `json:"is_domestic"`
	VisaRequired bool     `json:"visa_required"`
	TravelModes  []string `json:"travel_modes" validate:"omitempty,dive,oneof=Plane Train"`
}

// CreateBookingRequest - новая заявка клиента на тур
type CreateBookingRequest struct {
	ClientID int64 `json:"client_id" validate:"required,min=1"`
	TourID   int64 `json:"tour_id" validate:"required,min=1"`
}

// TravelerRequest - добавление туриста. Для ребёнка обязательна дата рождения.
type TravelerRequest struct {
	IsChild     bool   `json:"is_child"`
	LastName    string `json:"last_name" validate:"required,cyrillic_name"`
	FirstName   string `json:"first_name" validate:"required,cyrillic_name"`
	MiddleName  string `json:"middle_name" validate:"cyrillic_name_optional"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	HasBenefit  bool   `json:"has_benefit"`
}

// UpdateTravelerRequest - частичное изменение туриста, пустые поля не меняются
type UpdateTravelerRequest struct {
	LastName    string `json:"last_name" validate:"omitempty,cyrillic_name"`
	FirstName   string `json:"first_name" validate:"omitempty,cyrillic_name"`
	MiddleName  string `json:"middle_name" validate:"cyrillic_name_optional"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	HasBenefit  *bool  `json:"has_benefit,omitempty"`
}

type AnimalRequest struct {
	Type      string  `json:"type" validate:"required"`
	Weight    float64 `json:"weight" validate:"required,gt=0"`
	Transport string  `json:"transport" validate:"required"`
}

// TravelRequest - способ проезда и класс; пустое значение не меняет текущее
type TravelRequest struct {
	TravelMode  string `json:"travel_mode"`
	TravelClass string `json:"travel_class"`
}

type BookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Draft Completed Paid Canceled"`
}

// DocumentFieldsRequest - значения полей документа по ключам каталога
type DocumentFieldsRequest struct {
	Fields map[string]string `json:"fields" validate:"required,min=1"`
}

type DocumentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Absent Available Verified"`
}

type AddDocumentRequest struct {
	Type int `json:"type" validate:"min=0,max=12"`
}
