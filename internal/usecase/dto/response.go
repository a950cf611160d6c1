package dto

// ClientResponse - карточка клиента
type ClientResponse struct {
	ID                  int64          `json:"id"`
	LastName            string         `json:"last_name"`
	FirstName           string         `json:"first_name"`
	MiddleName          string         `json:"middle_name,omitempty"`
	FullName            string         `json:"full_name"`
	Phone               string         `json:"phone"`
	Email               string         `json:"email"`
	DateOfBirth         string         `json:"date_of_birth,omitempty"`
	Comments            string         `json:"comments,omitempty"`
	RegistrationAddress AddressRequest `json:"registration_address"`
	ActualAddress       AddressRequest `json:"actual_address"`
}

type TourResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Country      string   `json:"country"`
	TourType     string   `json:"tour_type"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	DurationDays int      `json:"duration_days"`
	BasePrice    float64  `json:"base_price"`
	IsDomestic   bool     `json:"is_domestic"`
	VisaRequired bool     `json:"visa_required"`
	TravelModes  []string `json:"travel_modes"`
}

// BookingSummary - строка списка заявок
type BookingSummary struct {
	ID         int64   `json:"id"`
	ClientID   int64   `json:"client_id"`
	ClientName string  `json:"client_name"`
	TourID     int64   `json:"tour_id"`
	TourName   string  `json:"tour_name"`
	Status     string  `json:"status"`
	Travelers  int     `json:"travelers"`
	TotalCost  float64 `json:"total_cost"`
}

// BookingResponse - заявка целиком
type BookingResponse struct {
	BookingSummary
	TravelMode         string             `json:"travel_mode"`
	TravelClass        string             `json:"travel_class"`
	TravelClassOptions []string           `json:"travel_class_options"`
	TravelerList       []TravelerResponse `json:"traveler_list"`
	Animals            []AnimalResponse   `json:"animals"`
	Documents          []DocumentResponse `json:"documents"`
	DocumentsComplete  bool               `json:"documents_complete"`
}

type TravelerResponse struct {
	Index       int                `json:"index"`
	Kind        string             `json:"kind"`
	LastName    string             `json:"last_name"`
	FirstName   string             `json:"first_name"`
	MiddleName  string             `json:"middle_name,omitempty"`
	FullName    string             `json:"full_name"`
	DisplayName string             `json:"display_name"`
	HasBenefit  bool               `json:"has_benefit"`
	DateOfBirth string             `json:"date_of_birth,omitempty"`
	Age         int                `json:"age,omitempty"`
	Documents   []DocumentResponse `json:"documents"`
}

type AnimalResponse struct {
	Index     int     `json:"index"`
	Type      string  `json:"type"`
	Weight    float64 `json:"weight"`
	Transport string  `json:"transport"`
}

// DocumentResponse - документ с полями; minimum_filled показывает заполненность обязательных полей
type DocumentResponse struct {
	Index         int                    `json:"index"`
	TypeCode      int                    `json:"type_code"`
	Type          string                 `json:"type"`
	Status        string                 `json:"status"`
	Required      bool                   `json:"required"`
	MinimumFilled bool                   `json:"minimum_filled"`
	Fields        map[string]interface{} `json:"fields"`
}

// WarningsResponse - предупреждения по документам и данным туристов
type WarningsResponse struct {
	DocumentWarnings   []string `json:"document_warnings"`
	ValidationWarnings []string `json:"validation_warnings"`
	Complete           bool     `json:"complete"`
}

// CostSummaryResponse - стоимость заявки; formatted округлён до копеек только для показа
type CostSummaryResponse struct {
	Adults    int     `json:"adults"`
	Children  int     `json:"children"`
	Animals   int     `json:"animals"`
	BasePrice float64 `json:"base_price"`
	Total     float64 `json:"total"`
	Formatted string  `json:"formatted"`
}

type FieldDefinitionResponse struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Pattern     string `json:"pattern,omitempty"`
	InputMask   string `json:"input_mask,omitempty"`
	Required    bool   `json:"required"`
	Placeholder string `json:"placeholder,omitempty"`
}

// DocumentTypeResponse - вид документа и описание его формы
type DocumentTypeResponse struct {
	Code   int                       `json:"code"`
	Name   string                    `json:"name"`
	Fields []FieldDefinitionResponse `json:"fields"`
}

// SnapshotResponse - результат сохранения или загрузки снапшота
type SnapshotResponse struct {
	Revision        uint64  `json:"revision"`
	Clients         int     `json:"clients"`
	Tours           int     `json:"tours"`
	Bookings        int     `json:"bookings"`
	Bytes           int     `json:"bytes"`
	SkippedBookings []int64 `json:"skipped_bookings,omitempty"`
}
