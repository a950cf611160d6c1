package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DocumentType - вид документа. Числовые значения входят в формат снапшота.
type DocumentType int

const (
	DocPassport DocumentType = iota
	DocInternationalPassport
	DocBirthCertificate
	DocOMSPolicy
	DocSNILS
	DocINN
	DocVisa
	DocInsurancePolicy
	DocBenefitDocument
	DocVoucher
	DocTickets
	DocConsentForChildDeparture
	DocVeterinaryPassport
)

var documentTypeNames = map[DocumentType]string{
	DocPassport:                 "Internal Passport",
	DocInternationalPassport:    "International Passport",
	DocBirthCertificate:         "Birth Certificate",
	DocOMSPolicy:                "OMS Policy",
	DocSNILS:                    "SNILS",
	DocINN:                      "INN",
	DocVisa:                     "Visa",
	DocInsurancePolicy:          "Insurance Policy",
	DocBenefitDocument:          "Benefit Document",
	DocVoucher:                  "Voucher",
	DocTickets:                  "Tickets",
	DocConsentForChildDeparture: "Consent For Child Departure",
	DocVeterinaryPassport:       "Veterinary Passport",
}

func (t DocumentType) Valid() bool {
	return t >= DocPassport && t <= DocVeterinaryPassport
}

func (t DocumentType) String() string {
	if name, ok := documentTypeNames[t]; ok {
		return name
	}
	return "?"
}

// AllDocumentTypes - все виды документов в порядке кодов
func AllDocumentTypes() []DocumentType {
	out := make([]DocumentType, 0, len(documentTypeNames))
	for t := DocPassport; t <= DocVeterinaryPassport; t++ {
		out = append(out, t)
	}
	return out
}

type DocumentStatus int

const (
	StatusAbsent DocumentStatus = iota
	StatusAvailable
	StatusVerified
)

func (s DocumentStatus) Valid() bool {
	return s >= StatusAbsent && s <= StatusVerified
}

func (s DocumentStatus) String() string {
	switch s {
	case StatusAbsent:
		return "Absent"
	case StatusAvailable:
		return "Available"
	case StatusVerified:
		return "Verified"
	}
	return "?"
}

// Document - документ с типом, статусом и произвольными полями (строки, числа, флаги)
type Document struct {
	Type   DocumentType
	Status DocumentStatus
	Fields map[string]interface{}
}

func NewDocument(t DocumentType) *Document {
	return &Document{Type: t, Status: StatusAbsent, Fields: map[string]interface{}{}}
}

func (d *Document) DisplayName() string {
	return d.Type.String()
}

// Field - значение поля в текстовом виде, обрезанное по краям
func (d *Document) Field(key string) string {
	return strings.TrimSpace(fieldText(d.Fields[key]))
}

func (d *Document) SetField(key string, value interface{}) {
	if d.Fields == nil {
		d.Fields = map[string]interface{}{}
	}
	d.Fields[key] = value
}

func (d *Document) Validate() error {
	return ValidateDocument(d)
}

func copyFields(src map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func fieldText(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case json.Number:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// ParseDocumentStatus - статус по имени (Absent, Available, Verified)
func ParseDocumentStatus(name string) (DocumentStatus, error) {
	for s := StatusAbsent; s <= StatusVerified; s++ {
		if strings.EqualFold(s.String(), name) {
			return s, nil
		}
	}
	return 0, invalidArgument("unknown document status %q", name)
}
