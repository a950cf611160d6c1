package domain

import (
	"regexp"

	"github.com/travel-agency/internal/pkg/errors"
)

// FieldDefinition - описание поля документа для формы и валидации
type FieldDefinition struct {
	Key         string
	Label       string
	Pattern     *regexp.Regexp
	InputMask   string
	Required    bool
	Placeholder string
}

func field(key, label, pattern, mask string, required bool, placeholder string) FieldDefinition {
	def := FieldDefinition{Key: key, Label: label, InputMask: mask, Required: required, Placeholder: placeholder}
	if pattern != "" {
		def.Pattern = regexp.MustCompile(pattern)
	}
	return def
}

var documentCatalog = map[DocumentType][]FieldDefinition{
	DocPassport: {
		field("series", "Series", `^\d{4}$`, "0000", true, "0000"),
		field("number", "Number", `^\d{6}$`, "000000", true, "000000"),
		field("issueDate", "Issue date", "", "", false, ""),
		field("issuedBy", "Issued by", "", "", false, ""),
		field("issuerCode", "Issuer code", `^\d{3}-\d{3}$`, "000-000", false, "000-000"),
	},
	DocInternationalPassport: {
		field("number", "Number", `^\d{9}$`, "000000000", true, "000000000"),
	},
	DocBirthCertificate: {
		field("series", "Series", `^[IVX]{1,4}-?[А-ЯЁ]{2}$`, "", true, "IV-АР"),
		field("number", "Number", `^\d{6}$`, "000000", true, "123456"),
	},
	DocOMSPolicy: {
		field("number", "Policy number", `^\d{16}$`, "0000 0000 0000 0000", true, "0000 0000 0000 0000"),
	},
	DocSNILS: {
		field("snils", "SNILS", `^\d{3}-\d{3}-\d{3}\s\d{2}$`, "000-000-000 00", true, "000-000-000 00"),
	},
	DocINN: {
		field("inn", "INN", `^\d{12}$`, "000000000000", false, "000000000000"),
	},
	DocVisa: {
		field("visaNumber", "Visa number", `^[A-Z0-9]{6,12}$`, "", true, "A1B2C3"),
		field("validFrom", "Valid from", "", "", false, ""),
		field("validTo", "Valid to", "", "", false, ""),
	},
	DocInsurancePolicy: {
		field("policyNumber", "Policy number", `^[A-Z0-9-]{6,20}$`, "", true, "ABC-123"),
		field("company", "Company", "", "", false, ""),
		field("validFrom", "Valid from", "", "", false, ""),
		field("validTo", "Valid to", "", "", false, ""),
	},
	DocBenefitDocument: {
		field("docKind", "Benefit kind", "", "", true, "Pension/Disability/Student"),
		field("number", "Number", `^[A-ZА-Я0-9-]{1,20}$`, "", true, ""),
	},
	DocVoucher: {
		field("voucherNumber", "Voucher number", `^[A-Z0-9-]{6,20}$`, "", true, ""),
	},
	DocTickets: {
		field("ticketNumber", "Ticket number", `^[A-Z0-9-]{6,20}$`, "", true, ""),
		field("transportType", "Transport type", "", "", true, "Plane/Train/Bus"),
	},
	DocConsentForChildDeparture: {
		field("docNumber", "Document number", `^[A-ZА-Я0-9-]{1,20}$`, "", true, ""),
		field("docDate", "Document date", "", "", false, ""),
	},
	DocVeterinaryPassport: {
		field("vetPassportNumber", "Vet passport number", `^[A-ZА-Я0-9-]{1,20}$`, "", true, ""),
		field("vaccinationDate", "Vaccination date", "", "", false, ""),
	},
}

// FieldsForType - упорядоченный список полей документа. Порядок важен для формы.
func FieldsForType(t DocumentType) []FieldDefinition {
	defs := documentCatalog[t]
	out := make([]FieldDefinition, len(defs))
	copy(out, defs)
	return out
}

// IsMinimumFilled - все обязательные поля заполнены и соответствуют шаблону
func IsMinimumFilled(d *Document) bool {
	for _, def := range documentCatalog[d.Type] {
		if !def.Required {
			continue
		}
		value := d.Field(def.Key)
		if value == "" {
			return false
		}
		if def.Pattern != nil && !def.Pattern.MatchString(value) {
			return false
		}
	}
	return true
}

// ValidateDocument - строгая проверка: любое непустое поле с шаблоном должно ему
// соответствовать, обязательные поля не пустые. Возвращает первую ошибку.
func ValidateDocument(d *Document) error {
	for _, def := range documentCatalog[d.Type] {
		value := d.Field(def.Key)
		if def.Required && value == "" {
			return documentFieldError(def, "Field '%s' is required")
		}
		if value != "" && def.Pattern != nil && !def.Pattern.MatchString(value) {
			return documentFieldError(def, "Field '%s' has invalid format")
		}
	}
	return nil
}

func documentFieldError(def FieldDefinition, format string) error {
	return errors.ErrValidationFailed.WithMessage(format, def.Label).
		WithDetails(map[string]interface{}{"field": def.Key})
}
