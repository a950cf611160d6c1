package domain

import "fmt"

// RequiredPersonalDocuments - обязательные документы туриста для текущего состояния заявки.
// Порядок имеет значение только для отображения.
func RequiredPersonalDocuments(b *Booking, t *Traveler) []DocumentType {
	tour := b.Tour()
	if tour == nil || t == nil {
		return nil
	}

	var out []DocumentType
	if tour.Domestic {
		if t.IsChild() {
			out = append(out, DocBirthCertificate)
		} else {
			out = append(out, DocPassport)
		}
		out = append(out, DocOMSPolicy)
		if t.HasBenefit {
			out = append(out, DocBenefitDocument)
		}
		return out
	}

	out = append(out, DocInternationalPassport)
	if tour.VisaRequired {
		out = append(out, DocVisa)
	}
	if t.IsChild() {
		out = append(out, DocBirthCertificate, DocConsentForChildDeparture)
	}
	if t.HasBenefit {
		out = append(out, DocBenefitDocument)
	}
	return out
}

// RequiredBookingDocuments - обязательные документы поездки в целом
func RequiredBookingDocuments(b *Booking) []DocumentType {
	tour := b.Tour()
	if tour == nil {
		return nil
	}

	var out []DocumentType
	if !tour.Domestic {
		out = append(out, DocVoucher, DocInsurancePolicy)
	} else if tour.IsActiveCategory() {
		out = append(out, DocInsurancePolicy)
	}
	if b.TravelMode() != "" {
		out = append(out, DocTickets)
	}
	if len(b.Animals()) > 0 {
		out = append(out, DocVeterinaryPassport)
	}
	return out
}

// MissingDocumentsSummary - по строке на каждый обязательный документ без статуса Verified
func MissingDocumentsSummary(b *Booking) []string {
	var missing []string
	for _, t := range b.Travelers() {
		for _, docType := range RequiredPersonalDocuments(b, t) {
			if !hasVerified(t.Documents, docType) {
				missing = append(missing, fmt.Sprintf("%s: %s", t.FullName(), docType))
			}
		}
	}
	for _, docType := range RequiredBookingDocuments(b) {
		if !hasVerified(b.Documents(), docType) {
			missing = append(missing, fmt.Sprintf("Booking: %s", docType))
		}
	}
	return missing
}

func hasVerified(docs []*Document, docType DocumentType) bool {
	for _, d := range docs {
		if d.Type == docType && d.Status == StatusVerified {
			return true
		}
	}
	return false
}
