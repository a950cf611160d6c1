package snapshot

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/travel-agency/internal/domain"
	"github.com/travel-agency/internal/pkg/errors"
)

const dateLayout = "2006-01-02"

// DecodeReport - записи, пропущенные при загрузке без ошибки
type DecodeReport struct {
	// SkippedBookings - заявки, ссылающиеся на отсутствующего клиента или тур
	SkippedBookings []int64
}

// Encode сериализует агентство в JSON снапшот
func Encode(a *domain.Agency) ([]byte, error) {
	rec := fileRecord{
		Clients:  make([]clientRecord, 0, len(a.Clients())),
		Tours:    make([]tourRecord, 0, len(a.Tours())),
		Requests: make([]requestRecord, 0, len(a.Bookings())),
	}

	for _, c := range a.Clients() {
		rec.Clients = append(rec.Clients, clientRecord{
			ID:                  c.ID,
			LastName:            c.LastName,
			FirstName:           c.FirstName,
			MiddleName:          c.MiddleName,
			FullName:            c.FullName(),
			Phone:               c.Phone,
			Email:               c.Email,
			DateOfBirth:         formatDate(c.DateOfBirth),
			Comments:            c.Comments,
			RegistrationAddress: c.RegistrationAddress,
			ActualAddress:       c.ActualAddress,
		})
	}

	for _, t := range a.Tours() {
		rec.Tours = append(rec.Tours, tourRecord{
			ID:           t.ID,
			Name:         t.Name,
			Country:      t.Country,
			TourType:     t.TourType,
			StartDate:    formatDate(t.StartDate),
			DurationDays: t.DurationDays,
			BasePrice:    t.BasePrice,
			IsDomestic:   t.Domestic,
			VisaRequired: t.VisaRequired,
			TravelModes:  append([]string{}, t.TravelModes...),
		})
	}

	for _, b := range a.Bookings() {
		rec.Requests = append(rec.Requests, encodeBooking(b))
	}

	data, err := json.MarshalIndent(rec, "", "    ")
	if err != nil {
		return nil, errors.ErrSnapshotIO.WithMessage("failed to encode snapshot").Wrap(err)
	}
	return data, nil
}

func encodeBooking(b *domain.Booking) requestRecord {
	mode, class := b.TravelMode(), b.TravelClass()
	r := requestRecord{
		ID:          b.ID(),
		ClientID:    b.ClientID(),
		TourID:      b.TourID(),
		Status:      int(b.Status()),
		TravelMode:  &mode,
		TravelClass: &class,
		Tourists:    make([]touristRecord, 0, len(b.Travelers())),
		Animals:     make([]animalRecord, 0, len(b.Animals())),
		Documents:   encodeDocuments(b.Documents()),
	}
	for _, t := range b.Travelers() {
		tr := touristRecord{
			IsChild:    t.IsChild(),
			LastName:   t.LastName,
			FirstName:  t.FirstName,
			MiddleName: t.MiddleName,
			FullName:   t.FullName(),
			HasBenefit: t.HasBenefit,
			Documents:  encodeDocuments(t.Documents),
		}
		if t.IsChild() {
			tr.DateOfBirth = formatDate(t.DateOfBirth)
		}
		r.Tourists = append(r.Tourists, tr)
	}
	for _, an := range b.Animals() {
		r.Animals = append(r.Animals, animalRecord{Type: an.Type, Weight: an.Weight, Transport: an.Transport})
	}
	return r
}

func encodeDocuments(docs []*domain.Document) []documentRecord {
	out := make([]documentRecord, 0, len(docs))
	for _, d := range docs {
		fields := make(map[string]interface{}, len(d.Fields))
		for k, v := range d.Fields {
			fields[k] = v
		}
		out = append(out, documentRecord{Type: int(d.Type), Status: int(d.Status), Fields: fields})
	}
	return out
}

// Decode восстанавливает агентство из снапшота. Результат - новый агрегат:
// при любой ошибке вызывающий код сохраняет прежнее состояние.
func Decode(data []byte) (*domain.Agency, DecodeReport, error) {
	var report DecodeReport

	var rec fileRecord
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&rec); err != nil {
		return nil, report, errors.ErrSnapshotMalformed.WithMessage("JSON error: %v", err).Wrap(err)
	}

	a := domain.NewAgency()

	for i, c := range rec.Clients {
		in, err := clientInput(c)
		if err != nil {
			return nil, report, malformed(err, "client #%d", i)
		}
		if _, err := a.RestoreClient(c.ID, in); err != nil {
			return nil, report, malformed(err, "client #%d", i)
		}
	}

	for i, t := range rec.Tours {
		in, err := tourInput(t)
		if err != nil {
			return nil, report, malformed(err, "tour #%d", i)
		}
		if _, err := a.RestoreTour(t.ID, in); err != nil {
			return nil, report, malformed(err, "tour #%d", i)
		}
	}

	// заявки последними: им нужны клиенты и туры
	for i, r := range rec.Requests {
		skipped, err := decodeBooking(a, r)
		if err != nil {
			return nil, report, malformed(err, "request #%d", i)
		}
		if skipped {
			report.SkippedBookings = append(report.SkippedBookings, r.ID)
		}
	}

	return a, report, nil
}

func decodeBooking(a *domain.Agency, r requestRecord) (bool, error) {
	b, err := a.RestoreBooking(r.ID, r.ClientID, r.TourID)
	if errors.Is(err, errors.ErrClientNotFound) || errors.Is(err, errors.ErrTourNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	if r.TravelMode != nil {
		b.SetTravelMode(*r.TravelMode)
	}
	if r.TravelClass != nil {
		b.SetTravelClass(*r.TravelClass)
	}

	travelerDocs := make([][]*domain.Document, 0, len(r.Tourists))
	for i, tr := range r.Tourists {
		last, first, middle := tr.LastName, tr.FirstName, tr.MiddleName
		if last == "" && first == "" && tr.FullName != "" {
			last, first, middle = domain.SplitLegacyFullName(tr.FullName)
		}

		var t *domain.Traveler
		if tr.IsChild {
			dob, err := parseDate(tr.DateOfBirth)
			if err != nil {
				return false, errors.ErrInvalidArgument.WithMessage("tourist #%d: invalid date of birth %q", i, tr.DateOfBirth)
			}
			t, err = b.AddChild(last, first, middle, dob)
			if err != nil {
				return false, err
			}
		} else {
			t, err = b.AddAdult(last, first, middle)
			if err != nil {
				return false, err
			}
		}
		t.HasBenefit = tr.HasBenefit

		docs, err := decodeDocuments(tr.Documents)
		if err != nil {
			return false, err
		}
		travelerDocs = append(travelerDocs, docs)
	}

	for _, an := range r.Animals {
		if _, err := b.AddAnimal(an.Type, an.Weight, an.Transport); err != nil {
			return false, err
		}
	}

	bookingDocs, err := decodeDocuments(r.Documents)
	if err != nil {
		return false, err
	}
	b.RestoreDocuments(travelerDocs, bookingDocs)

	if err := b.SetStatus(domain.BookingStatus(r.Status)); err != nil {
		return false, err
	}
	return false, nil
}

func decodeDocuments(records []documentRecord) ([]*domain.Document, error) {
	out := make([]*domain.Document, 0, len(records))
	for _, r := range records {
		docType := domain.DocumentType(r.Type)
		if !docType.Valid() {
			return nil, errors.ErrInvalidArgument.WithMessage("unknown document type %d", r.Type)
		}
		status := domain.DocumentStatus(r.Status)
		if !status.Valid() {
			return nil, errors.ErrInvalidArgument.WithMessage("unknown document status %d", r.Status)
		}

		doc := domain.NewDocument(docType)
		doc.Status = status
		for k, v := range r.Fields {
			switch v.(type) {
			case nil, string, bool, json.Number:
				doc.Fields[k] = v
			default:
				return nil, errors.ErrInvalidArgument.WithMessage("document field %q must be a string, number or boolean", k)
			}
		}
		out = append(out, doc)
	}
	return out, nil
}

func clientInput(c clientRecord) (domain.ClientInput, error) {
	dob, err := parseDate(c.DateOfBirth)
	if err != nil {
		return domain.ClientInput{}, errors.ErrInvalidArgument.WithMessage("invalid date of birth %q", c.DateOfBirth)
	}

	last, first, middle := c.LastName, c.FirstName, c.MiddleName
	if last == "" && first == "" && c.FullName != "" {
		last, first, middle = domain.SplitLegacyFullName(c.FullName)
	}

	actual := c.ActualAddress
	if actual.IsEmpty() && !c.RegistrationAddress.IsEmpty() {
		actual = c.RegistrationAddress
	}

	return domain.ClientInput{
		LastName:            last,
		FirstName:           first,
		MiddleName:          middle,
		Phone:               c.Phone,
		Email:               c.Email,
		DateOfBirth:         dob,
		Comments:            c.Comments,
		RegistrationAddress: c.RegistrationAddress,
		ActualAddress:       actual,
	}, nil
}

func tourInput(t tourRecord) (domain.TourInput, error) {
	start, err := parseDate(t.StartDate)
	if err != nil {
		return domain.TourInput{}, errors.ErrInvalidArgument.WithMessage("invalid start date %q", t.StartDate)
	}
	return domain.TourInput{
		Name:         t.Name,
		Country:      t.Country,
		TourType:     t.TourType,
		StartDate:    start,
		DurationDays: t.DurationDays,
		BasePrice:    t.BasePrice,
		Domestic:     t.IsDomestic,
		VisaRequired: t.VisaRequired,
		TravelModes:  t.TravelModes,
	}, nil
}

// parseDate - ISO дата; пустая строка означает "не задано"
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func malformed(err error, format string, args ...interface{}) error {
	prefix := errors.ErrSnapshotMalformed.WithMessage(format, args...)
	msg := err.Error()
	if appErr, ok := errors.As(err); ok {
		msg = appErr.Message
	}
	return prefix.WithMessage("%s: %s", prefix.Message, msg).Wrap(err)
}
