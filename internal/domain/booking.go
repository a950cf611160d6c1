package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/travel-agency/internal/pkg/errors"
)

const (
	ChildPriceFactor = 0.5
	AnimalBaseFee    = 1000.0
	AnimalFeePerKg   = 5.0
)

// nowFunc - источник текущей даты для проверки возраста детей
var nowFunc = time.Now

type BookingStatus int

const (
	BookingDraft BookingStatus = iota
	BookingCompleted
	BookingPaid
	BookingCanceled
)

func (s BookingStatus) Valid() bool {
	return s >= BookingDraft && s <= BookingCanceled
}

func (s BookingStatus) String() string {
	switch s {
	case BookingDraft:
		return "Draft"
	case BookingCompleted:
		return "Completed"
	case BookingPaid:
		return "Paid"
	case BookingCanceled:
		return "Canceled"
	}
	return "?"
}

// TourLookup - поиск тура по идентификатору (реализуется агентством)
type TourLookup interface {
	TourByID(id int64) *Tour
}

type singleTour struct{ tour *Tour }

func (s singleTour) TourByID(id int64) *Tour {
	if s.tour != nil && s.tour.ID == id {
		return s.tour
	}
	return nil
}

// TravelClassOptions - допустимые классы для способа проезда
func TravelClassOptions(mode string) []string {
	switch mode {
	case ModeTrain:
		return []string{"Compartment", "Reserved Seating"}
	case ModePlane:
		return []string{"Economy", "Business", "First Class"}
	}
	return nil
}

// Booking - заявка на тур. Клиент и тур хранятся как идентификаторы,
// тур разрешается через TourLookup агентства.
type Booking struct {
	id          int64
	clientID    int64
	tourID      int64
	status      BookingStatus
	travelMode  string
	travelClass string
	travelers   []*Traveler
	animals     []*Animal
	documents   []*Document
	tours       TourLookup
}

// NewBooking - клиент и тур обязательны. Если tours == nil, заявка видит только переданный тур.
func NewBooking(id int64, client *Client, tour *Tour, tours TourLookup) (*Booking, error) {
	if client == nil || tour == nil {
		return nil, invalidArgument("client and tour are required")
	}
	if tours == nil {
		tours = singleTour{tour: tour}
	}

	b := &Booking{
		id:       id,
		clientID: client.ID,
		tourID:   tour.ID,
		status:   BookingDraft,
		tours:    tours,
	}
	if len(tour.TravelModes) > 0 {
		b.travelMode = tour.TravelModes[0]
	} else {
		b.travelMode = ModePlane
	}
	if classes := TravelClassOptions(b.travelMode); len(classes) > 0 {
		b.travelClass = classes[0]
	}
	b.Regenerate()
	return b, nil
}

func (b *Booking) ID() int64 { return b.id }
func (b *Booking) ClientID() int64 { return b.clientID }
func (b *Booking) TourID() int64 { return b.tourID }
func (b *Booking) Status() BookingStatus { return b.status }
func (b *Booking) TravelMode() string { return b.travelMode }
func (b *Booking) TravelClass() string { return b.travelClass }
func (b *Booking) Travelers() []*Traveler { return b.travelers }
func (b *Booking) Animals() []*Animal { return b.animals }
func (b *Booking) Documents() []*Document { return b.documents }
func (b *Booking) Tour() *Tour { return b.tours.TourByID(b.tourID) }

func (b *Booking) SetStatus(s BookingStatus) error {
	if !s.Valid() {
		return invalidArgument("unknown booking status %d", int(s))
	}
	b.status = s
	return nil
}

func (b *Booking) AddAdult(lastName, firstName, middleName string) (*Traveler, error) {
	t, err := NewAdult(lastName, firstName, middleName)
	if err != nil {
		return nil, err
	}
	b.travelers = append(b.travelers, t)
	b.Regenerate()
	return t, nil
}

func (b *Booking) AddChild(lastName, firstName, middleName string, dateOfBirth time.Time) (*Traveler, error) {
	t, err := NewChild(lastName, firstName, middleName, dateOfBirth, nowFunc())
	if err != nil {
		return nil, err
	}
	b.travelers = append(b.travelers, t)
	b.Regenerate()
	return t, nil
}

func (b *Booking) RemoveTraveler(index int) error {
	if index < 0 || index >= len(b.travelers) {
		return errors.ErrTravelerNotFound.WithMessage("traveler #%d not found", index)
	}
	b.travelers = append(b.travelers[:index], b.travelers[index+1:]...)
	b.Regenerate()
	return nil
}

func (b *Booking) Traveler(index int) (*Traveler, error) {
	if index < 0 || index >= len(b.travelers) {
		return nil, errors.ErrTravelerNotFound.WithMessage("traveler #%d not found", index)
	}
	return b.travelers[index], nil
}

// SetTravelerBenefit - льгота меняет набор обязательных документов
func (b *Booking) SetTravelerBenefit(index int, hasBenefit bool) error {
	t, err := b.Traveler(index)
	if err != nil {
		return err
	}
	t.HasBenefit = hasBenefit
	b.Regenerate()
	return nil
}

func (b *Booking) UpdateTravelerName(index int, lastName, firstName, middleName string) error {
	t, err := b.Traveler(index)
	if err != nil {
		return err
	}
	if strings.TrimSpace(lastName) == "" || strings.TrimSpace(firstName) == "" {
		return invalidArgument("traveler last name and first name must not be empty")
	}
	t.LastName, t.FirstName, t.MiddleName = lastName, firstName, middleName
	return nil
}

func (b *Booking) SetChildDateOfBirth(index int, dateOfBirth time.Time) error {
	t, err := b.Traveler(index)
	if err != nil {
		return err
	}
	return t.SetDateOfBirth(dateOfBirth, nowFunc())
}

func (b *Booking) AddAnimal(kind string, weight float64, transport string) (*Animal, error) {
	a, err := NewAnimal(kind, weight, transport)
	if err != nil {
		return nil, err
	}
	b.animals = append(b.animals, a)
	b.Regenerate()
	return a, nil
}

func (b *Booking) RemoveAnimal(index int) error {
	if index < 0 || index >= len(b.animals) {
		return errors.ErrAnimalNotFound.WithMessage("animal #%d not found", index)
	}
	b.animals = append(b.animals[:index], b.animals[index+1:]...)
	b.Regenerate()
	return nil
}

// SetTravelMode - недопустимый для тура способ заменяется первым разрешённым.
// Пустое значение игнорируется.
func (b *Booking) SetTravelMode(mode string) {
	if strings.TrimSpace(mode) == "" {
		return
	}
	b.applyTravelMode(mode)
	b.Regenerate()
}

func (b *Booking) applyTravelMode(mode string) {
	tour := b.Tour()
	if tour != nil && len(tour.TravelModes) > 0 && !tour.AllowsMode(mode) {
		mode = tour.TravelModes[0]
	}
	b.travelMode = mode

	classes := TravelClassOptions(b.travelMode)
	if !contains(classes, b.travelClass) {
		b.travelClass = firstOrEmpty(classes)
	}
}

// SetTravelClass - недопустимый класс заменяется первым классом текущего способа проезда
func (b *Booking) SetTravelClass(travelClass string) {
	if strings.TrimSpace(travelClass) == "" {
		return
	}
	classes := TravelClassOptions(b.travelMode)
	if !contains(classes, travelClass) {
		b.travelClass = firstOrEmpty(classes)
		return
	}
	b.travelClass = travelClass
}

// Regenerate - приводит списки документов туристов и заявки к требованиям
// без потери уже введённых данных
func (b *Booking) Regenerate() {
	for _, t := range b.travelers {
		t.Documents = regenerateDocuments(t.Documents, RequiredPersonalDocuments(b, t))
	}
	b.documents = regenerateDocuments(b.documents, RequiredBookingDocuments(b))
}

// RestoreDocuments - подстановка сохранённых документов при загрузке.
// Данные сопоставляются по типу документа через обычную пересборку.
func (b *Booking) RestoreDocuments(travelerDocs [][]*Document, bookingDocs []*Document) {
	for i, t := range b.travelers {
		if i < len(travelerDocs) {
			t.Documents = append(t.Documents, travelerDocs[i]...)
		}
	}
	b.documents = append(b.documents, bookingDocs...)
	b.Regenerate()
}

// onTourChanged - тур отредактирован: проверяем способ проезда и пересобираем документы
func (b *Booking) onTourChanged() {
	b.applyTravelMode(b.travelMode)
	b.Regenerate()
}

func (b *Booking) TravelerDocument(travelerIndex, docIndex int) (*Document, error) {
	t, err := b.Traveler(travelerIndex)
	if err != nil {
		return nil, err
	}
	return documentAt(t.Documents, docIndex)
}

func (b *Booking) BookingDocument(docIndex int) (*Document, error) {
	return documentAt(b.documents, docIndex)
}

func documentAt(docs []*Document, index int) (*Document, error) {
	if index < 0 || index >= len(docs) {
		return nil, errors.ErrDocumentNotFound.WithMessage("document #%d not found", index)
	}
	return docs[index], nil
}

// TotalCost - взрослые по базовой цене, дети со скидкой, животные с доплатой за вес
func (b *Booking) TotalCost() float64 {
	tour := b.Tour()
	if tour == nil {
		return 0
	}
	adults, children := 0, 0
	for _, t := range b.travelers {
		if t.IsChild() {
			children++
		} else {
			adults++
		}
	}
	cost := float64(adults)*tour.BasePrice + float64(children)*tour.BasePrice*ChildPriceFactor
	for _, a := range b.animals {
		cost += AnimalBaseFee + a.Weight*AnimalFeePerKg
	}
	return cost
}

func (b *Booking) CheckDocumentsComplete() bool {
	return len(MissingDocumentsSummary(b)) == 0
}

func (b *Booking) DocumentWarnings() []string {
	w := MissingDocumentsSummary(b)
	if len(b.travelers) == 0 {
		w = append(w, "no travelers in booking")
	}
	return w
}

func (b *Booking) ValidationWarnings() []string {
	var w []string
	for _, t := range b.travelers {
		if t.IsChild() && t.DateOfBirth.IsZero() {
			w = append(w, fmt.Sprintf("child %s has no valid date of birth", t.FullName()))
		}
	}
	return w
}

// Validate - заявку можно оформить: есть туристы и все обязательные документы проверены
func (b *Booking) Validate() error {
	if len(b.travelers) == 0 {
		return errors.ErrValidationFailed.WithMessage("add at least one traveler")
	}
	if missing := MissingDocumentsSummary(b); len(missing) > 0 {
		return errors.ErrValidationFailed.WithMessage("required documents are not verified").
			WithDetails(map[string]interface{}{"missing": missing})
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func firstOrEmpty(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[0]
}

// ParseBookingStatus - статус по имени (Draft, Completed, Paid, Canceled)
func ParseBookingStatus(name string) (BookingStatus, error) {
	for s := BookingDraft; s <= BookingCanceled; s++ {
		if strings.EqualFold(s.String(), name) {
			return s, nil
		}
	}
	return 0, invalidArgument("unknown booking status %q", name)
}
