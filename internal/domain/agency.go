package domain

import (
	"strings"

	"github.com/travel-agency/internal/pkg/errors"
)

// Agency - агрегат агентства: владеет клиентами, турами и заявками.
// Однопоточный, синхронизация - забота вызывающего кода.
type Agency struct {
	clients  []*Client
	tours    []*Tour
	bookings []*Booking
	ids      *IDAllocator
}

func NewAgency() *Agency {
	return &Agency{ids: NewIDAllocator()}
}

func (a *Agency) Clients() []*Client { return a.clients }
func (a *Agency) Tours() []*Tour { return a.tours }
func (a *Agency) Bookings() []*Booking { return a.bookings }
func (a *Agency) IDs() *IDAllocator { return a.ids }

// --- Клиенты ---

func (a *Agency) AddClient(in ClientInput) (*Client, error) {
	if err := ValidateClientInput(in); err != nil {
		return nil, err
	}
	c, err := NewClient(a.ids.Peek(KindClient), in)
	if err != nil {
		return nil, err
	}
	a.ids.Next(KindClient)
	a.clients = append(a.clients, c)
	return c, nil
}

func (a *Agency) EditClient(id int64, in ClientInput) error {
	c := a.ClientByID(id)
	if c == nil {
		return errors.ErrClientNotFound
	}
	if err := ValidateClientInput(in); err != nil {
		return err
	}
	c.apply(in)
	return nil
}

func (a *Agency) DeleteClient(id int64) error {
	idx := -1
	for i, c := range a.clients {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return errors.ErrClientNotFound
	}
	for _, b := range a.bookings {
		if b.ClientID() == id {
			return errors.ErrReferenced.WithMessage("cannot delete client: there are bookings for this client")
		}
	}
	a.clients = append(a.clients[:idx], a.clients[idx+1:]...)
	return nil
}

func (a *Agency) ClientByID(id int64) *Client {
	for _, c := range a.clients {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// SearchClients - подстрока без учёта регистра по ФИО, телефону и email
func (a *Agency) SearchClients(query string) []*Client {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []*Client
	for _, c := range a.clients {
		if strings.Contains(strings.ToLower(c.FullName()), q) ||
			strings.Contains(c.Phone, q) ||
			strings.Contains(strings.ToLower(c.Email), q) {
			out = append(out, c)
		}
	}
	return out
}

// SalesHistory - заявки клиента
func (a *Agency) SalesHistory(clientID int64) []*Booking {
	var out []*Booking
	for _, b := range a.bookings {
		if b.ClientID() == clientID {
			out = append(out, b)
		}
	}
	return out
}

// --- Туры ---

func (a *Agency) AddTour(in TourInput) (*Tour, error) {
	t, err := NewTour(a.ids.Peek(KindTour), in)
	if err != nil {
		return nil, err
	}
	a.ids.Next(KindTour)
	a.tours = append(a.tours, t)
	return t, nil
}

// EditTour - после изменения тура заявки по нему пересобирают документы
func (a *Agency) EditTour(id int64, in TourInput) error {
	t := a.TourByID(id)
	if t == nil {
		return errors.ErrTourNotFound
	}
	if err := validateTourInput(in); err != nil {
		return err
	}
	t.apply(in)
	for _, b := range a.bookings {
		if b.TourID() == id {
			b.onTourChanged()
		}
	}
	return nil
}

func (a *Agency) DeleteTour(id int64) error {
	idx := -1
	for i, t := range a.tours {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return errors.ErrTourNotFound
	}
	for _, b := range a.bookings {
		if b.TourID() == id {
			return errors.ErrReferenced.WithMessage("cannot delete tour: there are bookings for this tour")
		}
	}
	a.tours = append(a.tours[:idx], a.tours[idx+1:]...)
	return nil
}

// TourByID реализует TourLookup для заявок
func (a *Agency) TourByID(id int64) *Tour {
	for _, t := range a.tours {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// --- Заявки ---

func (a *Agency) CreateBooking(clientID, tourID int64) (*Booking, error) {
	c := a.ClientByID(clientID)
	if c == nil {
		return nil, errors.ErrClientNotFound
	}
	t := a.TourByID(tourID)
	if t == nil {
		return nil, errors.ErrTourNotFound
	}
	b, err := NewBooking(a.ids.Peek(KindBooking), c, t, a)
	if err != nil {
		return nil, err
	}
	a.ids.Next(KindBooking)
	a.bookings = append(a.bookings, b)
	return b, nil
}

func (a *Agency) DeleteBooking(id int64) error {
	for i, b := range a.bookings {
		if b.ID() == id {
			a.bookings = append(a.bookings[:i], a.bookings[i+1:]...)
			return nil
		}
	}
	return errors.ErrBookingNotFound
}

func (a *Agency) BookingByID(id int64) *Booking {
	for _, b := range a.bookings {
		if b.ID() == id {
			return b
		}
	}
	return nil
}

// --- Восстановление из снапшота ---

// RestoreClient - клиент с сохранённым идентификатором (0 - выдать новый).
// Анкета не валидируется повторно: старые файлы могут не проходить текущие правила.
func (a *Agency) RestoreClient(id int64, in ClientInput) (*Client, error) {
	if id <= 0 {
		id = a.ids.Peek(KindClient)
	}
	if a.ClientByID(id) != nil {
		return nil, invalidArgument("duplicate client id %d", id)
	}
	c, err := NewClient(id, in)
	if err != nil {
		return nil, err
	}
	a.ids.Observe(KindClient, id)
	a.clients = append(a.clients, c)
	return c, nil
}

func (a *Agency) RestoreTour(id int64, in TourInput) (*Tour, error) {
	if id <= 0 {
		id = a.ids.Peek(KindTour)
	}
	if a.TourByID(id) != nil {
		return nil, invalidArgument("duplicate tour id %d", id)
	}
	t, err := NewTour(id, in)
	if err != nil {
		return nil, err
	}
	a.ids.Observe(KindTour, id)
	a.tours = append(a.tours, t)
	return t, nil
}

func (a *Agency) RestoreBooking(id, clientID, tourID int64) (*Booking, error) {
	if id <= 0 {
		id = a.ids.Peek(KindBooking)
	}
	if a.BookingByID(id) != nil {
		return nil, invalidArgument("duplicate booking id %d", id)
	}
	c := a.ClientByID(clientID)
	if c == nil {
		return nil, errors.ErrClientNotFound
	}
	t := a.TourByID(tourID)
	if t == nil {
		return nil, errors.ErrTourNotFound
	}
	b, err := NewBooking(id, c, t, a)
	if err != nil {
		return nil, err
	}
	a.ids.Observe(KindBooking, id)
	a.bookings = append(a.bookings, b)
	return b, nil
}
