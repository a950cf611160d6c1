package usecase

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/travel-agency/internal/domain"
	"github.com/travel-agency/internal/pkg/errors"
	"github.com/travel-agency/internal/usecase/dto"
)

func (uc *AgencyUseCase) bookingResponse(b *domain.Booking) *dto.BookingResponse {
	resp := dto.ConvertBooking(b, uc.agency.ClientByID(b.ClientID()), uc.now())
	return &resp
}

func (uc *AgencyUseCase) ListBookings() []dto.BookingSummary {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	bookings := uc.agency.Bookings()
	result := make([]dto.BookingSummary, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, dto.ConvertBookingSummary(b, uc.agency.ClientByID(b.ClientID())))
	}
	return result
}

func (uc *AgencyUseCase) GetBooking(id int64) (*dto.BookingResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	b := uc.agency.BookingByID(id)
	if b == nil {
		return nil, errors.ErrBookingNotFound
	}
	return uc.bookingResponse(b), nil
}

func (uc *AgencyUseCase) CreateBooking(req dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	b, err := uc.agency.CreateBooking(req.ClientID, req.TourID)
	if err != nil {
		return nil, err
	}
	uc.touch()

	uc.logger.Info("Booking created",
		zap.Int64("booking_id", b.ID()),
		zap.Int64("client_id", req.ClientID),
		zap.Int64("tour_id", req.TourID),
	)
	return uc.bookingResponse(b), nil
}

func (uc *AgencyUseCase) DeleteBooking(id int64) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.agency.DeleteBooking(id); err != nil {
		return err
	}
	uc.touch()

	uc.logger.Info("Booking deleted", zap.Int64("booking_id", id))
	return nil
}

// mutateBooking - изменение заявки под блокировкой; ревизия растёт только при успехе
func (uc *AgencyUseCase) mutateBooking(id int64, operation string, fn func(b *domain.Booking) error) (*dto.BookingResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	b := uc.agency.BookingByID(id)
	if b == nil {
		return nil, errors.ErrBookingNotFound
	}
	if err := fn(b); err != nil {
		uc.logger.Debug("Booking operation rejected",
			zap.String("operation", operation),
			zap.Int64("booking_id", id),
			zap.Error(err),
		)
		return nil, err
	}
	uc.touch()

	uc.logger.Info("Booking updated",
		zap.String("operation", operation),
		zap.Int64("booking_id", id),
	)
	return uc.bookingResponse(b), nil
}

func (uc *AgencyUseCase) AddTraveler(id int64, req dto.TravelerRequest) (*dto.BookingResponse, error) {
	dob, err := dto.ParseDate(req.DateOfBirth)
	if err != nil {
		return nil, errors.ErrInvalidRequest.WithMessage("invalid date of birth: %s", req.DateOfBirth)
	}
	if req.IsChild && dob.IsZero() {
		return nil, errors.ErrValidationFailed.WithMessage("date of birth is required for a child").
			WithDetails(map[string]interface{}{"field": "date_of_birth"})
	}

	return uc.mutateBooking(id, "add_traveler", func(b *domain.Booking) error {
		var err error
		if req.IsChild {
			_, err = b.AddChild(req.LastName, req.FirstName, req.MiddleName, dob)
		} else {
			_, err = b.AddAdult(req.LastName, req.FirstName, req.MiddleName)
		}
		if err != nil {
			return err
		}
		if req.HasBenefit {
			return b.SetTravelerBenefit(len(b.Travelers())-1, true)
		}
		return nil
	})
}

// UpdateTraveler - пустые поля запроса оставляют текущие значения
func (uc *AgencyUseCase) UpdateTraveler(id int64, index int, req dto.UpdateTravelerRequest) (*dto.BookingResponse, error) {
	dob, err := dto.ParseDate(req.DateOfBirth)
	if err != nil {
		return nil, errors.ErrInvalidRequest.WithMessage("invalid date of birth: %s", req.DateOfBirth)
	}

	return uc.mutateBooking(id, "update_traveler", func(b *domain.Booking) error {
		t, err := b.Traveler(index)
		if err != nil {
			return err
		}
		if !dob.IsZero() {
			if err := b.SetChildDateOfBirth(index, dob); err != nil {
				return err
			}
		}

		last, first, middle := t.LastName, t.FirstName, t.MiddleName
		if req.LastName != "" {
			last = req.LastName
		}
		if req.FirstName != "" {
			first = req.FirstName
		}
		if req.MiddleName != "" {
			middle = req.MiddleName
		}
		if err := b.UpdateTravelerName(index, last, first, middle); err != nil {
			return err
		}

		if req.HasBenefit != nil {
			return b.SetTravelerBenefit(index, *req.HasBenefit)
		}
		return nil
	})
}

func (uc *AgencyUseCase) RemoveTraveler(id int64, index int) (*dto.BookingResponse, error) {
	return uc.mutateBooking(id, "remove_traveler", func(b *domain.Booking) error {
		return b.RemoveTraveler(index)
	})
}

func (uc *AgencyUseCase) AddAnimal(id int64, req dto.AnimalRequest) (*dto.BookingResponse, error) {
	return uc.mutateBooking(id, "add_animal", func(b *domain.Booking) error {
		_, err := b.AddAnimal(req.Type, req.Weight, req.Transport)
		return err
	})
}

func (uc *AgencyUseCase) RemoveAnimal(id int64, index int) (*dto.BookingResponse, error) {
	return uc.mutateBooking(id, "remove_animal", func(b *domain.Booking) error {
		return b.RemoveAnimal(index)
	})
}

// SetTravel - недопустимые значения заменяются допустимыми, а не отклоняются
func (uc *AgencyUseCase) SetTravel(id int64, req dto.TravelRequest) (*dto.BookingResponse, error) {
	return uc.mutateBooking(id, "set_travel", func(b *domain.Booking) error {
		b.SetTravelMode(req.TravelMode)
		b.SetTravelClass(req.TravelClass)
		return nil
	})
}

func (uc *AgencyUseCase) SetStatus(id int64, req dto.BookingStatusRequest) (*dto.BookingResponse, error) {
	status, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		return nil, err
	}
	return uc.mutateBooking(id, "set_status", func(b *domain.Booking) error {
		return b.SetStatus(status)
	})
}

// ============================================================
// Документы. owner < 0 - документы заявки, иначе индекс туриста.
// ============================================================

func (uc *AgencyUseCase) GetDocument(id int64, owner, index int) (*dto.DocumentResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	b := uc.agency.BookingByID(id)
	if b == nil {
		return nil, errors.ErrBookingNotFound
	}
	d, err := b.Document(owner, index)
	if err != nil {
		return nil, err
	}

	var required []domain.DocumentType
	if owner < 0 {
		required = domain.RequiredBookingDocuments(b)
	} else {
		required = domain.RequiredPersonalDocuments(b, b.Travelers()[owner])
	}
	resp := dto.ConvertDocuments([]*domain.Document{d}, required)[0]
	resp.Index = index
	return &resp, nil
}

// SetDocumentFields - запись полей; статус пересчитывается по заполненности
func (uc *AgencyUseCase) SetDocumentFields(id int64, owner, index int, req dto.DocumentFieldsRequest) (*dto.BookingResponse, error) {
	keys := make([]string, 0, len(req.Fields))
	for k := range req.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return uc.mutateBooking(id, "set_document_fields", func(b *domain.Booking) error {
		for _, k := range keys {
			if err := b.SetDocumentField(owner, index, k, req.Fields[k]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (uc *AgencyUseCase) SetDocumentStatus(id int64, owner, index int, req dto.DocumentStatusRequest) (*dto.BookingResponse, error) {
	status, err := domain.ParseDocumentStatus(req.Status)
	if err != nil {
		return nil, err
	}
	return uc.mutateBooking(id, "set_document_status", func(b *domain.Booking) error {
		return b.SetDocumentStatus(owner, index, status)
	})
}

func (uc *AgencyUseCase) VerifyDocument(id int64, owner, index int) (*dto.BookingResponse, error) {
	return uc.mutateBooking(id, "verify_document", func(b *domain.Booking) error {
		return b.VerifyDocument(owner, index)
	})
}

func (uc *AgencyUseCase) AddDocument(id int64, owner int, req dto.AddDocumentRequest) (*dto.BookingResponse, error) {
	return uc.mutateBooking(id, "add_document", func(b *domain.Booking) error {
		_, err := b.AddDocument(owner, domain.DocumentType(req.Type))
		return err
	})
}

func (uc *AgencyUseCase) RemoveDocument(id int64, owner, index int) (*dto.BookingResponse, error) {
	return uc.mutateBooking(id, "remove_document", func(b *domain.Booking) error {
		return b.RemoveDocument(owner, index)
	})
}

// ============================================================
// Проверки и стоимость
// ============================================================

func (uc *AgencyUseCase) Warnings(id int64) (*dto.WarningsResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	b := uc.agency.BookingByID(id)
	if b == nil {
		return nil, errors.ErrBookingNotFound
	}
	resp := &dto.WarningsResponse{
		DocumentWarnings:   b.DocumentWarnings(),
		ValidationWarnings: b.ValidationWarnings(),
		Complete:           b.CheckDocumentsComplete(),
	}
	if resp.DocumentWarnings == nil {
		resp.DocumentWarnings = []string{}
	}
	if resp.ValidationWarnings == nil {
		resp.ValidationWarnings = []string{}
	}
	return resp, nil
}

func (uc *AgencyUseCase) CostSummary(id int64) (*dto.CostSummaryResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	b := uc.agency.BookingByID(id)
	if b == nil {
		return nil, errors.ErrBookingNotFound
	}

	resp := &dto.CostSummaryResponse{Animals: len(b.Animals())}
	for _, t := range b.Travelers() {
		if t.IsChild() {
			resp.Children++
		} else {
			resp.Adults++
		}
	}
	if tour := b.Tour(); tour != nil {
		resp.BasePrice = tour.BasePrice
	}
	resp.Total = b.TotalCost()
	resp.Formatted = dto.FormatCost(resp.Total)
	return resp, nil
}

// SubmitBooking - заявка проверяется (туристы и проверенные документы) и состояние сохраняется
func (uc *AgencyUseCase) SubmitBooking(ctx context.Context, id int64) (*dto.SnapshotResponse, error) {
	uc.mu.Lock()
	b := uc.agency.BookingByID(id)
	if b == nil {
		uc.mu.Unlock()
		return nil, errors.ErrBookingNotFound
	}
	err := b.Validate()
	uc.mu.Unlock()

	if err != nil {
		uc.logger.Info("Booking is not ready", zap.Int64("booking_id", id), zap.Error(err))
		return nil, err
	}
	return uc.Save(ctx)
}
