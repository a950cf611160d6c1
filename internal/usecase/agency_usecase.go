package usecase

import (
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/travel-agency/internal/domain"
	"github.com/travel-agency/internal/domain/repository"
	"github.com/travel-agency/internal/pkg/errors"
	"github.com/travel-agency/internal/usecase/dto"
)

// AgencyUseCase - единая точка доступа к агрегату агентства.
// Все операции сериализуются мьютексом: агрегат не потокобезопасен,
// а HTTP сервер и автосохранение работают параллельно.
type AgencyUseCase struct {
	mu     sync.Mutex
	saveMu sync.Mutex // запись в хранилище строго по очереди
	agency *domain.Agency
	repo   repository.SnapshotRepository
	logger *zap.Logger
	now    func() time.Time

	revision      uint64 // увеличивается при каждом изменении
	savedRevision uint64 // ревизия, совпадающая с хранилищем
}

// NewAgencyUseCase - создание use case с пустым агентством
func NewAgencyUseCase(repo repository.SnapshotRepository, logger *zap.Logger) *AgencyUseCase {
	return &AgencyUseCase{
		agency: domain.NewAgency(),
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Revision - текущая ревизия данных
func (uc *AgencyUseCase) Revision() uint64 {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.revision
}

// Dirty - есть изменения, не записанные в хранилище
func (uc *AgencyUseCase) Dirty() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.revision != uc.savedRevision
}

func (uc *AgencyUseCase) touch() {
	uc.revision++
}

// ============================================================
// Клиенты
// ============================================================

// ListClients - все клиенты или результат поиска по ФИО, телефону и email
func (uc *AgencyUseCase) ListClients(query string) []dto.ClientResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	clients := uc.agency.Clients()
	if strings.TrimSpace(query) != "" {
		clients = uc.agency.SearchClients(query)
	}

	result := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		result = append(result, dto.ConvertClient(c))
	}
	return result
}

func (uc *AgencyUseCase) GetClient(id int64) (*dto.ClientResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	c := uc.agency.ClientByID(id)
	if c == nil {
		return nil, errors.ErrClientNotFound
	}
	resp := dto.ConvertClient(c)
	return &resp, nil
}

func (uc *AgencyUseCase) CreateClient(req dto.ClientRequest) (*dto.ClientResponse, error) {
	in, err := req.ToInput()
	if err != nil {
		return nil, errors.ErrInvalidRequest.WithMessage("invalid date of birth: %s", req.DateOfBirth)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	c, err := uc.agency.AddClient(in)
	if err != nil {
		uc.logger.Debug("Client rejected", zap.Error(err))
		return nil, err
	}
	uc.touch()

	uc.logger.Info("Client created", zap.Int64("client_id", c.ID))
	resp := dto.ConvertClient(c)
	return &resp, nil
}

func (uc *AgencyUseCase) UpdateClient(id int64, req dto.ClientRequest) (*dto.ClientResponse, error) {
	in, err := req.ToInput()
	if err != nil {
		return nil, errors.ErrInvalidRequest.WithMessage("invalid date of birth: %s", req.DateOfBirth)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.agency.EditClient(id, in); err != nil {
		return nil, err
	}
	uc.touch()

	uc.logger.Info("Client updated", zap.Int64("client_id", id))
	resp := dto.ConvertClient(uc.agency.ClientByID(id))
	return &resp, nil
}

func (uc *AgencyUseCase) DeleteClient(id int64) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.agency.DeleteClient(id); err != nil {
		uc.logger.Warn("Client not deleted", zap.Int64("client_id", id), zap.Error(err))
		return err
	}
	uc.touch()

	uc.logger.Info("Client deleted", zap.Int64("client_id", id))
	return nil
}

// SalesHistory - заявки клиента
func (uc *AgencyUseCase) SalesHistory(clientID int64) ([]dto.BookingSummary, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	client := uc.agency.ClientByID(clientID)
	if client == nil {
		return nil, errors.ErrClientNotFound
	}

	bookings := uc.agency.SalesHistory(clientID)
	result := make([]dto.BookingSummary, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, dto.ConvertBookingSummary(b, client))
	}
	return result, nil
}

// ============================================================
// Туры
// ============================================================

func (uc *AgencyUseCase) ListTours() []dto.TourResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	tours := uc.agency.Tours()
	result := make([]dto.TourResponse, 0, len(tours))
	for _, t := range tours {
		result = append(result, dto.ConvertTour(t))
	}
	return result
}

func (uc *AgencyUseCase) GetTour(id int64) (*dto.TourResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	t := uc.agency.TourByID(id)
	if t == nil {
		return nil, errors.ErrTourNotFound
	}
	resp := dto.ConvertTour(t)
	return &resp, nil
}

func (uc *AgencyUseCase) CreateTour(req dto.TourRequest) (*dto.TourResponse, error) {
	in, err := req.ToInput()
	if err != nil {
		return nil, errors.ErrInvalidRequest.WithMessage("invalid start date: %s", req.StartDate)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	t, err := uc.agency.AddTour(in)
	if err != nil {
		return nil, err
	}
	uc.touch()

	uc.logger.Info("Tour created", zap.Int64("tour_id", t.ID), zap.String("name", t.Name))
	resp := dto.ConvertTour(t)
	return &resp, nil
}

// UpdateTour - заявки по туру пересобирают документы под новые условия
func (uc *AgencyUseCase) UpdateTour(id int64, req dto.TourRequest) (*dto.TourResponse, error) {
	in, err := req.ToInput()
	if err != nil {
		return nil, errors.ErrInvalidRequest.WithMessage("invalid start date: %s", req.StartDate)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.agency.EditTour(id, in); err != nil {
		return nil, err
	}
	uc.touch()

	uc.logger.Info("Tour updated", zap.Int64("tour_id", id))
	resp := dto.ConvertTour(uc.agency.TourByID(id))
	return &resp, nil
}

func (uc *AgencyUseCase) DeleteTour(id int64) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.agency.DeleteTour(id); err != nil {
		uc.logger.Warn("Tour not deleted", zap.Int64("tour_id", id), zap.Error(err))
		return err
	}
	uc.touch()

	uc.logger.Info("Tour deleted", zap.Int64("tour_id", id))
	return nil
}

// DocumentTypes - каталог документов с описанием полей форм
func (uc *AgencyUseCase) DocumentTypes() []dto.DocumentTypeResponse {
	types := domain.AllDocumentTypes()
	result := make([]dto.DocumentTypeResponse, 0, len(types))
	for _, t := range types {
		result = append(result, dto.ConvertDocumentType(t))
	}
	return result
}
