package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/travel-agency/internal/pkg/utils"
	"github.com/travel-agency/internal/usecase"
	"github.com/travel-agency/internal/usecase/dto"
)

// BookingHandler - обработчик запросов по заявкам
type BookingHandler struct {
	agencyUC *usecase.AgencyUseCase
	logger   *zap.Logger
}

// NewBookingHandler - создание нового BookingHandler
func NewBookingHandler(agencyUC *usecase.AgencyUseCase, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		agencyUC: agencyUC,
		logger:   logger,
	}
}

// List godoc
// @Summary Список заявок
// @Tags Bookings
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.BookingSummary}
// @Router /api/v1/bookings [get]
func (h *BookingHandler) List(c *fiber.Ctx) error {
	bookings := h.agencyUC.ListBookings()
	return utils.SendSuccess(c, bookings, &utils.Meta{Total: len(bookings)})
}

// Get godoc
// @Summary Заявка по ID
// @Description Заявка с туристами, животными, документами и доступными классами проезда
// @Tags Bookings
// @Produce json
// @Param id path int true "ID заявки"
// @Success 200 {object} utils.SuccessResponse{data=dto.BookingResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bookings/{id} [get]
func (h *BookingHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	booking, err := h.agencyUC.GetBooking(id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, booking, nil)
}

// Create godoc
// @Summary Создание заявки
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Клиент и тур"
// @Success 201 {object} utils.SuccessResponse{data=dto.BookingResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bookings [post]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBookingRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	booking, err := h.agencyUC.CreateBooking(req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, booking)
}

// Delete godoc
// @Summary Удаление заявки
// @Tags Bookings
// @Param id path int true "ID заявки"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.agencyUC.DeleteBooking(id); err != nil {
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddTraveler godoc
// @Summary Добавление туриста
// @Description Для ребёнка обязательна дата рождения, возраст не больше 18 лет. Документы заявки пересобираются.
// @Tags Travelers
// @Accept json
// @Produce json
// @Param id path int true "ID заявки"
// @Param request body dto.TravelerRequest true "Турист"
// @Success 200 {object} utils.SuccessResponse{data=dto.BookingResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/bookings/{id}/travelers [post]
func (h *BookingHandler) AddTraveler(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.TravelerRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	booking, err := h.agencyUC.AddTraveler(id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, booking, nil)
}

// UpdateTraveler godoc
// @Summary Изменение туриста
// @Description Пустые поля не меняются; has_benefit переключает льготу с пересборкой документов
// @Tags Travelers
// @Accept json
// @Produce json
// @Param id path int true "ID заявки"
// @Param idx path int true "Индекс туриста"
// @Param request body dto.UpdateTravelerRequest true "Изменения"
// @Success 200 {object} utils.SuccessResponse{data=dto.BookingResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bookings/{id}/travelers/{idx} [patch]
func (h *BookingHandler) UpdateTraveler(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}
	idx, err := indexParam(c, "idx")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateTravelerRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	booking, err := h.agencyUC.UpdateTraveler(id, idx, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, booking, nil)
}

// RemoveTraveler godoc
// @Summary Удаление туриста
// @Tags Travelers
// @Produce json
// @Param id path int true "ID заявки"
// @Param idx path int true "Индекс туриста"
// @Success 200 {object} utils.SuccessResponse{data=dto.BookingResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bookings/{id}/travelers/{idx} [delete]
func (h *BookingHandler) RemoveTraveler(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}
	idx, err := indexParam(c, "idx")
	if err != nil {
		return utils.SendError(c, err)
	}

	booking, err := h.agencyUC.RemoveTraveler(id, idx)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, booking, nil)
}

// AddAnimal godoc
// @Summary Добавление животного
// @Tags Animals
// @Accept json
// @Produce json
// @Param id path int true "ID заявки"
// @Param request body dto.AnimalRequest true "Животное"
// @Success 200 {object} utils.SuccessResponse{data=dto.BookingResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bookings/{id}/animals [post]
func (h *BookingHandler) AddAnimal(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.AnimalRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	booking, err := h.agencyUC.AddAnimal(id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, booking, nil)
}

// RemoveAnimal godoc
// @Summary Удаление животного
// @Tags Animals
// @Produce json
// @Param id path int true "ID заявки"
// @Param idx path int true "Индекс животного"
// @Success 200 {object} utils.SuccessResponse{data=dto.BookingResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bookings/{id}/animals/{idx} [delete]
func (h *BookingHandler) RemoveAnimal(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}
	idx, err := indexParam(c, "idx")
	if err != nil {
		return utils.SendError(c, err)
	}

	booking, err := h.agencyUC.RemoveAnimal(id, idx)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, booking, nil)
}

// SetTravel godoc
// @Summary Способ проезда и класс
// @Description Способ, не разрешённый туром, заменяется первым разрешённым; недопустимый класс заменяется первым из списка
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path int true "ID заявки"
// @Param request body dto.TravelRequest true "Способ и класс"
// @Success 200 {object} utils.SuccessResponse{data=dto.BookingResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bookings/{id}/travel [put]
func (h *BookingHandler) SetTravel(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.TravelRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	booking, err := h.agencyUC.SetTravel(id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, booking, nil)
}

// SetStatus godoc
// @Summary Статус заявки
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path int true "ID заявки"
// @Param request body dto.BookingStatusRequest true "Статус"
// @Success 200 {object} utils.SuccessResponse{data=dto.BookingResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bookings/{id}/status [put]
func (h *BookingHandler) SetStatus(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.BookingStatusRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	booking, err := h.agencyUC.SetStatus(id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, booking, nil)
}

// Warnings godoc
// @Summary Предупреждения по заявке
// @Description Недостающие проверенные документы и проблемы с данными туристов
// @Tags Bookings
// @Produce json
// @Param id path int true "ID заявки"
// @Success 200 {object} utils.SuccessResponse{data=dto.WarningsResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bookings/{id}/warnings [get]
func (h *BookingHandler) Warnings(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	warnings, err := h.agencyUC.Warnings(id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, warnings, nil)
}

// Cost godoc
// @Summary Стоимость заявки
// @Tags Bookings
// @Produce json
// @Param id path int true "ID заявки"
// @Success 200 {object} utils.SuccessResponse{data=dto.CostSummaryResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bookings/{id}/cost [get]
func (h *BookingHandler) Cost(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	cost, err := h.agencyUC.CostSummary(id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, cost, nil)
}

// Submit godoc
// @Summary Оформление заявки
// @Description Проверяет, что есть туристы и все обязательные документы проверены, затем сохраняет снапшот
// @Tags Bookings
// @Produce json
// @Param id path int true "ID заявки"
// @Success 200 {object} utils.SuccessResponse{data=dto.SnapshotResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/bookings/{id}/submit [post]
func (h *BookingHandler) Submit(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.agencyUC.SubmitBooking(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Revision: result.Revision})
}
