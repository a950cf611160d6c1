package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/travel-agency/internal/pkg/utils"
	"github.com/travel-agency/internal/usecase"
	"github.com/travel-agency/internal/usecase/dto"
)

// TourHandler - обработчик запросов по турам и каталогу документов
type TourHandler struct {
	agencyUC *usecase.AgencyUseCase
	logger   *zap.Logger
}

// NewTourHandler - создание нового TourHandler
func NewTourHandler(agencyUC *usecase.AgencyUseCase, logger *zap.Logger) *TourHandler {
	return &TourHandler{
		agencyUC: agencyUC,
		logger:   logger,
	}
}

// List godoc
// @Summary Список туров
// @Tags Tours
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.TourResponse}
// @Router /api/v1/tours [get]
func (h *TourHandler) List(c *fiber.Ctx) error {
	tours := h.agencyUC.ListTours()
	return utils.SendSuccess(c, tours, &utils.Meta{Total: len(tours)})
}

// Get godoc
// @Summary Тур по ID
// @Tags Tours
// @Produce json
// @Param id path int true "ID тура"
// @Success 200 {object} utils.SuccessResponse{data=dto.TourResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/tours/{id} [get]
func (h *TourHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	tour, err := h.agencyUC.GetTour(id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, tour, nil)
}

// Create godoc
// @Summary Создание тура
// @Description Пустой список способов проезда заменяется на Plane, Train
// @Tags Tours
// @Accept json
// @Produce json
// @Param request body dto.TourRequest true "Параметры тура"
// @Success 201 {object} utils.SuccessResponse{data=dto.TourResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/tours [post]
func (h *TourHandler) Create(c *fiber.Ctx) error {
	var req dto.TourRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	tour, err := h.agencyUC.CreateTour(req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, tour)
}

// Update godoc
// @Summary Редактирование тура
// @Description Документы всех заявок по туру пересобираются под новые условия
// @Tags Tours
// @Accept json
// @Produce json
// @Param id path int true "ID тура"
// @Param request body dto.TourRequest true "Параметры тура"
// @Success 200 {object} utils.SuccessResponse{data=dto.TourResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/tours/{id} [put]
func (h *TourHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.TourRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	tour, err := h.agencyUC.UpdateTour(id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, tour, nil)
}

// Delete godoc
// @Summary Удаление тура
// @Tags Tours
// @Param id path int true "ID тура"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/tours/{id} [delete]
func (h *TourHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.agencyUC.DeleteTour(id); err != nil {
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DocumentTypes godoc
// @Summary Каталог документов
// @Description Виды документов с описанием полей: шаблон проверки, маска ввода, обязательность
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.DocumentTypeResponse}
// @Router /api/v1/document-types [get]
func (h *TourHandler) DocumentTypes(c *fiber.Ctx) error {
	types := h.agencyUC.DocumentTypes()
	return utils.SendSuccess(c, types, &utils.Meta{Total: len(types)})
}
