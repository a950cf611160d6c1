package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/travel-agency/internal/pkg/utils"
	"github.com/travel-agency/internal/usecase"
	"github.com/travel-agency/internal/usecase/dto"
)

// ClientHandler - обработчик запросов по клиентам
type ClientHandler struct {
	agencyUC *usecase.AgencyUseCase
	logger   *zap.Logger
}

// NewClientHandler - создание нового ClientHandler
func NewClientHandler(agencyUC *usecase.AgencyUseCase, logger *zap.Logger) *ClientHandler {
	return &ClientHandler{
		agencyUC: agencyUC,
		logger:   logger,
	}
}

// List godoc
// @Summary Список клиентов
// @Description Возвращает всех клиентов или результат поиска без учёта регистра по ФИО, телефону и email
// @Tags Clients
// @Produce json
// @Param q query string false "Строка поиска"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.ClientResponse}
// @Router /api/v1/clients [get]
func (h *ClientHandler) List(c *fiber.Ctx) error {
	clients := h.agencyUC.ListClients(c.Query("q"))
	return utils.SendSuccess(c, clients, &utils.Meta{Total: len(clients)})
}

// Get godoc
// @Summary Клиент по ID
// @Tags Clients
// @Produce json
// @Param id path int true "ID клиента"
// @Success 200 {object} utils.SuccessResponse{data=dto.ClientResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/clients/{id} [get]
func (h *ClientHandler) Get(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	client, err := h.agencyUC.GetClient(id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, client, nil)
}

// Create godoc
// @Summary Создание клиента
// @Description Проверяет ФИО (кириллица), оба адреса и контакты. Пустой фактический адрес заменяется адресом регистрации.
// @Tags Clients
// @Accept json
// @Produce json
// @Param request body dto.ClientRequest true "Анкета клиента"
// @Success 201 {object} utils.SuccessResponse{data=dto.ClientResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var req dto.ClientRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	client, err := h.agencyUC.CreateClient(req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, client)
}

// Update godoc
// @Summary Редактирование клиента
// @Tags Clients
// @Accept json
// @Produce json
// @Param id path int true "ID клиента"
// @Param request body dto.ClientRequest true "Анкета клиента"
// @Success 200 {object} utils.SuccessResponse{data=dto.ClientResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/clients/{id} [put]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.ClientRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	client, err := h.agencyUC.UpdateClient(id, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, client, nil)
}

// Delete godoc
// @Summary Удаление клиента
// @Description Клиента, на которого ссылаются заявки, удалить нельзя (409)
// @Tags Clients
// @Param id path int true "ID клиента"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/clients/{id} [delete]
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.agencyUC.DeleteClient(id); err != nil {
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SalesHistory godoc
// @Summary История продаж клиента
// @Tags Clients
// @Produce json
// @Param id path int true "ID клиента"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.BookingSummary}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/clients/{id}/bookings [get]
func (h *ClientHandler) SalesHistory(c *fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	bookings, err := h.agencyUC.SalesHistory(id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, bookings, &utils.Meta{Total: len(bookings)})
}
