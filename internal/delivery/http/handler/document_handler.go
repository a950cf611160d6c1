package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/travel-agency/internal/domain"
	"github.com/travel-agency/internal/pkg/utils"
	"github.com/travel-agency/internal/usecase"
	"github.com/travel-agency/internal/usecase/dto"
)

// DocumentHandler - документы заявки и туристов.
// Маршруты без {idx} работают с документами заявки, с {idx} - с документами туриста.
type DocumentHandler struct {
	agencyUC *usecase.AgencyUseCase
	logger   *zap.Logger
}

// NewDocumentHandler - создание нового DocumentHandler
func NewDocumentHandler(agencyUC *usecase.AgencyUseCase, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		agencyUC: agencyUC,
		logger:   logger,
	}
}

type documentRef struct {
	bookingID int64
	owner     int
	index     int
}

func parseOwner(c *fiber.Ctx) (int64, int, error) {
	id, err := idParam(c, "id")
	if err != nil {
		return 0, 0, err
	}
	if c.Params("idx") == "" {
		return id, domain.BookingDocumentsOwner, nil
	}
	owner, err := indexParam(c, "idx")
	if err != nil {
		return 0, 0, err
	}
	return id, owner, nil
}

func parseDocumentRef(c *fiber.Ctx) (documentRef, error) {
	id, owner, err := parseOwner(c)
	if err != nil {
		return documentRef{}, err
	}
	index, err := indexParam(c, "doc")
	if err != nil {
		return documentRef{}, err
	}
	return documentRef{bookingID: id, owner: owner, index: index}, nil
}

// Get godoc
// @Summary Документ
// @Tags Documents
// @Produce json
// @Param id path int true "ID заявки"
// @Param idx path int true "Индекс туриста"
// @Param doc path int true "Индекс документа"
// @Success 200 {object} utils.SuccessResponse{data=dto.DocumentResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bookings/{id}/travelers/{idx}/documents/{doc} [get]
// @Router /api/v1/bookings/{id}/documents/{doc} [get]
func (h *DocumentHandler) Get(c *fiber.Ctx) error {
	ref, err := parseDocumentRef(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	doc, err := h.agencyUC.GetDocument(ref.bookingID, ref.owner, ref.index)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, doc, nil)
}

// Add godoc
// @Summary Добавление документа
// @Description Необязательный документ; один документ каждого вида на владельца
// @Tags Documents
// @Accept json
// @Produce json
// @Param id path int true "ID заявки"
// @Param idx path int true "Индекс туриста"
// @Param request body dto.AddDocumentRequest true "Код вида документа"
// @Success 200 {object} utils.SuccessResponse{data=dto.BookingResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bookings/{id}/travelers/{idx}/documents [post]
// @Router /api/v1/bookings/{id}/documents [post]
func (h *DocumentHandler) Add(c *fiber.Ctx) error {
	id, owner, err := parseOwner(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.AddDocumentRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	booking, err := h.agencyUC.AddDocument(id, owner, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, booking, nil)
}

// Remove godoc
// @Summary Удаление документа
// @Description Обязательный документ удалить нельзя
// @Tags Documents
// @Produce json
// @Param id path int true "ID заявки"
// @Param idx path int true "Индекс туриста"
// @Param doc path int true "Индекс документа"
// @Success 200 {object} utils.SuccessResponse{data=dto.BookingResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bookings/{id}/travelers/{idx}/documents/{doc} [delete]
// @Router /api/v1/bookings/{id}/documents/{doc} [delete]
func (h *DocumentHandler) Remove(c *fiber.Ctx) error {
	ref, err := parseDocumentRef(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	booking, err := h.agencyUC.RemoveDocument(ref.bookingID, ref.owner, ref.index)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, booking, nil)
}

// SetFields godoc
// @Summary Заполнение полей документа
// @Description Значения нормализуются по каталогу; статус становится Available при заполненных обязательных полях
// @Tags Documents
// @Accept json
// @Produce json
// @Param id path int true "ID заявки"
// @Param idx path int true "Индекс туриста"
// @Param doc path int true "Индекс документа"
// @Param request body dto.DocumentFieldsRequest true "Поля"
// @Success 200 {object} utils.SuccessResponse{data=dto.BookingResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bookings/{id}/travelers/{idx}/documents/{doc}/fields [put]
// @Router /api/v1/bookings/{id}/documents/{doc}/fields [put]
func (h *DocumentHandler) SetFields(c *fiber.Ctx) error {
	ref, err := parseDocumentRef(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.DocumentFieldsRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	booking, err := h.agencyUC.SetDocumentFields(ref.bookingID, ref.owner, ref.index, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, booking, nil)
}

// SetStatus godoc
// @Summary Статус документа
// @Tags Documents
// @Accept json
// @Produce json
// @Param id path int true "ID заявки"
// @Param idx path int true "Индекс туриста"
// @Param doc path int true "Индекс документа"
// @Param request body dto.DocumentStatusRequest true "Статус"
// @Success 200 {object} utils.SuccessResponse{data=dto.BookingResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/bookings/{id}/travelers/{idx}/documents/{doc}/status [put]
// @Router /api/v1/bookings/{id}/documents/{doc}/status [put]
func (h *DocumentHandler) SetStatus(c *fiber.Ctx) error {
	ref, err := parseDocumentRef(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.DocumentStatusRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	booking, err := h.agencyUC.SetDocumentStatus(ref.bookingID, ref.owner, ref.index, req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, booking, nil)
}

// Verify godoc
// @Summary Проверка документа
// @Description Документ отмечается проверенным только если все поля соответствуют шаблонам
// @Tags Documents
// @Produce json
// @Param id path int true "ID заявки"
// @Param idx path int true "Индекс туриста"
// @Param doc path int true "Индекс документа"
// @Success 200 {object} utils.SuccessResponse{data=dto.BookingResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/bookings/{id}/travelers/{idx}/documents/{doc}/verify [post]
// @Router /api/v1/bookings/{id}/documents/{doc}/verify [post]
func (h *DocumentHandler) Verify(c *fiber.Ctx) error {
	ref, err := parseDocumentRef(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	booking, err := h.agencyUC.VerifyDocument(ref.bookingID, ref.owner, ref.index)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, booking, nil)
}
