package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/travel-agency/internal/pkg/errors"
	"github.com/travel-agency/internal/pkg/utils"
	"github.com/travel-agency/internal/usecase"
)

// SnapshotHandler - сохранение, загрузка, экспорт и импорт снапшота
type SnapshotHandler struct {
	agencyUC *usecase.AgencyUseCase
	logger   *zap.Logger
}

// NewSnapshotHandler - создание нового SnapshotHandler
func NewSnapshotHandler(agencyUC *usecase.AgencyUseCase, logger *zap.Logger) *SnapshotHandler {
	return &SnapshotHandler{
		agencyUC: agencyUC,
		logger:   logger,
	}
}

// Status godoc
// @Summary Состояние данных
// @Description Текущая ревизия и наличие несохранённых изменений
// @Tags Snapshot
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/snapshot [get]
func (h *SnapshotHandler) Status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"revision": h.agencyUC.Revision(),
		"dirty":    h.agencyUC.Dirty(),
	})
}

// Save godoc
// @Summary Сохранение снапшота
// @Tags Snapshot
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.SnapshotResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/snapshot/save [post]
func (h *SnapshotHandler) Save(c *fiber.Ctx) error {
	result, err := h.agencyUC.Save(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Revision: result.Revision})
}

// Load godoc
// @Summary Загрузка снапшота из хранилища
// @Description При ошибке текущие данные не меняются
// @Tags Snapshot
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.SnapshotResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/snapshot/load [post]
func (h *SnapshotHandler) Load(c *fiber.Ctx) error {
	result, err := h.agencyUC.Load(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Revision: result.Revision})
}

// Export godoc
// @Summary Экспорт снапшота
// @Description Документ в формате файла сохранения
// @Tags Snapshot
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/snapshot/export [get]
func (h *SnapshotHandler) Export(c *fiber.Ctx) error {
	data, err := h.agencyUC.Export()
	if err != nil {
		return utils.SendError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="agency.json"`)
	return c.Send(data)
}

// Import godoc
// @Summary Импорт снапшота
// @Description Заменяет текущие данные присланным документом. При ошибке данные не меняются.
// @Tags Snapshot
// @Accept json
// @Produce json
// @Param request body object true "Снапшот"
// @Success 200 {object} utils.SuccessResponse{data=dto.SnapshotResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/snapshot/import [post]
func (h *SnapshotHandler) Import(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("empty snapshot"))
	}

	// тело копируется: буфер fiber переиспользуется после ответа
	data := append([]byte(nil), body...)
	result, err := h.agencyUC.Import(data)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Revision: result.Revision})
}
