package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/service-directory/internal/delivery/http/middleware"
	"github.com/service-directory/internal/pkg/utils"
	"github.com/service-directory/internal/usecase"
	"github.com/service-directory/internal/usecase/dto"
	"go.uber.org/zap"
)

// FavoriteHandler - обработчик избранных сервисов
type FavoriteHandler struct {
	favoriteUC *usecase.FavoriteUseCase
	logger     *zap.Logger
}

// NewFavoriteHandler - создание нового FavoriteHandler
func NewFavoriteHandler(favoriteUC *usecase.FavoriteUseCase, logger *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: favoriteUC,
		logger:     logger,
	}
}

// List godoc
// @Summary Список избранного пользователя
// @Description Возвращает страницу избранных сервисов, новые первыми
// @Tags Favorites
// @Produce json
// @Param limit query int false "Размер страницы" default(20)
// @Param page query int false "Номер страницы" default(1)
// @Success 200 {object} utils.SuccessResponse{data=dto.FavoriteListResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/favorites [get]
func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	userID := middleware.MustUserID(c)
	limit := c.QueryInt("limit", 20)
	page := c.QueryInt("page", 1)

	result, err := h.favoriteUC.List(c.Context(), userID, limit, page)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
		Page:  result.Page,
		Limit: result.Limit,
	})
}

// Add godoc
// @Summary Добавление сервиса в избранное
// @Tags Favorites
// @Accept json
// @Produce json
// @Param request body dto.AddFavoriteRequest true "ID сервиса"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/favorites [post]
func (h *FavoriteHandler) Add(c *fiber.Ctx) error {
	userID := middleware.MustUserID(c)

	var req dto.AddFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	serviceID, err := h.favoriteUC.ValidateRequest(req)
	if err != nil {
		return utils.SendError(c, err)
	}

	favorite, err := h.favoriteUC.Add(c.Context(), userID, serviceID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, fiber.Map{
		"message":  usecase.MsgFavoriteAdded,
		"favorite": favorite,
	})
}

// Remove godoc
// @Summary Удаление сервиса из избранного
// @Tags Favorites
// @Produce json
// @Param serviceId path int true "ID сервиса"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/favorites/{serviceId} [delete]
func (h *FavoriteHandler) Remove(c *fiber.Ctx) error {
	userID := middleware.MustUserID(c)

	serviceID, err := h.favoriteUC.ValidateServiceID(c.Params("serviceId"))
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.favoriteUC.Remove(c.Context(), userID, serviceID); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{
		"message": usecase.MsgFavoriteRemoved,
	}, nil)
}

// Toggle godoc
// @Summary Переключение избранного
// @Description Добавляет сервис в избранное либо убирает, в зависимости от текущего состояния
// @Tags Favorites
// @Produce json
// @Param serviceId path int true "ID сервиса"
// @Success 200 {object} utils.SuccessResponse{data=dto.ToggleFavoriteResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/favorites/{serviceId}/toggle [put]
func (h *FavoriteHandler) Toggle(c *fiber.Ctx) error {
	userID := middleware.MustUserID(c)

	serviceID, err := h.favoriteUC.ValidateServiceID(c.Params("serviceId"))
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.favoriteUC.Toggle(c.Context(), userID, serviceID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Status godoc
// @Summary Статус сервиса в избранном
// @Tags Favorites
// @Produce json
// @Param serviceId path int true "ID сервиса"
// @Success 200 {object} utils.SuccessResponse{data=dto.FavoriteStatusResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/favorites/{serviceId}/status [get]
func (h *FavoriteHandler) Status(c *fiber.Ctx) error {
	userID := middleware.MustUserID(c)

	serviceID, err := h.favoriteUC.ValidateServiceID(c.Params("serviceId"))
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.favoriteUC.Status(c.Context(), userID, serviceID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Clear godoc
// @Summary Очистка избранного
// @Tags Favorites
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/favorites [delete]
func (h *FavoriteHandler) Clear(c *fiber.Ctx) error {
	userID := middleware.MustUserID(c)

	if err := h.favoriteUC.Clear(c.Context(), userID); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{
		"message": "Favorites cleared",
	}, nil)
}

// Stats godoc
// @Summary Статистика избранного по сервису
// @Description Сколько пользователей добавили сервис в избранное
// @Tags Favorites
// @Produce json
// @Param serviceId path int true "ID сервиса"
// @Success 200 {object} utils.SuccessResponse{data=dto.FavoriteStatsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/favorites/{serviceId}/stats [get]
func (h *FavoriteHandler) Stats(c *fiber.Ctx) error {
	serviceID, err := h.favoriteUC.ValidateServiceID(c.Params("serviceId"))
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.favoriteUC.Stats(c.Context(), serviceID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
