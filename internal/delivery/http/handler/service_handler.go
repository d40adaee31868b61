package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/service-directory/internal/delivery/http/middleware"
	"github.com/service-directory/internal/pkg/errors"
	"github.com/service-directory/internal/pkg/utils"
	"github.com/service-directory/internal/usecase"
	"github.com/service-directory/internal/usecase/dto"
	"go.uber.org/zap"
)

// ServiceHandler - обработчик поиска и чтения сервисов
type ServiceHandler struct {
	searchUC *usecase.SearchUseCase
	logger   *zap.Logger
}

// NewServiceHandler - создание нового ServiceHandler
func NewServiceHandler(searchUC *usecase.SearchUseCase, logger *zap.Logger) *ServiceHandler {
	return &ServiceHandler{
		searchUC: searchUC,
		logger:   logger,
	}
}

// Search godoc
// @Summary Радиусный поиск сервисов
// @Description Ищет активные сервисы в радиусе от точки с фильтрами по типу и названию, сортировкой по дистанции и пагинацией
// @Tags Services
// @Produce json
// @Param latitude query number true "Широта точки поиска"
// @Param longitude query number true "Долгота точки поиска"
// @Param radius query number false "Радиус в километрах (0-50]" default(10)
// @Param service_type query int false "ID типа сервиса"
// @Param name query string false "Подстрока названия"
// @Param limit query int false "Размер страницы (1-100)" default(20)
// @Param page query int false "Номер страницы" default(1)
// @Success 200 {object} utils.SuccessResponse{data=dto.SearchServicesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/services/search [get]
func (h *ServiceHandler) Search(c *fiber.Ctx) error {
	params := dto.SearchServicesParams{
		Latitude:    c.Query("latitude"),
		Longitude:   c.Query("longitude"),
		Radius:      c.Query("radius"),
		ServiceType: c.Query("service_type"),
		Name:        c.Query("name"),
		Limit:       c.Query("limit"),
		Page:        c.Query("page"),
	}

	query, err := h.searchUC.ValidateSearchParams(params)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.searchUC.Search(c.Context(), query, middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
		Page:  result.Page,
		Limit: result.Limit,
	})
}

// GetByID godoc
// @Summary Получение сервиса по ID
// @Tags Services
// @Produce json
// @Param serviceId path int true "ID сервиса"
// @Success 200 {object} utils.SuccessResponse{data=dto.ServiceDetail}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/services/{serviceId} [get]
func (h *ServiceHandler) GetByID(c *fiber.Ctx) error {
	serviceID, err := c.ParamsInt("serviceId")
	if err != nil || serviceID <= 0 {
		return utils.SendError(c, errors.ErrInvalidServiceID)
	}

	result, err := h.searchUC.GetByID(c.Context(), int64(serviceID), middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// GetTypes godoc
// @Summary Список типов сервисов
// @Tags Services
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.ServiceType}
// @Router /api/v1/services/types [get]
func (h *ServiceHandler) GetTypes(c *fiber.Ctx) error {
	types, err := h.searchUC.ListServiceTypes(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, types, &utils.Meta{Total: len(types)})
}

// GetByType godoc
// @Summary Сервисы одного типа
// @Tags Services
// @Produce json
// @Param typeId path int true "ID типа сервиса"
// @Param limit query int false "Размер страницы" default(20)
// @Param page query int false "Номер страницы" default(1)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.EnrichedService}
// @Failure 400 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/services/type/{typeId} [get]
func (h *ServiceHandler) GetByType(c *fiber.Ctx) error {
	typeID, err := c.ParamsInt("typeId")
	if err != nil || typeID <= 0 {
		return utils.SendError(c, errors.ErrInvalidServiceType)
	}

	limit := c.QueryInt("limit", 20)
	page := c.QueryInt("page", 1)

	services, err := h.searchUC.GetByType(c.Context(), int64(typeID), limit, page, middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, services, &utils.Meta{Total: len(services)})
}

// GetPopular godoc
// @Summary Популярные сервисы
// @Description Возвращает сервисы, отсортированные по рейтингу и дате создания
// @Tags Services
// @Produce json
// @Param limit query int false "Количество результатов" default(10)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.EnrichedService}
// @Security api_key
// @Router /api/v1/services/popular [get]
func (h *ServiceHandler) GetPopular(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)

	services, err := h.searchUC.GetPopular(c.Context(), limit, middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, services, &utils.Meta{Total: len(services)})
}

// SearchByAddress godoc
// @Summary Поиск сервисов по адресу
// @Description Подстрочный поиск только по полю уличного адреса
// @Tags Services
// @Produce json
// @Param q query string true "Поисковый запрос"
// @Param limit query int false "Количество результатов" default(20)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.EnrichedService}
// @Failure 400 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/services/search-address [get]
func (h *ServiceHandler) SearchByAddress(c *fiber.Ctx) error {
	term := c.Query("q")
	limit := c.QueryInt("limit", 20)

	services, err := h.searchUC.SearchByAddress(c.Context(), term, limit, middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, services, &utils.Meta{Total: len(services)})
}
