package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/service-directory/internal/domain"
	"github.com/service-directory/internal/pkg/utils"
	"github.com/service-directory/internal/pkg/validator"
	"github.com/service-directory/internal/usecase"
	"github.com/service-directory/internal/usecase/dto"
	"go.uber.org/zap"
)

// AddressHandler - обработчик стран, административных делений и адресов
type AddressHandler struct {
	addressUC *usecase.AddressUseCase
	logger    *zap.Logger
}

// NewAddressHandler - создание нового AddressHandler
func NewAddressHandler(addressUC *usecase.AddressUseCase, logger *zap.Logger) *AddressHandler {
	return &AddressHandler{
		addressUC: addressUC,
		logger:    logger,
	}
}

// GetCountries godoc
// @Summary Список поддерживаемых стран
// @Description Возвращает каталог стран со схемами адресных уровней
// @Tags Addresses
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Country}
// @Router /api/v1/services/countries [get]
func (h *AddressHandler) GetCountries(c *fiber.Ctx) error {
	countries := h.addressUC.Countries()
	return utils.SendSuccess(c, countries, &utils.Meta{Total: len(countries)})
}

// GetDivisions godoc
// @Summary Административные деления страны
// @Description Без параметров возвращает все деления страны. root=true ограничивает корневыми, parent_id - прямыми детьми, level - одним уровнем иерархии
// @Tags Addresses
// @Produce json
// @Param code path string true "Код страны (ISO)"
// @Param root query bool false "Только корневые деления"
// @Param parent_id query int false "Прямые дети указанного деления"
// @Param level query int false "Деления одного уровня"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.AdministrativeDivision}
// @Router /api/v1/services/countries/{code}/divisions [get]
func (h *AddressHandler) GetDivisions(c *fiber.Ctx) error {
	countryCode := c.Params("code")

	if level := c.QueryInt("level", 0); level > 0 {
		divisions, err := h.addressUC.ListDivisionsByLevel(c.Context(), countryCode, level)
		if err != nil {
			return utils.SendError(c, err)
		}
		return utils.SendSuccess(c, divisions, &utils.Meta{Total: len(divisions)})
	}

	var parent *domain.DivisionParentFilter
	if c.QueryBool("root", false) {
		parent = domain.RootDivisions()
	} else if parentID := c.QueryInt("parent_id", 0); parentID > 0 {
		parent = domain.ChildrenOf(int64(parentID))
	}

	divisions, err := h.addressUC.ListDivisions(c.Context(), countryCode, parent)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, divisions, &utils.Meta{Total: len(divisions)})
}

// SearchDivisions godoc
// @Summary Поиск административных делений
// @Description Подстрочный поиск делений внутри страны с необязательным фильтром по типу
// @Tags Addresses
// @Produce json
// @Param country query string true "Код страны (ISO)"
// @Param q query string true "Поисковый запрос"
// @Param type query string false "Тип деления (province, district, ward...)"
// @Param limit query int false "Количество результатов" default(20)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.AdministrativeDivision}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/services/divisions/search [get]
func (h *AddressHandler) SearchDivisions(c *fiber.Ctx) error {
	countryCode := c.Query("country")
	term := c.Query("q")
	divisionType := c.Query("type")
	limit := c.QueryInt("limit", 20)

	divisions, err := h.addressUC.SearchDivisions(c.Context(), countryCode, term, divisionType, limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, divisions, &utils.Meta{Total: len(divisions)})
}

// FormatAddress godoc
// @Summary Форматирование адреса
// @Description Собирает отображаемый адрес по шаблону страны из уличного адреса и ссылок на деления
// @Tags Addresses
// @Accept json
// @Produce json
// @Param request body dto.FormatAddressRequest true "Адрес для форматирования"
// @Success 200 {object} utils.SuccessResponse{data=domain.FormattedAddress}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/services/format-address [post]
func (h *AddressHandler) FormatAddress(c *fiber.Ctx) error {
	var req dto.FormatAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.addressUC.Format(c.Context(), req.StreetAddress, req.AddressComponents, req.CountryCode)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// ValidateAddress godoc
// @Summary Валидация компонентов адреса
// @Description Проверяет компоненты адреса против схемы страны: обязательные уровни и целостность иерархии
// @Tags Addresses
// @Accept json
// @Produce json
// @Param request body dto.ValidateAddressRequest true "Компоненты адреса"
// @Success 200 {object} utils.SuccessResponse{data=domain.AddressValidation}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/services/validate-address [post]
func (h *AddressHandler) ValidateAddress(c *fiber.Ctx) error {
	var req dto.ValidateAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.addressUC.Validate(c.Context(), req.AddressComponents, req.CountryCode)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
