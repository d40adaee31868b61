package dto

import "github.com/service-directory/internal/domain"

// ValidateAddressRequest - проверка компонентов адреса против схемы страны
type ValidateAddressRequest struct {
	CountryCode       string                   `json:"country_code" validate:"required,min=2,max=3"`
	AddressComponents domain.AddressComponents `json:"address_components" validate:"required"`
}

// FormatAddressRequest - форматирование адреса по схеме страны
type FormatAddressRequest struct {
	CountryCode       string                   `json:"country_code" validate:"required,min=2,max=3"`
	StreetAddress     string                   `json:"street_address" validate:"required"`
	AddressComponents domain.AddressComponents `json:"address_components"`
}
