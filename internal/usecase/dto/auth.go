package dto

import "github.com/service-directory/internal/domain"

// RegisterRequest - тело запроса регистрации
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest - тело запроса входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse - токен и профиль без хеша пароля
type AuthResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}
