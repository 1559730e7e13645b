package v1

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest DTO для регистрации пользователя
// @Description DTO для регистрации пользователя
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,e164"`
}

// LoginRequest DTO для входа
// @Description DTO для входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest DTO для частичного обновления профиля
// @Description DTO для частичного обновления профиля
type UpdateProfileRequest struct {
	Name            string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Phone           string `json:"phone,omitempty" validate:"omitempty,e164"`
	CurrentPassword string `json:"currentPassword,omitempty"`
	NewPassword     string `json:"newPassword,omitempty" validate:"omitempty,min=6"`
}

// UserResponse DTO с публичными данными пользователя
// @Description DTO с публичными данными пользователя
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Phone string    `json:"phone,omitempty"`
}

// AuthResponse DTO для ответа на регистрацию/вход
// @Description DTO для ответа на регистрацию/вход
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// ProfileResponse DTO для профиля: пользователь, его коты и репорты
// @Description DTO для профиля: пользователь, его коты и репорты
type ProfileResponse struct {
	ID      uuid.UUID         `json:"id"`
	Email   string            `json:"email"`
	Name    string            `json:"name"`
	Phone   string            `json:"phone,omitempty"`
	Cats    []*CatListItem    `json:"cats"`
	Reports []*ReportResponse `json:"reports"`
}

// CreateCatForm - поля multipart-формы создания кота. Location приходит
// строкой JSON "[latitude, longitude]" и валидируется отдельно.
type CreateCatForm struct {
	Name        string  `validate:"required,min=1,max=50"`
	Description string  `validate:"required,min=1,max=1000"`
	Status      string  `validate:"required,oneof=lost found"`
	Latitude    float64 `validate:"latitude"`
	Longitude   float64 `validate:"longitude"`
}

// AddReportForm - поля multipart-формы добавления репорта
type AddReportForm struct {
	Description string  `validate:"required,min=1,max=1000"`
	Latitude    float64 `validate:"latitude"`
	Longitude   float64 `validate:"longitude"`
}

// UpdateStatusRequest DTO для смены статуса кота
// @Description DTO для смены статуса кота
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=home lost found"`
}

// CatListItem DTO элемента списка котов с минимальной проекцией полей
// @Description DTO элемента списка котов
type CatListItem struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Position     [2]float64 `json:"position"`
	Status       string     `json:"status"`
	LastSeen     time.Time  `json:"lastSeen"`
	ThumbnailURL string     `json:"thumbnailUrl,omitempty"`
}

// Pagination DTO пагинации списка
// @Description DTO пагинации списка
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// CatListResponse DTO для ответа со списком котов
// @Description DTO для ответа со списком котов
type CatListResponse struct {
	Cats       []*CatListItem `json:"cats"`
	Pagination Pagination     `json:"pagination"`
}

// ReporterInfo DTO с данными автора репорта
// @Description DTO с данными автора репорта
type ReporterInfo struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ReportResponse DTO для ответа с репортом
// @Description DTO для ответа с репортом
type ReportResponse struct {
	ID          uuid.UUID     `json:"id"`
	CatID       uuid.UUID     `json:"catId"`
	Location    [2]float64    `json:"location"`
	Description string        `json:"description"`
	Timestamp   time.Time     `json:"timestamp"`
	Photos      []string      `json:"photos"`
	Reporter    *ReporterInfo `json:"reporter"`
}

// CatDetailResponse DTO для ответа с полной карточкой кота
// @Description DTO для ответа с полной карточкой кота
type CatDetailResponse struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Position    [2]float64        `json:"position"`
	Status      string            `json:"status"`
	LastSeen    time.Time         `json:"lastSeen"`
	Description string            `json:"description"`
	Photos      []string          `json:"photos"`
	Reports     []*ReportResponse `json:"reports"`
}
