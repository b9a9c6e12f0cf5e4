package handler

import (
	"time"

	"github.com/tripnest/vacations-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses (documented for swag; rendering happens in the error handler).
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth / users ---

type registerRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=4"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	UserID    int64       `json:"user_id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	Token     string      `json:"token"`
}

type updateUserRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"     validate:"omitempty,email"`
	Password  *string `json:"password,omitempty"  validate:"omitempty,min=4"`
	Role      *int    `json:"role,omitempty"      validate:"omitempty,oneof=1 2"`
}

type emailExistsResponse struct {
	Exists bool `json:"exists"`
}

// --- Bans ---

type createBanRequest struct {
	Reason string `json:"reason"`
	Days   int    `json:"days" validate:"required,gt=0"`
}

type banStatusResponse struct {
	Banned bool        `json:"banned"`
	Info   *domain.Ban `json:"info"`
}

type unbanResponse struct {
	Deleted int64 `json:"deleted"`
}

// --- Countries ---

type countryRequest struct {
	Name string `json:"country_name" validate:"required"`
}

// --- Vacations ---

type vacationRequest struct {
	CountryID   int64     `json:"country_id"  validate:"required,gt=0"`
	Description string    `json:"description" validate:"required"`
	StartsAt    time.Time `json:"starts_at"   validate:"required"`
	EndsAt      time.Time `json:"ends_at"     validate:"required"`
	Price       float64   `json:"price"       validate:"gte=0,lte=10000"`
	Currency    string    `json:"currency"`
	ImageName   string    `json:"image_name"`
}

type likeCountResponse struct {
	VacationID int64 `json:"vacation_id"`
	Likes      int64 `json:"likes"`
}

type likedVacationsResponse struct {
	UserID      int64   `json:"user_id"`
	VacationIDs []int64 `json:"vacation_ids"`
}

type messageResponse struct {
	Message string `json:"message"`
}
