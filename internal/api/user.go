package api

import (
	"time"

	"github.com/Grefendor/drinks/internal/model"
)

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Name    string `form:"name" json:"name" validate:"required" example:"Bob"`
	Pin     string `form:"pin" json:"pin" validate:"required" example:"4321"`
	IsAdmin bool   `form:"is_admin" json:"is_admin" example:"false"`
}

// swagger:model api.UpdatePinRequest
type UpdatePinRequest struct {
	Pin string `form:"pin" json:"pin" validate:"required" example:"9999"`
}

// swagger:model api.UserResponse
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	Name      string    `json:"name" example:"Alice"`
	IsAdmin   bool      `json:"is_admin" example:"true"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u model.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, IsAdmin: u.IsAdmin, CreatedAt: u.CreatedAt}
}

// swagger:model api.SummaryResponse
type SummaryResponse struct {
	UserID int          `json:"user_id" example:"1"`
	Items  []SummaryRow `json:"items"`
}

type SummaryRow struct {
	ProductID   int    `json:"product_id" example:"3"`
	ProductName string `json:"product_name" example:"Club-Mate"`
	Count       int    `json:"count" example:"12"`
}
