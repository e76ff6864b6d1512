package api

import "time"

// swagger:model api.LoginRequest
type LoginRequest struct {
	Pin string `form:"pin" json:"pin" validate:"required" example:"1234"`
}

// swagger:model api.LoginResponse
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type" example:"Bearer"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

// SetupRequest 首次啟動建立 admin
// swagger:model api.SetupRequest
type SetupRequest struct {
	Name string `form:"name" json:"name" validate:"required" example:"Alice"`
	Pin  string `form:"pin" json:"pin" validate:"required" example:"1234"`
}

// swagger:model api.ExportRequest
type ExportRequest struct {
	Pin string `form:"pin" validate:"required" example:"1234"`
}
