// File: internal/handler/users/users.go
package users

import (
	"net/http"
	"strconv"

	"github.com/Grefendor/drinks/internal/api"
	"github.com/Grefendor/drinks/internal/handler"
	"github.com/Grefendor/drinks/internal/ledger"
	"github.com/Grefendor/drinks/internal/middleware"

	"github.com/labstack/echo/v4"
)

// @Summary     List users
// @Tags        users
// @Produce     json
// @Success     200 {array}  api.UserResponse
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(svc ledger.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := svc.ListUsers(c.Request().Context())
		if err != nil {
			return handler.LedgerError(c, err)
		}
		out := make([]api.UserResponse, 0, len(list))
		for _, u := range list {
			out = append(out, api.NewUserResponse(u))
		}
		return c.JSON(http.StatusOK, out)
	}
}

// @Summary     Create a new user
// @Description 建立使用者；PIN 不可與其他使用者重複
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       name     formData string  true  "使用者名稱"
// @Param       pin      formData string  true  "PIN"
// @Param       is_admin formData boolean false "是否為管理員"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [post]
func CreateUserHandler(svc ledger.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := svc.CreateUser(c.Request().Context(), req.Pin, req.Name, req.IsAdmin)
		if err != nil {
			return handler.LedgerError(c, err)
		}
		return c.JSON(http.StatusCreated, api.NewUserResponse(user))
	}
}

// UpdatePinHandler 依名稱更換 PIN，同名使用者超過一位時回傳 409
// @Summary     Change a user's PIN
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Param       name path     string true "使用者名稱"
// @Param       pin  formData string true "新 PIN"
// @Success     204
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{name}/pin [patch]
func UpdatePinHandler(svc ledger.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdatePinRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if err := svc.UpdatePin(c.Request().Context(), c.Param("name"), req.Pin); err != nil {
			return handler.LedgerError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// DeleteUserHandler 依名稱刪除使用者；不可刪除自己或最後一位 admin
// @Summary     Delete a user
// @Tags        users
// @Param       name path string true "使用者名稱"
// @Success     204
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/{name} [delete]
func DeleteUserHandler(svc ledger.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.CurrentUser(c)
		if err := svc.DeleteUser(c.Request().Context(), c.Param("name"), claims.UserID); err != nil {
			return handler.LedgerError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// DeleteUserByIDHandler 名稱重複時改以 id 刪除
// @Summary     Delete a user by id
// @Tags        users
// @Param       id path integer true "使用者 id"
// @Success     204
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/id/{id} [delete]
func DeleteUserByIDHandler(svc ledger.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user id"})
		}
		claims := middleware.CurrentUser(c)
		if err := svc.DeleteUserByID(c.Request().Context(), id, claims.UserID); err != nil {
			return handler.LedgerError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
