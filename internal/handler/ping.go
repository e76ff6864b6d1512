package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Grefendor/drinks/internal/cache"
	"github.com/Grefendor/drinks/internal/database"

	"github.com/labstack/echo/v4"
)

const (
	healthTimeout = 2 * time.Second
	healthKey     = "health:ping"
)

// PingResponse 各相依元件狀態，"ok" 或錯誤摘要
// swagger:model PingResponse
type PingResponse struct {
	Message  string `json:"message" example:"pong"`
	Database string `json:"database" example:"ok"`
	Cache    string `json:"cache" example:"ok"`
}

// PingHandler 健康檢查（需通過認證）
// @Summary     Health Check
// @Description 檢查資料庫與 Redis；任一異常回傳 503 與各元件狀態
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     503 {object} PingResponse
// @Security    ApiKeyAuth
// @Router      /ping [get]
func PingHandler(db database.DB, c cache.Cache) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), healthTimeout)
		defer cancel()

		resp := PingResponse{Message: "pong", Database: "ok", Cache: "ok"}
		status := http.StatusOK
		if err := db.Ping(reqCtx); err != nil {
			ctx.Logger().Warnf("health: database: %v", err)
			resp.Database = "unavailable"
			status = http.StatusServiceUnavailable
		}
		if err := c.Set(reqCtx, healthKey, time.Now().Unix(), 10*time.Second).Err(); err != nil {
			ctx.Logger().Warnf("health: cache: %v", err)
			resp.Cache = "unavailable"
			status = http.StatusServiceUnavailable
		}
		if status != http.StatusOK {
			resp.Message = "degraded"
		}
		return ctx.JSON(status, resp)
	}
}
