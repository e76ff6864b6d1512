package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/Grefendor/drinks/internal/api"
	"github.com/Grefendor/drinks/internal/ledger"
	"github.com/Grefendor/drinks/internal/report"
	"github.com/Grefendor/drinks/internal/service"
	"github.com/Grefendor/drinks/internal/worker"

	"github.com/labstack/echo/v4"
)

const exportFilename = "latest_report.pdf"

var (
	collectReport = report.Collect
	renderReport  = report.Render
)

// ExportHandler 以 admin PIN 下載 PDF 報表
// @Summary     Download report
// @Description 驗證 admin PIN 後回傳消費、庫存與使用者 PDF 報表
// @Tags        reports
// @Accept      application/x-www-form-urlencoded
// @Produce     application/pdf
// @Param       pin formData string true "Admin PIN"
// @Success     200 {file}   binary
// @Failure     403 {object} api.ErrorResponse
// @Failure     429 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Router      /export [post]
func ExportHandler(svc ledger.Service, limiter *service.AttemptLimiter, pool worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ExportRequest
		if err := c.Bind(&req); err != nil || req.Pin == "" {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "Unauthorized"})
		}

		user, err := AuthenticatePin(c, svc, limiter, req.Pin)
		if errors.Is(err, ledger.ErrNotFound) || (err == nil && !user.IsAdmin) {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "Unauthorized"})
		}
		if err != nil {
			return LedgerError(c, err)
		}

		ctx := c.Request().Context()
		pdf, err := worker.Do(ctx, pool, func() ([]byte, error) {
			data, err := collectReport(ctx, svc)
			if err != nil {
				return nil, err
			}
			var buf bytes.Buffer
			if err := renderReport(&buf, data); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		})
		if err != nil {
			return LedgerError(c, err)
		}

		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+exportFilename+`"`)
		return c.Blob(http.StatusOK, "application/pdf", pdf)
	}
}

// ConsumptionHandler 回傳 JSON 消費報表
// @Summary     Consumption report
// @Tags        reports
// @Produce     json
// @Success     200 {array}  api.ReportRow
// @Failure     403 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reports/consumption [get]
func ConsumptionHandler(svc ledger.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		rows, err := svc.ConsumptionReport(c.Request().Context())
		if err != nil {
			return LedgerError(c, err)
		}
		out := make([]api.ReportRow, 0, len(rows))
		for _, r := range rows {
			out = append(out, api.ReportRow{
				UserID:      r.UserID,
				UserName:    r.UserName,
				ProductID:   r.ProductID,
				ProductName: r.ProductName,
				Count:       r.Count,
				Price:       r.Price,
				Cost:        r.Cost,
			})
		}
		return c.JSON(http.StatusOK, out)
	}
}
