package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gardgear/internal/entities"
	"gardgear/internal/services"
	"gardgear/pkg/status"
	"gardgear/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(service services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: service, logger: logger}
}

// GetRequestsReport serves the aggregate stats as JSON, or the full
// request register as an XLSX workbook when ?format=xlsx is given.
func (c *ReportController) GetRequestsReport(ctx echo.Context) error {
	if ctx.QueryParam("format") == "xlsx" {
		rows, err := c.reportService.RequestRegister(ctx.Request().Context())
		if err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}
		return c.respondWithXLSX(ctx, rows)
	}

	report, err := c.reportService.RequestsReport(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, report)
}

var registerHeaders = []interface{}{
	"ID", "Subject", "Type", "Equipment", "Serial Number", "Team",
	"Technician", "Status", "Scheduled", "Due", "Hours", "Created", "Overdue",
}

func registerRowToSlice(row entities.RegisterRow) []interface{} {
	scheduled, due, hours := "", "", ""
	if row.ScheduledDate.Valid {
		scheduled = row.ScheduledDate.Time.Format(entities.WireDate)
	}
	if row.DueDate.Valid {
		due = row.DueDate.Time.Format(entities.WireDate)
	}
	if row.DurationHours.Valid {
		hours = fmt.Sprintf("%.2f", row.DurationHours.Float64)
	}
	overdue := ""
	if row.Overdue {
		overdue = "yes"
	}

	return []interface{}{
		row.ID, row.Subject, row.RequestType,
		row.EquipmentName.String, row.SerialNumber.String, row.TeamName.String,
		row.TechnicianName.String, status.Label(row.Status),
		scheduled, due, hours, row.CreatedAt.Format(entities.WireDate), overdue,
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, rows []entities.RegisterRow) error {
	f := excelize.NewFile()
	sheet := "Maintenance Requests"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &registerHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "M1", style)

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := registerRowToSlice(row)
		f.SetSheetRow(sheet, cell, &values)
	}
	f.SetColWidth(sheet, "B", "B", 40)
	f.SetColWidth(sheet, "D", "G", 22)
	f.SetColWidth(sheet, "I", "L", 12)

	fileName := fmt.Sprintf("maintenance_register_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
