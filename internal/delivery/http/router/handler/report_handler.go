package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"ledger/internal/delivery/http/response"
	"ledger/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// ReportHandler holds dependencies for the management report handlers.
type ReportHandler struct {
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler.
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// SellerHistory handles the per-salesperson sales report.
func (h *ReportHandler) SellerHistory(c echo.Context) error {
	window, err := windowFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "from and to must be formatted as YYYY-MM-DD")
	}

	rows, err := h.reportUC.SellerHistory(c.Request().Context(), window)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rows, "Seller history retrieved successfully")
}

// AverageInventoryTime handles the time-in-inventory report.
func (h *ReportHandler) AverageInventoryTime(c echo.Context) error {
	window, err := windowFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "from and to must be formatted as YYYY-MM-DD")
	}

	report, err := h.reportUC.AverageInventoryTime(c.Request().Context(), window)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report, "Inventory time retrieved successfully")
}

// PartsStatistics handles the per-vendor parts report.
func (h *ReportHandler) PartsStatistics(c echo.Context) error {
	rows, err := h.reportUC.PartsStatistics(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rows, "Parts statistics retrieved successfully")
}

// MonthlySales handles the per-month sales summary.
func (h *ReportHandler) MonthlySales(c echo.Context) error {
	window, err := windowFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "from and to must be formatted as YYYY-MM-DD")
	}

	rows, err := h.reportUC.MonthlySales(c.Request().Context(), window)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rows, "Monthly sales retrieved successfully")
}

// MonthlyDrilldown handles the per-salesperson breakdown of one month.
func (h *ReportHandler) MonthlyDrilldown(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "year must be a number")
	}

	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "month must be a number")
	}

	rows, err := h.reportUC.MonthlyDrilldown(c.Request().Context(), usecase.MonthlyDrilldownInput{
		Year:  year,
		Month: month,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rows, "Monthly drilldown retrieved successfully")
}

// PricePerCondition handles the average purchase price pivot.
func (h *ReportHandler) PricePerCondition(c echo.Context) error {
	rows, err := h.reportUC.PricePerCondition(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rows, "Price per condition retrieved successfully")
}

// windowFromQuery parses the optional from/to report bounds.
func windowFromQuery(c echo.Context) (usecase.ReportWindowInput, error) {
	var window usecase.ReportWindowInput

	if raw := c.QueryParam("from"); raw != "" {
		from, err := time.Parse(dateLayout, raw)
		if err != nil {
			return window, err
		}
		window.From = from
	}
	if raw := c.QueryParam("to"); raw != "" {
		to, err := time.Parse(dateLayout, raw)
		if err != nil {
			return window, err
		}
		window.To = to
	}

	return window, nil
}
