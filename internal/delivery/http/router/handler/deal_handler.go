package handler

import (
	"log/slog"
	"net/http"
	"time"

	"ledger/internal/delivery/http/response"
	"ledger/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// dateLayout is the wire format for transaction dates.
const dateLayout = "2006-01-02"

// DealHandlerParams holds dependencies for DealHandler, injected by Fx.
type DealHandlerParams struct {
	fx.In

	DealUC usecase.DealUsecase
	Logger *slog.Logger
}

// DealHandler holds dependencies for sale and purchase handlers.
type DealHandler struct {
	dealUC usecase.DealUsecase
	logger *slog.Logger
}

// NewDealHandler is the constructor for DealHandler.
func NewDealHandler(params DealHandlerParams) *DealHandler {
	return &DealHandler{
		dealUC: params.DealUC,
		logger: params.Logger,
	}
}

// RecordSaleRequest represents the request body for closing a sale.
type RecordSaleRequest struct {
	CustomerID int64   `json:"customer_id" validate:"required"`
	SalePrice  float64 `json:"sale_price" validate:"required,gt=0"`
	SoldOn     string  `json:"sold_on"`
}

// RecordPurchaseRequest represents the request body for recording a purchase.
type RecordPurchaseRequest struct {
	CustomerID    int64   `json:"customer_id" validate:"required"`
	PurchasePrice float64 `json:"purchase_price" validate:"required,gt=0"`
	PurchasedOn   string  `json:"purchased_on"`
}

// AcquireVehicleRequest represents the request body for the combined
// vehicle-plus-purchase intake.
type AcquireVehicleRequest struct {
	Vehicle  VehicleRequest        `json:"vehicle" validate:"required"`
	Purchase RecordPurchaseRequest `json:"purchase" validate:"required"`
}

// RecordSale handles closing a sale on the vehicle in the path. The selling
// staff member is taken from the access token, never from the body.
func (h *DealHandler) RecordSale(c echo.Context) error {
	username, err := callerUsername(c)
	if err != nil {
		return err
	}

	var req RecordSaleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sale input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	soldOn, err := parseDate(req.SoldOn)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "sold_on must be formatted as YYYY-MM-DD")
	}

	sale, err := h.dealUC.RecordSale(c.Request().Context(), usecase.RecordSaleInput{
		VIN:        c.Param("vin"),
		Username:   username,
		CustomerID: req.CustomerID,
		SalePrice:  req.SalePrice,
		SoldOn:     soldOn,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, sale, "Sale recorded successfully")
}

// RecordPurchase handles recording a purchase of the vehicle in the path.
func (h *DealHandler) RecordPurchase(c echo.Context) error {
	username, err := callerUsername(c)
	if err != nil {
		return err
	}

	var req RecordPurchaseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	purchasedOn, err := parseDate(req.PurchasedOn)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "purchased_on must be formatted as YYYY-MM-DD")
	}

	purchase, err := h.dealUC.RecordPurchase(c.Request().Context(), usecase.RecordPurchaseInput{
		VIN:           c.Param("vin"),
		Username:      username,
		CustomerID:    req.CustomerID,
		PurchasePrice: req.PurchasePrice,
		PurchasedOn:   purchasedOn,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, purchase, "Purchase recorded successfully")
}

// AcquireVehicle handles the combined intake: the vehicle and its purchase
// succeed or fail together.
func (h *DealHandler) AcquireVehicle(c echo.Context) error {
	username, err := callerUsername(c)
	if err != nil {
		return err
	}

	var req AcquireVehicleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid acquisition input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	purchasedOn, err := parseDate(req.Purchase.PurchasedOn)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "purchased_on must be formatted as YYYY-MM-DD")
	}

	purchase, err := h.dealUC.AcquireVehicle(c.Request().Context(), usecase.AcquireVehicleInput{
		Vehicle: req.Vehicle.toInput(),
		Purchase: usecase.RecordPurchaseInput{
			VIN:           req.Vehicle.VIN,
			Username:      username,
			CustomerID:    req.Purchase.CustomerID,
			PurchasePrice: req.Purchase.PurchasePrice,
			PurchasedOn:   purchasedOn,
		},
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, purchase, "Vehicle acquired successfully")
}

// GetSaleDetails handles the sale detail view for one vehicle.
func (h *DealHandler) GetSaleDetails(c echo.Context) error {
	details, err := h.dealUC.GetSaleDetails(c.Request().Context(), c.Param("vin"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, details, "Sale details retrieved successfully")
}

// GetPurchaseDetails handles the purchase detail view for one vehicle.
func (h *DealHandler) GetPurchaseDetails(c echo.Context) error {
	details, err := h.dealUC.GetPurchaseDetails(c.Request().Context(), c.Param("vin"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, details, "Purchase details retrieved successfully")
}

// parseDate parses an optional YYYY-MM-DD date. Empty means today.
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	return time.Parse(dateLayout, raw)
}
