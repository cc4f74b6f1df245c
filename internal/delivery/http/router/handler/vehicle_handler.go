package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"ledger/internal/delivery/http/response"
	"ledger/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VehicleHandlerParams holds dependencies for VehicleHandler, injected by Fx.
type VehicleHandlerParams struct {
	fx.In

	InventoryUC usecase.InventoryUsecase
	Logger      *slog.Logger
}

// VehicleHandler holds dependencies for inventory-related handlers.
type VehicleHandler struct {
	inventoryUC usecase.InventoryUsecase
	logger      *slog.Logger
}

// NewVehicleHandler is the constructor for VehicleHandler.
func NewVehicleHandler(params VehicleHandlerParams) *VehicleHandler {
	return &VehicleHandler{
		inventoryUC: params.InventoryUC,
		logger:      params.Logger,
	}
}

// VehicleRequest represents the request body for adding or updating a vehicle.
type VehicleRequest struct {
	VIN          string   `json:"vin" validate:"required"`
	VehicleType  string   `json:"vehicle_type" validate:"required"`
	Manufacturer string   `json:"manufacturer" validate:"required"`
	Condition    string   `json:"condition" validate:"required"`
	ModelName    string   `json:"model_name" validate:"required"`
	Year         int      `json:"year" validate:"required,min=1900"`
	FuelType     string   `json:"fuel_type" validate:"required"`
	Horsepower   int      `json:"horsepower" validate:"required,min=1"`
	Description  string   `json:"description"`
	Colors       []string `json:"colors" validate:"required,min=1"`
}

func (r *VehicleRequest) toInput() usecase.AddVehicleInput {
	return usecase.AddVehicleInput{
		VIN:          r.VIN,
		VehicleType:  r.VehicleType,
		Manufacturer: r.Manufacturer,
		Condition:    r.Condition,
		ModelName:    r.ModelName,
		Year:         r.Year,
		FuelType:     r.FuelType,
		Horsepower:   r.Horsepower,
		Description:  r.Description,
		Colors:       r.Colors,
	}
}

// SearchVehicles handles the inventory search. All criteria are optional and
// combined with AND; without any criteria the whole inventory is returned.
func (h *VehicleHandler) SearchVehicles(c echo.Context) error {
	input := usecase.SearchVehiclesInput{
		Role:         callerRole(c),
		VIN:          c.QueryParam("vin"),
		VehicleType:  c.QueryParam("vehicle_type"),
		Manufacturer: c.QueryParam("manufacturer"),
		Color:        c.QueryParam("color"),
		Condition:    c.QueryParam("condition"),
		FuelType:     c.QueryParam("fuel_type"),
		Keyword:      c.QueryParam("keyword"),
		Availability: c.QueryParam("availability"),
	}

	if raw := c.QueryParam("year_min"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "year_min must be a number")
		}
		input.YearMin = year
	}
	if raw := c.QueryParam("year_max"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "year_max must be a number")
		}
		input.YearMax = year
	}

	listings, err := h.inventoryUC.SearchVehicles(c.Request().Context(), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listings, "Vehicles retrieved successfully")
}

// GetVehicle handles retrieving one vehicle with its parts orders.
func (h *VehicleHandler) GetVehicle(c echo.Context) error {
	details, err := h.inventoryUC.GetVehicle(c.Request().Context(), c.Param("vin"))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, details, "Vehicle retrieved successfully")
}

// AddVehicle handles taking a new vehicle into inventory.
func (h *VehicleHandler) AddVehicle(c echo.Context) error {
	var req VehicleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vehicle input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	vehicle, err := h.inventoryUC.AddVehicle(c.Request().Context(), req.toInput())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, vehicle, "Vehicle added successfully")
}

// UpdateVehicle handles editing a vehicle's mutable fields. The VIN in the
// path wins over any VIN in the body.
func (h *VehicleHandler) UpdateVehicle(c echo.Context) error {
	var req VehicleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vehicle input")
	}
	req.VIN = c.Param("vin")

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	vehicle, err := h.inventoryUC.UpdateVehicle(c.Request().Context(), usecase.UpdateVehicleInput(req.toInput()))
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vehicle, "Vehicle updated successfully")
}

// VehicleCounts handles the dashboard totals.
func (h *VehicleHandler) VehicleCounts(c echo.Context) error {
	counts, err := h.inventoryUC.VehicleCounts(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, counts, "Vehicle counts retrieved successfully")
}

// ListReferenceData handles retrieving the lookup sets for form dropdowns.
func (h *VehicleHandler) ListReferenceData(c echo.Context) error {
	data, err := h.inventoryUC.ListReferenceData(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, data, "Reference data retrieved successfully")
}
