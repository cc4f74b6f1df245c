package handler

import (
	"log/slog"
	"net/http"

	"ledger/internal/delivery/http/response"
	"ledger/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PartsHandlerParams holds dependencies for PartsHandler, injected by Fx.
type PartsHandlerParams struct {
	fx.In

	PartsUC usecase.PartsUsecase
	Logger  *slog.Logger
}

// PartsHandler holds dependencies for parts order and vendor handlers.
type PartsHandler struct {
	partsUC usecase.PartsUsecase
	logger  *slog.Logger
}

// NewPartsHandler is the constructor for PartsHandler.
func NewPartsHandler(params PartsHandlerParams) *PartsHandler {
	return &PartsHandler{
		partsUC: params.PartsUC,
		logger:  params.Logger,
	}
}

// PartRequest represents one line item on a new parts order.
type PartRequest struct {
	VendorPartsNumber string  `json:"vendor_parts_number" validate:"required"`
	Description       string  `json:"description"`
	Quantity          int     `json:"quantity" validate:"required,min=1"`
	UnitPrice         float64 `json:"unit_price" validate:"required,gt=0"`
}

// AddPartsOrderRequest represents the request body for placing a parts order.
type AddPartsOrderRequest struct {
	OrderNumber string        `json:"order_number"`
	VendorName  string        `json:"vendor_name" validate:"required"`
	Parts       []PartRequest `json:"parts" validate:"required,min=1,dive"`
}

// UpdatePartStatusRequest represents the request body for a status move.
type UpdatePartStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AddVendorRequest represents the request body for registering a vendor.
type AddVendorRequest struct {
	Name        string `json:"name" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Street      string `json:"street" validate:"required"`
	City        string `json:"city" validate:"required"`
	State       string `json:"state" validate:"required"`
	PostalCode  string `json:"postal_code" validate:"required"`
}

// AddPartsOrder handles placing a parts order against the vehicle in the path.
func (h *PartsHandler) AddPartsOrder(c echo.Context) error {
	var req AddPartsOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid parts order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.AddPartsOrderInput{
		VIN:         c.Param("vin"),
		OrderNumber: req.OrderNumber,
		VendorName:  req.VendorName,
		Parts:       make([]usecase.PartInput, 0, len(req.Parts)),
	}
	for _, part := range req.Parts {
		input.Parts = append(input.Parts, usecase.PartInput{
			VendorPartsNumber: part.VendorPartsNumber,
			Description:       part.Description,
			Quantity:          part.Quantity,
			UnitPrice:         part.UnitPrice,
		})
	}

	order, err := h.partsUC.AddPartsOrder(c.Request().Context(), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order, "Parts order created successfully")
}

// UpdatePartStatus handles moving one part line forward in its lifecycle.
func (h *PartsHandler) UpdatePartStatus(c echo.Context) error {
	var req UpdatePartStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	part, err := h.partsUC.UpdatePartStatus(c.Request().Context(), usecase.UpdatePartStatusInput{
		OrderNumber:       c.Param("orderNumber"),
		VendorPartsNumber: c.Param("vendorPartsNumber"),
		Status:            req.Status,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, part, "Part status updated successfully")
}

// AddVendor handles registering a parts vendor.
func (h *PartsHandler) AddVendor(c echo.Context) error {
	var req AddVendorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vendor input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	vendor, err := h.partsUC.AddVendor(c.Request().Context(), usecase.AddVendorInput{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Street:      req.Street,
		City:        req.City,
		State:       req.State,
		PostalCode:  req.PostalCode,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, vendor, "Vendor created successfully")
}

// ListVendors handles retrieving every vendor.
func (h *PartsHandler) ListVendors(c echo.Context) error {
	vendors, err := h.partsUC.ListVendors(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vendors, "Vendors retrieved successfully")
}
