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

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
	Logger     *slog.Logger
}

// CustomerHandler holds dependencies for customer-related handlers.
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
	logger     *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler.
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC: params.CustomerUC,
		logger:     params.Logger,
	}
}

// IndividualRequest carries the individual-specific fields.
type IndividualRequest struct {
	SSN       string `json:"ssn" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

// BusinessRequest carries the business-specific fields.
type BusinessRequest struct {
	TaxID            string `json:"tax_id" validate:"required"`
	BusinessName     string `json:"business_name" validate:"required"`
	ContactFirstName string `json:"contact_first_name" validate:"required"`
	ContactLastName  string `json:"contact_last_name" validate:"required"`
	ContactTitle     string `json:"contact_title" validate:"required"`
}

// AddCustomerRequest represents the request body for registering a customer.
// Exactly one of individual or business must be present.
type AddCustomerRequest struct {
	Kind        string             `json:"kind" validate:"required"`
	Email       string             `json:"email" validate:"omitempty,email"`
	PhoneNumber string             `json:"phone_number" validate:"required"`
	Street      string             `json:"street" validate:"required"`
	City        string             `json:"city" validate:"required"`
	State       string             `json:"state" validate:"required"`
	PostalCode  string             `json:"postal_code" validate:"required"`
	Individual  *IndividualRequest `json:"individual,omitempty" validate:"omitempty"`
	Business    *BusinessRequest   `json:"business,omitempty" validate:"omitempty"`
}

// UpdateCustomerRequest represents the request body for editing contact data.
type UpdateCustomerRequest struct {
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Street      string `json:"street" validate:"required"`
	City        string `json:"city" validate:"required"`
	State       string `json:"state" validate:"required"`
	PostalCode  string `json:"postal_code" validate:"required"`
}

// AddCustomer handles registering a new customer.
func (h *CustomerHandler) AddCustomer(c echo.Context) error {
	var req AddCustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.AddCustomerInput{
		Kind:        req.Kind,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Street:      req.Street,
		City:        req.City,
		State:       req.State,
		PostalCode:  req.PostalCode,
	}
	if req.Individual != nil {
		input.Individual = &usecase.IndividualInput{
			SSN:       req.Individual.SSN,
			FirstName: req.Individual.FirstName,
			LastName:  req.Individual.LastName,
		}
	}
	if req.Business != nil {
		input.Business = &usecase.BusinessInput{
			TaxID:            req.Business.TaxID,
			BusinessName:     req.Business.BusinessName,
			ContactFirstName: req.Business.ContactFirstName,
			ContactLastName:  req.Business.ContactLastName,
			ContactTitle:     req.Business.ContactTitle,
		}
	}

	customer, err := h.customerUC.AddCustomer(c.Request().Context(), input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, customer, "Customer created successfully")
}

// GetCustomer handles retrieving a customer by ID, or by SSN/tax ID when the
// identifier query parameter is present instead.
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer ID")
	}

	customer, err := h.customerUC.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customer, "Customer retrieved successfully")
}

// FindCustomer handles the lookup by SSN or tax ID.
func (h *CustomerHandler) FindCustomer(c echo.Context) error {
	identifier := c.QueryParam("identifier")
	if identifier == "" {
		return response.BadRequest(c, "INVALID_INPUT", "identifier query parameter is required")
	}

	customer, err := h.customerUC.FindByIdentifier(c.Request().Context(), identifier)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customer, "Customer retrieved successfully")
}

// ListIdentifiers handles retrieving every registered SSN and tax ID.
func (h *CustomerHandler) ListIdentifiers(c echo.Context) error {
	identifiers, err := h.customerUC.ListIdentifiers(c.Request().Context())
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, identifiers, "Customer identifiers retrieved successfully")
}

// UpdateCustomer handles editing a customer's contact fields.
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer ID")
	}

	var req UpdateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	customer, err := h.customerUC.UpdateCustomer(c.Request().Context(), usecase.UpdateCustomerInput{
		ID:          id,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Street:      req.Street,
		City:        req.City,
		State:       req.State,
		PostalCode:  req.PostalCode,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customer, "Customer updated successfully")
}

// DeleteCustomer handles removing a customer without transactions.
func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer ID")
	}

	if err := h.customerUC.DeleteCustomer(c.Request().Context(), id); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Customer deleted successfully"}, "Customer deleted successfully")
}
