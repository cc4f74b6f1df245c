package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpvalidator "ledger/internal/delivery/http/validator"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	mockUC "ledger/internal/mocks/usecase"
	"ledger/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestContext(t *testing.T, req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = httpvalidator.New()
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestVehicleHandler_SearchVehicles(t *testing.T) {
	inventoryUC := mockUC.NewMockInventoryUsecase(t)
	handler := &VehicleHandler{
		inventoryUC: inventoryUC,
		logger:      slog.Default(),
	}

	listings := []*entity.VehicleListing{
		{
			Vehicle: entity.Vehicle{
				VIN:          "1HGCM82633A004352",
				VehicleType:  "Sedan",
				Manufacturer: "Honda",
				ModelName:    "Accord",
				Year:         2019,
			},
			PartsCost: 100.00,
		},
	}

	inventoryUC.EXPECT().
		SearchVehicles(mock.Anything, usecase.SearchVehiclesInput{
			Role:         entity.RolePublic,
			Manufacturer: "Honda",
			YearMin:      2018,
			Availability: "available",
		}).
		Return(listings, nil)

	req := httptest.NewRequest(http.MethodGet, "/vehicles?manufacturer=Honda&year_min=2018&availability=available", nil)
	c, rec := newTestContext(t, req)

	err := handler.SearchVehicles(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "1HGCM82633A004352")
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestVehicleHandler_SearchVehicles_BadYear(t *testing.T) {
	handler := &VehicleHandler{
		inventoryUC: mockUC.NewMockInventoryUsecase(t),
		logger:      slog.Default(),
	}

	req := httptest.NewRequest(http.MethodGet, "/vehicles?year_min=abc", nil)
	c, rec := newTestContext(t, req)

	err := handler.SearchVehicles(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestVehicleHandler_GetVehicle_NotFound(t *testing.T) {
	inventoryUC := mockUC.NewMockInventoryUsecase(t)
	handler := &VehicleHandler{
		inventoryUC: inventoryUC,
		logger:      slog.Default(),
	}

	inventoryUC.EXPECT().
		GetVehicle(mock.Anything, "UNKNOWNVIN0000000").
		Return(nil, domainerrors.ErrVehicleNotFound)

	req := httptest.NewRequest(http.MethodGet, "/vehicles/UNKNOWNVIN0000000", nil)
	c, rec := newTestContext(t, req)
	c.SetParamNames("vin")
	c.SetParamValues("UNKNOWNVIN0000000")

	err := handler.GetVehicle(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "VEHICLE_NOT_FOUND")
}

func TestVehicleHandler_AddVehicle(t *testing.T) {
	inventoryUC := mockUC.NewMockInventoryUsecase(t)
	handler := &VehicleHandler{
		inventoryUC: inventoryUC,
		logger:      slog.Default(),
	}

	inventoryUC.EXPECT().
		AddVehicle(mock.Anything, mock.MatchedBy(func(input usecase.AddVehicleInput) bool {
			return input.VIN == "1HGCM82633A004352" && len(input.Colors) == 1
		})).
		Return(&entity.Vehicle{VIN: "1HGCM82633A004352", ModelName: "Accord"}, nil)

	body := `{
		"vin": "1HGCM82633A004352",
		"vehicle_type": "Sedan",
		"manufacturer": "Honda",
		"condition": "Good",
		"model_name": "Accord",
		"year": 2019,
		"fuel_type": "Gas",
		"horsepower": 192,
		"colors": ["Blue"]
	}`
	req := httptest.NewRequest(http.MethodPost, "/vehicles", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newTestContext(t, req)

	err := handler.AddVehicle(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Vehicle added successfully")
}

func TestVehicleHandler_AddVehicle_MissingFields(t *testing.T) {
	handler := &VehicleHandler{
		inventoryUC: mockUC.NewMockInventoryUsecase(t),
		logger:      slog.Default(),
	}

	req := httptest.NewRequest(http.MethodPost, "/vehicles", strings.NewReader(`{"vin": "1HGCM82633A004352"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newTestContext(t, req)

	err := handler.AddVehicle(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}
