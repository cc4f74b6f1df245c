package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	mockUC "ledger/internal/mocks/usecase"
	"ledger/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthHandler_Login(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	handler := &AuthHandler{
		authUC: authUC,
		logger: slog.Default(),
	}

	authUC.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Username: "sales1", Password: "s3cret-Pass!"}).
		Return(&usecase.LoginOutput{
			AccessToken: "signed.jwt.token",
			User: &entity.User{
				Username:  "sales1",
				FirstName: "Sam",
				LastName:  "Seller",
				Role:      entity.RoleSalesperson,
			},
		}, nil)

	body := `{"username": "sales1", "password": "s3cret-Pass!"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newTestContext(t, req)

	err := handler.Login(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed.jwt.token")
	assert.Contains(t, rec.Body.String(), "Salesperson")
	assert.NotContains(t, rec.Body.String(), "s3cret-Pass!")
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	handler := &AuthHandler{
		authUC: authUC,
		logger: slog.Default(),
	}

	authUC.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials)

	body := `{"username": "sales1", "password": "wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newTestContext(t, req)

	err := handler.Login(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestAuthHandler_Login_MissingPassword(t *testing.T) {
	handler := &AuthHandler{
		authUC: mockUC.NewMockAuthUsecase(t),
		logger: slog.Default(),
	}

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username": "sales1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c, rec := newTestContext(t, req)

	err := handler.Login(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}
