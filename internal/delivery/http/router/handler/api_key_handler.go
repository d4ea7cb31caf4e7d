package handler

import (
	"log/slog"
	"net/http"

	"moneta/internal/delivery/http/response"
	"moneta/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ApiKeyHandler holds dependencies for API key management handlers.
type ApiKeyHandler struct {
	uc     usecase.ApiKeyUsecase
	logger *slog.Logger
}

// NewApiKeyHandler is the constructor for ApiKeyHandler, injected by Fx.
func NewApiKeyHandler(uc usecase.ApiKeyUsecase, logger *slog.Logger) *ApiKeyHandler {
	return &ApiKeyHandler{
		uc:     uc,
		logger: logger,
	}
}

type createApiKeyRequest struct {
	Name          string   `json:"name" validate:"required,min=1,max=100"`
	Live          bool     `json:"live"`
	Scopes        []string `json:"scopes" validate:"omitempty,dive,min=1,max=50"`
	ExpiresInDays int      `json:"expires_in_days" validate:"omitempty,min=1,max=3650"`
}

// Create mints a new API key. The raw key appears in this response only.
func (h *ApiKeyHandler) Create(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req createApiKeyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid api key input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid api key input")
	}

	input := &usecase.CreateApiKeyInput{
		UserID:        userID,
		Name:          req.Name,
		Live:          req.Live,
		Scopes:        req.Scopes,
		ExpiresInDays: req.ExpiresInDays,
	}

	output, err := h.uc.CreateApiKey(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "API key created successfully")
}

// List returns the authenticated user's usable keys, metadata only.
func (h *ApiKeyHandler) List(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	outputs, err := h.uc.ListApiKeys(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outputs, "API keys retrieved successfully")
}

// Revoke revokes one of the authenticated user's keys.
func (h *ApiKeyHandler) Revoke(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	keyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid api key id")
	}

	if err := h.uc.RevokeApiKey(c.Request().Context(), userID, keyID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "API key revoked"}, "API key revoked successfully")
}
