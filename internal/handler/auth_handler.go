package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"superdaily/internal/errors"
	"superdaily/internal/model"
	"superdaily/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Phone    *scalarText `json:"phone" validate:"required"`
	Password *scalarText `json:"password" validate:"required"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	User    model.PublicUser `json:"user"`
}

// scalarText accepts a JSON string, number or boolean as text.
type scalarText string

func (s *scalarText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = scalarText(str)
		return nil
	}
	switch string(data) {
	case "true":
		*s = "1"
		return nil
	case "false":
		*s = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = scalarText(n.String())
	return nil
}

// Login godoc
// @Summary Login user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Failure 403 {object} errors.Response
// @Failure 405 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	if c.Request().Method != http.MethodPost {
		httpErr := errors.MapErrorToHTTP(errors.ErrMethodNotAllowed)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToResponse())
	}

	var req LoginRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return h.fail(errors.ErrCredentialsRequired)
	}
	if err := c.Validate(&req); err != nil {
		return h.fail(errors.ErrCredentialsRequired)
	}

	user, err := h.authService.Login(c.Request().Context(), string(*req.Phone), string(*req.Password))
	if err != nil {
		return h.fail(err)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Success: true,
		Message: "Login successful",
		User:    user.Public(),
	})
}

func (h *AuthHandler) fail(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToResponse())
}
