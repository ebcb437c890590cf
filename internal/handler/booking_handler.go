package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"superdaily/internal/errors"
	"superdaily/internal/service"
)

// BookingHandler handles booking endpoints.
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBookingResponse represents a successful booking creation.
type CreateBookingResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// Create godoc
// @Summary Create a booking
// @Description Accepts a flat JSON object; keys outside the bookings column allow-list are ignored.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Booking columns"
// @Success 200 {object} CreateBookingResponse
// @Failure 400 {object} errors.Response
// @Failure 422 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.Response{
			Message: errors.ErrInvalidBody.Error(),
		})
	}

	id, err := h.bookingService.Create(c.Request().Context(), body)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToResponse())
	}

	return c.JSON(http.StatusOK, CreateBookingResponse{
		Success: true,
		ID:      strconv.FormatInt(id, 10),
	})
}
