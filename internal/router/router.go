package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"superdaily/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	bookingHandler *handler.BookingHandler,
	productHandler *handler.ProductHandler,
	authHandler *handler.AuthHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Match([]string{http.MethodPost, http.MethodOptions}, "/bookings",
		bookingHandler.Create, handler.CORS(handler.BookingCORS))

	e.GET("/products/featured", productHandler.ListFeatured, handler.CORS(handler.ProductCORS))

	// Every method reaches the handler so that it can answer 405 itself.
	e.Any("/login", authHandler.Login, handler.CORS(handler.LoginCORS))
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
