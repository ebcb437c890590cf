package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CORSPolicy describes the CORS headers an endpoint answers with.
type CORSPolicy struct {
	AllowMethods string
	AllowHeaders string
}

var (
	// BookingCORS applies to POST /bookings.
	BookingCORS = CORSPolicy{AllowMethods: "POST, OPTIONS", AllowHeaders: "Content-Type, Authorization"}
	// LoginCORS applies to POST /login.
	LoginCORS = CORSPolicy{AllowMethods: "POST, OPTIONS", AllowHeaders: "Content-Type"}
	// ProductCORS applies to GET /products/featured; only the origin is set.
	ProductCORS = CORSPolicy{}
)

// CORS sets the policy headers on every response and answers OPTIONS with a
// bare 200 (not the 204 of middleware.CORS).
func CORS(policy CORSPolicy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set(echo.HeaderAccessControlAllowOrigin, "*")
			if policy.AllowMethods != "" {
				h.Set(echo.HeaderAccessControlAllowMethods, policy.AllowMethods)
			}
			if policy.AllowHeaders != "" {
				h.Set(echo.HeaderAccessControlAllowHeaders, policy.AllowHeaders)
			}
			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusOK)
			}
			return next(c)
		}
	}
}
