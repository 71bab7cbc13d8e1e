package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"answerbox/internal/handler"
)

// NewRouter assembles the echo application: global middleware plus the API
// routes.
func NewRouter(searchHandler *handler.SearchHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(SecurityHeadersMiddleware())
	e.Use(RequestLoggerMiddleware())

	api := e.Group("/api")
	searchHandler.RegisterRoutes(api)
	api.GET("/health", health)

	return e
}

func health(c echo.Context) error {
	return c.JSON(nethttp.StatusOK, map[string]string{"status": "ok"})
}
