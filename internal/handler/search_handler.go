package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"answerbox/internal/service"
)

type SearchHandler struct {
	service service.SearchService
}

func NewSearchHandler(service service.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

func (h *SearchHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/search", h.Search)
}

func (h *SearchHandler) Search(c echo.Context) error {
	var body map[string]any
	if err := c.Bind(&body); err != nil {
		return Error(c, http.StatusBadRequest, "Invalid request body")
	}
	resp, err := h.service.Search(c.Request().Context(), clientID(c.Request()), body)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// clientID derives the rate-limit bucket key from proxy headers. Requests
// without either header share the "unknown" bucket; the socket address is
// deliberately not used as a fallback.
func clientID(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	return "unknown"
}
