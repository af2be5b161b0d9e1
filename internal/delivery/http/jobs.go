package http

import (
	"net/http"

	"github.com/anujm4467/trading-journel-sub000/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupJobs(base *echo.Group) {
	v1 := base.Group("/v1/jobs")
	{
		v1.POST("/refresh-quotes", h.refreshQuotes)
	}
}

func (h *HttpAPIHandler) refreshQuotes(c echo.Context) error {
	refreshed, err := h.service.QuoteRefreshService.RefreshOnce(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("quotes refreshed", map[string]int{"refreshed": refreshed}))
}
