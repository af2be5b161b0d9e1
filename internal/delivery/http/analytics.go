package http

import (
	"net/http"

	"github.com/anujm4467/trading-journel-sub000/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupAnalytics(base *echo.Group) {
	v1 := base.Group("/v1")
	{
		v1.GET("/analytics/dashboard", h.getDashboard)
		v1.GET("/charges/preview", h.previewCharges)
	}
}

func (h *HttpAPIHandler) getDashboard(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.DashboardRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid query parameters"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	dashboard, err := h.service.AnalyticsService.GetDashboard(ctx, *req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to build dashboard", nil))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("success", dashboard))
}

func (h *HttpAPIHandler) previewCharges(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.ChargePreviewRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid query parameters"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	charges := h.service.AnalyticsService.PreviewCharges(ctx, *req)

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("success", charges))
}
