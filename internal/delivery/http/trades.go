package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/anujm4467/trading-journel-sub000/internal/dto"
	"github.com/anujm4467/trading-journel-sub000/internal/service"
	"github.com/anujm4467/trading-journel-sub000/pkg/utils"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func (h *HttpAPIHandler) SetupTrades(base *echo.Group) {
	v1 := base.Group("/v1/trades")
	{
		v1.POST("", h.createTrade)
		v1.GET("", h.listTrades)
		v1.GET("/:id", h.getTrade)
		v1.PUT("/:id/close", h.closeTrade)
		v1.DELETE("/:id", h.deleteTrade)
	}
}

func (h *HttpAPIHandler) createTrade(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.CreateTradeRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	trade, err := h.service.TradeService.Create(ctx, *req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to create trade", nil))
	}

	return c.JSON(http.StatusCreated, dto.NewBaseResponse(http.StatusCreated, "trade created", trade))
}

func (h *HttpAPIHandler) listTrades(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := strconv.ParseUint(c.QueryParam("user_id"), 10, 64)
	if err != nil || userID == 0 {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("user_id is required"))
	}

	param := dto.GetTradesParam{
		UserID:     uint(userID),
		Symbol:     c.QueryParam("symbol"),
		Instrument: c.QueryParam("instrument"),
	}

	if strategies := c.QueryParam("strategies"); strategies != "" {
		for _, part := range strings.Split(strategies, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				param.Strategies = append(param.Strategies, trimmed)
			}
		}
	}

	if onlyOpen := c.QueryParam("only_open"); onlyOpen != "" {
		parsed, err := strconv.ParseBool(onlyOpen)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("only_open must be a boolean"))
		}
		param.OnlyOpen = utils.ToPointer(parsed)
	}

	trades, err := h.service.TradeService.List(ctx, param)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to list trades", nil))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("success", trades))
}

func (h *HttpAPIHandler) getTrade(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := tradeID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid trade id"))
	}

	trade, err := h.service.TradeService.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, dto.NewBaseResponse(http.StatusNotFound, "trade not found", nil))
		}
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to fetch trade", nil))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("success", trade))
}

func (h *HttpAPIHandler) closeTrade(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := tradeID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid trade id"))
	}

	req := new(dto.CloseTradeRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	trade, err := h.service.TradeService.Close(ctx, id, *req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return c.JSON(http.StatusNotFound, dto.NewBaseResponse(http.StatusNotFound, "trade not found", nil))
		case errors.Is(err, service.ErrTradeAlreadyClosed):
			return c.JSON(http.StatusConflict, dto.NewBaseResponse(http.StatusConflict, err.Error(), nil))
		default:
			return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to close trade", nil))
		}
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("trade closed", trade))
}

func (h *HttpAPIHandler) deleteTrade(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := tradeID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid trade id"))
	}

	if err := h.service.TradeService.Delete(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, "failed to delete trade", nil))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("trade deleted", nil))
}

func tradeID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.ErrBadRequest
	}
	return uint(id), nil
}
