package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/speedo5/FinetechSalesManager-sub002/internal/delivery/http/dto/request"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/delivery/http/dto/response"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/domain"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/usecase"
	stockdto "github.com/speedo5/FinetechSalesManager-sub002/internal/usecase/dto/stock"
)

type StockHandler struct {
	stockUc usecase.StockUsecase
	userUc  usecase.UserUsecase
}

func NewStockHandler(stockUc usecase.StockUsecase, userUc usecase.UserUsecase) *StockHandler {
	return &StockHandler{stockUc: stockUc, userUc: userUc}
}

func (h *StockHandler) AllocateStock(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req request.AllocateStockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}

	recipient, err := h.userUc.ResolveRecipient(req.Recipient)
	if err != nil {
		return errorJSON(c, err)
	}

	record, err := h.stockUc.AllocateStock(&stockdto.AllocateStockInput{
		DeviceIMEI: req.DeviceIMEI,
		FromUserID: actor,
		ToUserID:   recipient.ID,
		Notes:      req.Notes,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, response.Success(record))
}

func (h *StockHandler) BulkAllocateStock(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req request.BulkAllocateStockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}

	recipient, err := h.userUc.ResolveRecipient(req.Recipient)
	if err != nil {
		return errorJSON(c, err)
	}

	result, err := h.stockUc.BulkAllocateStock(&stockdto.BulkAllocateStockInput{
		DeviceIMEIs: req.DeviceIMEIs,
		FromUserID:  actor,
		ToUserID:    recipient.ID,
		Notes:       req.Notes,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, response.Success(result))
}

func (h *StockHandler) RecallStock(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req request.RecallStockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}

	record, err := h.stockUc.RecallStock(&stockdto.RecallStockInput{
		DeviceIMEI: req.DeviceIMEI,
		RecallerID: actor,
		Reason:     req.Reason,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, response.Success(record))
}

func (h *StockHandler) BulkRecallStock(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req request.BulkRecallStockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}

	result, err := h.stockUc.BulkRecallStock(&stockdto.BulkRecallStockInput{
		DeviceIMEIs: req.DeviceIMEIs,
		RecallerID:  actor,
		Reason:      req.Reason,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, response.Success(result))
}

func (h *StockHandler) RegisterDevice(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req request.RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}

	input := &stockdto.RegisterDeviceInput{
		IMEI:         req.IMEI,
		SerialNumber: req.SerialNumber,
		ProductID:    req.ProductID,
		RegisteredBy: actor,
	}
	if req.CommissionConfig != nil {
		input.CommissionConfig = &domain.CommissionConfig{
			FOCommission:              req.CommissionConfig.FoCommission,
			TeamLeaderCommission:      req.CommissionConfig.TeamLeaderCommission,
			RegionalManagerCommission: req.CommissionConfig.RegionalManagerCommission,
		}
	}

	device, err := h.stockUc.RegisterDevice(input)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, response.Success(device))
}

func (h *StockHandler) GetDeviceByIMEI(c echo.Context) error {
	imei := c.Param("imei")
	out, err := h.stockUc.GetDeviceByIMEI(imei)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, response.Success(out))
}

func (h *StockHandler) GetMyDevices(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	devices, err := h.stockUc.GetDevicesByHolder(actor)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, response.Success(devices))
}
