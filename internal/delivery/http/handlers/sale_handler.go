package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/speedo5/FinetechSalesManager-sub002/internal/delivery/http/dto/request"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/delivery/http/dto/response"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/usecase"
	saledto "github.com/speedo5/FinetechSalesManager-sub002/internal/usecase/dto/sale"
)

type SaleHandler struct {
	saleUc usecase.SaleUsecase
}

func NewSaleHandler(saleUc usecase.SaleUsecase) *SaleHandler {
	return &SaleHandler{saleUc: saleUc}
}

func (h *SaleHandler) RecordSale(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req request.RecordSaleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}

	out, err := h.saleUc.RecordSale(&saledto.RecordSaleInput{
		DeviceIMEI:    req.DeviceIMEI,
		ProductID:     req.ProductID,
		Quantity:      int(req.Quantity),
		SellerID:      actor,
		PaymentMethod: req.PaymentMethod,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusCreated, response.Success(out))
}

func (h *SaleHandler) GetSaleByID(c echo.Context) error {
	out, err := h.saleUc.GetSaleByID(c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, response.Success(out))
}
