package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/speedo5/FinetechSalesManager-sub002/internal/delivery/http/dto/request"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/delivery/http/dto/response"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/domain"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/usecase"
)

type CommissionHandler struct {
	commissionUc usecase.CommissionUsecase
}

func NewCommissionHandler(commissionUc usecase.CommissionUsecase) *CommissionHandler {
	return &CommissionHandler{commissionUc: commissionUc}
}

func (h *CommissionHandler) ApproveCommission(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	if err := h.commissionUc.ApproveCommission(c.Param("id"), actor); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, response.Success(nil))
}

func (h *CommissionHandler) RejectCommission(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	if err := h.commissionUc.RejectCommission(c.Param("id"), actor); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, response.Success(nil))
}

func (h *CommissionHandler) PayCommission(c echo.Context) error {
	if _, err := actorID(c); err != nil {
		return err
	}
	var body struct {
		PaymentReference string `json:"paymentReference"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("invalid request body"))
	}
	if err := h.commissionUc.PayCommission(c.Param("id"), body.PaymentReference); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, response.Success(nil))
}

func (h *CommissionHandler) BulkApproveCommissions(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	var req request.BulkCommissionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}
	updated, err := h.commissionUc.BulkApproveCommissions(req.CommissionIDs, actor)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, response.Success(map[string]int64{"updated": updated}))
}

func (h *CommissionHandler) BulkPayCommissions(c echo.Context) error {
	if _, err := actorID(c); err != nil {
		return err
	}
	var req struct {
		CommissionIDs    []string `json:"commissionIds" validate:"required,min=1,dive,required"`
		PaymentReference string   `json:"paymentReference"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.Error(err.Error()))
	}
	updated, err := h.commissionUc.BulkPayCommissions(req.CommissionIDs, req.PaymentReference)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, response.Success(map[string]int64{"updated": updated}))
}

func (h *CommissionHandler) GetMyCommissions(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	status := domain.CommissionStatus(c.QueryParam("status"))
	commissions, err := h.commissionUc.GetCommissionsByUser(actor, status)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, response.Success(commissions))
}

func (h *CommissionHandler) GetCommissionsBySale(c echo.Context) error {
	commissions, err := h.commissionUc.GetCommissionsBySaleID(c.Param("saleId"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, response.Success(commissions))
}
