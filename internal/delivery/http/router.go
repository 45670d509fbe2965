package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/speedo5/FinetechSalesManager-sub002/internal/delivery/http/handlers"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/usecase"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// NewRouter builds the Echo instance with all service routes registered.
func NewRouter(
	stockUc usecase.StockUsecase,
	saleUc usecase.SaleUsecase,
	commissionUc usecase.CommissionUsecase,
	userUc usecase.UserUsecase,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	stockHandler := handlers.NewStockHandler(stockUc, userUc)
	saleHandler := handlers.NewSaleHandler(saleUc)
	commissionHandler := handlers.NewCommissionHandler(commissionUc)

	api := e.Group("/api/v1")

	stock := api.Group("/stock")
	stock.POST("/allocate", stockHandler.AllocateStock)
	stock.POST("/allocate/bulk", stockHandler.BulkAllocateStock)
	stock.POST("/recall", stockHandler.RecallStock)
	stock.POST("/recall/bulk", stockHandler.BulkRecallStock)

	devices := api.Group("/devices")
	devices.POST("", stockHandler.RegisterDevice)
	devices.GET("/mine", stockHandler.GetMyDevices)
	devices.GET("/:imei", stockHandler.GetDeviceByIMEI)

	sales := api.Group("/sales")
	sales.POST("", saleHandler.RecordSale)
	sales.GET("/:id", saleHandler.GetSaleByID)
	sales.GET("/:saleId/commissions", commissionHandler.GetCommissionsBySale)

	commissions := api.Group("/commissions")
	commissions.GET("", commissionHandler.GetMyCommissions)
	commissions.POST("/:id/approve", commissionHandler.ApproveCommission)
	commissions.POST("/:id/reject", commissionHandler.RejectCommission)
	commissions.POST("/:id/pay", commissionHandler.PayCommission)
	commissions.POST("/approve/bulk", commissionHandler.BulkApproveCommissions)
	commissions.POST("/pay/bulk", commissionHandler.BulkPayCommissions)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(200, "ok")
	})

	return e
}
