package usecase

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/speedo5/FinetechSalesManager-sub002/internal/domain"
	publisher "github.com/speedo5/FinetechSalesManager-sub002/internal/infrastructure/kafka"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/infrastructure/metrics"
	saledto "github.com/speedo5/FinetechSalesManager-sub002/internal/usecase/dto/sale"
)

type SaleEventPublisher interface {
	PublishSaleEvent(event publisher.SaleEvent) error
}

type SaleUsecase interface {
	RecordSale(input *saledto.RecordSaleInput) (*saledto.SaleOutput, error)
	GetSaleByID(saleID string) (*saledto.SaleOutput, error)
}

type DefaultSaleUsecase struct {
	saleRepo     domain.SaleRepository
	deviceRepo   domain.DeviceRepository
	productRepo  domain.ProductRepository
	userRepo     domain.UserRepository
	commissionUc CommissionUsecase
	receipts     domain.ReceiptSequence
	publisher    SaleEventPublisher
	metrics      *metrics.SalesMetrics
}

func NewDefaultSaleUsecase(
	saleRepo domain.SaleRepository,
	deviceRepo domain.DeviceRepository,
	productRepo domain.ProductRepository,
	userRepo domain.UserRepository,
	commissionUc CommissionUsecase,
	receipts domain.ReceiptSequence,
	salePublisher SaleEventPublisher,
	salesMetrics *metrics.SalesMetrics) *DefaultSaleUsecase {

	return &DefaultSaleUsecase{
		saleRepo:     saleRepo,
		deviceRepo:   deviceRepo,
		productRepo:  productRepo,
		userRepo:     userRepo,
		commissionUc: commissionUc,
		receipts:     receipts,
		publisher:    salePublisher,
		metrics:      salesMetrics,
	}
}

// RecordSale creates the sale record, transitions the device to its terminal
// state and fans out commissions. Sale row, custody flip and commission batch
// are one unit of work: if any write fails nothing is kept.
func (uc *DefaultSaleUsecase) RecordSale(input *saledto.RecordSaleInput) (*saledto.SaleOutput, error) {
	seller, err := uc.userRepo.GetUserByID(input.SellerID)
	if err != nil {
		return nil, err
	}

	if input.DeviceIMEI != "" {
		return uc.recordDeviceSale(input, seller)
	}
	return uc.recordProductSale(input, seller)
}

func (uc *DefaultSaleUsecase) recordDeviceSale(input *saledto.RecordSaleInput, seller *domain.User) (*saledto.SaleOutput, error) {
	device, err := uc.deviceRepo.GetDeviceByIMEI(input.DeviceIMEI)
	if err != nil {
		return nil, err
	}
	if device.Status == domain.DeviceSold {
		return nil, fmt.Errorf("%w: device %s is already sold", domain.ErrInvalidState, device.IMEI)
	}
	// A seller can only close out stock they hold; admin may sell from depot.
	if seller.Role != domain.RoleAdmin && (device.Status != domain.DeviceAllocated || device.CurrentHolderID != seller.ID) {
		return nil, fmt.Errorf("%w: device %s is not held by seller %s", domain.ErrUnauthorized, device.IMEI, seller.ID)
	}

	product, err := uc.productRepo.GetProductByID(device.ProductID)
	if err != nil {
		return nil, err
	}
	cfg := domain.ResolveCommissionConfig(device.CommissionConfig, product.CommissionConfig)

	sale, err := uc.buildSale(input, seller, product, 1)
	if err != nil {
		return nil, err
	}
	sale.DeviceID = device.ID

	commissions, err := uc.commissionUc.ComputeCommissions(sale.ID, cfg, seller)
	if err != nil {
		return nil, err
	}

	expected := domain.CustodyState{Status: device.Status, HolderID: device.CurrentHolderID}
	if err := uc.saleRepo.CreateDeviceSale(sale, commissions, expected); err != nil {
		return nil, err
	}

	uc.finishSale(sale, commissions, device.IMEI, "device")
	return &saledto.SaleOutput{Sale: sale, Commissions: commissions}, nil
}

func (uc *DefaultSaleUsecase) recordProductSale(input *saledto.RecordSaleInput, seller *domain.User) (*saledto.SaleOutput, error) {
	if input.ProductID == "" {
		return nil, fmt.Errorf("%w: either a device IMEI or a product id is required", domain.ErrValidation)
	}
	if input.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation)
	}

	product, err := uc.productRepo.GetProductByID(input.ProductID)
	if err != nil {
		return nil, err
	}

	sale, err := uc.buildSale(input, seller, product, input.Quantity)
	if err != nil {
		return nil, err
	}

	commissions, err := uc.commissionUc.ComputeCommissions(sale.ID, product.CommissionConfig, seller)
	if err != nil {
		return nil, err
	}

	if err := uc.saleRepo.CreateProductSale(sale, commissions); err != nil {
		return nil, err
	}

	uc.finishSale(sale, commissions, "", "product")
	return &saledto.SaleOutput{Sale: sale, Commissions: commissions}, nil
}

func (uc *DefaultSaleUsecase) buildSale(input *saledto.RecordSaleInput, seller *domain.User, product *domain.Product, quantity int) (*domain.Sale, error) {
	seq, err := uc.receipts.NextReceiptNumber()
	if err != nil {
		return nil, err
	}

	return &domain.Sale{
		ID:            uuid.NewString(),
		ReceiptNumber: fmt.Sprintf("RCP-%06d", seq),
		ProductID:     product.ID,
		Quantity:      quantity,
		UnitPrice:     product.UnitPrice,
		Total:         product.UnitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		PaymentMethod: input.PaymentMethod,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		SoldBy:        seller.ID,
		SoldAt:        time.Now(),
	}, nil
}

func (uc *DefaultSaleUsecase) finishSale(sale *domain.Sale, commissions []*domain.Commission, imei, saleType string) {
	uc.metrics.SalesTotal.WithLabelValues(saleType).Inc()
	amount, _ := sale.Total.Float64()
	uc.metrics.SalesAmountTotal.WithLabelValues(saleType).Add(amount)

	commissionTotal := decimal.Zero
	for _, commission := range commissions {
		commissionTotal = commissionTotal.Add(commission.Amount)
		uc.metrics.CommissionsCreatedTotal.WithLabelValues(string(commission.Role)).Inc()
		commissionAmount, _ := commission.Amount.Float64()
		uc.metrics.CommissionsAmountTotal.WithLabelValues(string(commission.Role)).Add(commissionAmount)
	}

	if uc.publisher != nil {
		go func(event publisher.SaleEvent) {
			if err := uc.publisher.PublishSaleEvent(event); err != nil {
				slog.Error("failed to publish kafka SaleEvent", "sale_id", event.SaleID, "error", err.Error())
			}
		}(publisher.SaleEvent{
			SaleID:          sale.ID,
			ReceiptNumber:   sale.ReceiptNumber,
			DeviceIMEI:      imei,
			ProductID:       sale.ProductID,
			Quantity:        sale.Quantity,
			Total:           sale.Total.String(),
			SoldBy:          sale.SoldBy,
			CommissionCount: len(commissions),
			CommissionTotal: commissionTotal.String(),
		})
	}

	slog.Info("sale recorded", "receipt", sale.ReceiptNumber, "sold_by", sale.SoldBy, "commissions", len(commissions))
}

func (uc *DefaultSaleUsecase) GetSaleByID(saleID string) (*saledto.SaleOutput, error) {
	sale, err := uc.saleRepo.GetSaleByID(saleID)
	if err != nil {
		return nil, err
	}
	commissions, err := uc.commissionUc.GetCommissionsBySaleID(saleID)
	if err != nil {
		return nil, err
	}

	return &saledto.SaleOutput{Sale: sale, Commissions: commissions}, nil
}
