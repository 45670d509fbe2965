package mappers

import (
	"github.com/speedo5/FinetechSalesManager-sub002/internal/domain"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/infrastructure/postgres/models"
)

func ToGORMSale(sale *domain.Sale) *models.SaleModel {
	return &models.SaleModel{
		ID:            sale.ID,
		ReceiptNumber: sale.ReceiptNumber,
		DeviceID:      sale.DeviceID,
		ProductID:     sale.ProductID,
		Quantity:      sale.Quantity,
		UnitPrice:     sale.UnitPrice,
		Total:         sale.Total,
		PaymentMethod: sale.PaymentMethod,
		CustomerName:  sale.CustomerName,
		CustomerPhone: sale.CustomerPhone,
		SoldBy:        sale.SoldBy,
		SoldAt:        sale.SoldAt,
	}
}

func ToDomainSale(model *models.SaleModel) *domain.Sale {
	return &domain.Sale{
		ID:            model.ID,
		ReceiptNumber: model.ReceiptNumber,
		DeviceID:      model.DeviceID,
		ProductID:     model.ProductID,
		Quantity:      model.Quantity,
		UnitPrice:     model.UnitPrice,
		Total:         model.Total,
		PaymentMethod: model.PaymentMethod,
		CustomerName:  model.CustomerName,
		CustomerPhone: model.CustomerPhone,
		SoldBy:        model.SoldBy,
		SoldAt:        model.SoldAt,
	}
}
