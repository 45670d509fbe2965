package mappers

import (
	"github.com/speedo5/FinetechSalesManager-sub002/internal/domain"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/infrastructure/postgres/models"
)

func ToGORMProduct(product *domain.Product) *models.ProductModel {
	return &models.ProductModel{
		ID:                        product.ID,
		Name:                      product.Name,
		UnitPrice:                 product.UnitPrice,
		FoCommission:              product.CommissionConfig.FOCommission,
		TeamLeaderCommission:      product.CommissionConfig.TeamLeaderCommission,
		RegionalManagerCommission: product.CommissionConfig.RegionalManagerCommission,
		CreatedAt:                 product.CreatedAt,
		UpdatedAt:                 product.UpdatedAt,
	}
}

func ToDomainProduct(model *models.ProductModel) *domain.Product {
	return &domain.Product{
		ID:        model.ID,
		Name:      model.Name,
		UnitPrice: model.UnitPrice,
		CommissionConfig: domain.CommissionConfig{
			FOCommission:              model.FoCommission,
			TeamLeaderCommission:      model.TeamLeaderCommission,
			RegionalManagerCommission: model.RegionalManagerCommission,
		},
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
