package mappers

import (
	"github.com/speedo5/FinetechSalesManager-sub002/internal/domain"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/infrastructure/postgres/models"
)

func ToGORMCommission(commission *domain.Commission) *models.CommissionModel {
	return &models.CommissionModel{
		ID:               commission.ID,
		SaleID:           commission.SaleID,
		UserID:           commission.UserID,
		Role:             string(commission.Role),
		Amount:           commission.Amount,
		Status:           string(commission.Status),
		ApprovedBy:       commission.ApprovedBy,
		ApprovedAt:       commission.ApprovedAt,
		PaidAt:           commission.PaidAt,
		PaymentReference: commission.PaymentReference,
		CreatedAt:        commission.CreatedAt,
		UpdatedAt:        commission.UpdatedAt,
	}
}

func ToDomainCommission(model *models.CommissionModel) *domain.Commission {
	return &domain.Commission{
		ID:               model.ID,
		SaleID:           model.SaleID,
		UserID:           model.UserID,
		Role:             domain.Role(model.Role),
		Amount:           model.Amount,
		Status:           domain.CommissionStatus(model.Status),
		ApprovedBy:       model.ApprovedBy,
		ApprovedAt:       model.ApprovedAt,
		PaidAt:           model.PaidAt,
		PaymentReference: model.PaymentReference,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}
