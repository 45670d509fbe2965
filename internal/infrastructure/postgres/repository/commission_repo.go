package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/speedo5/FinetechSalesManager-sub002/internal/domain"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/infrastructure/postgres/mappers"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/infrastructure/postgres/models"
)

type DefaultCommissionRepository struct {
	DB *gorm.DB
}

func NewDefaultCommissionRepository(db *gorm.DB) *DefaultCommissionRepository {
	return &DefaultCommissionRepository{DB: db}
}

func (r *DefaultCommissionRepository) GetCommissionByID(commissionID string) (*domain.Commission, error) {
	var commissionModel models.CommissionModel
	if err := r.DB.First(&commissionModel, "id = ?", commissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: commission %s", domain.ErrNotFound, commissionID)
		}
		return nil, err
	}

	return mappers.ToDomainCommission(&commissionModel), nil
}

func (r *DefaultCommissionRepository) UpdateCommissionStatus(commissionID string, expected domain.CommissionStatus, update domain.CommissionUpdate) error {
	result := r.DB.Model(&models.CommissionModel{}).
		Where("id = ? AND status = ?", commissionID, string(expected)).
		Updates(commissionUpdateValues(update))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: status of commission %s changed concurrently", domain.ErrConflict, commissionID)
	}

	return nil
}

func (r *DefaultCommissionRepository) BulkUpdateCommissionStatus(commissionIDs []string, expected domain.CommissionStatus, update domain.CommissionUpdate) (int64, error) {
	result := r.DB.Model(&models.CommissionModel{}).
		Where("id IN ? AND status = ?", commissionIDs, string(expected)).
		Updates(commissionUpdateValues(update))
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func commissionUpdateValues(update domain.CommissionUpdate) map[string]interface{} {
	values := map[string]interface{}{
		"status": string(update.Status),
	}
	if update.ApprovedBy != "" {
		values["approved_by"] = update.ApprovedBy
	}
	if update.ApprovedAt != nil {
		values["approved_at"] = update.ApprovedAt
	}
	if update.PaidAt != nil {
		values["paid_at"] = update.PaidAt
	}
	if update.PaymentReference != "" {
		values["payment_reference"] = update.PaymentReference
	}

	return values
}

func (r *DefaultCommissionRepository) GetCommissionsBySaleID(saleID string) ([]*domain.Commission, error) {
	var commissionModels []*models.CommissionModel
	if err := r.DB.Model(&models.CommissionModel{}).
		Where("sale_id = ?", saleID).
		Order("created_at").
		Find(&commissionModels).Error; err != nil {
		return nil, err
	}

	return toDomainCommissions(commissionModels), nil
}

func (r *DefaultCommissionRepository) GetCommissionsByUser(userID string, status domain.CommissionStatus) ([]*domain.Commission, error) {
	query := r.DB.Model(&models.CommissionModel{}).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var commissionModels []*models.CommissionModel
	if err := query.Order("created_at DESC").Find(&commissionModels).Error; err != nil {
		return nil, err
	}

	return toDomainCommissions(commissionModels), nil
}

func toDomainCommissions(commissionModels []*models.CommissionModel) []*domain.Commission {
	commissions := make([]*domain.Commission, len(commissionModels))
	for i, commissionModel := range commissionModels {
		commissions[i] = mappers.ToDomainCommission(commissionModel)
	}

	return commissions
}
