package mappers

import (
	"github.com/speedo5/FinetechSalesManager-sub002/internal/domain"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/infrastructure/postgres/models"
)

func ToGORMAllocationRecord(record *domain.AllocationRecord) *models.AllocationRecordModel {
	return &models.AllocationRecordModel{
		ID:           record.ID,
		DeviceID:     record.DeviceID,
		ProductID:    record.ProductID,
		FromUserID:   record.FromUserID,
		ToUserID:     record.ToUserID,
		FromLevel:    string(record.FromLevel),
		ToLevel:      string(record.ToLevel),
		Type:         string(record.Type),
		Status:       string(record.Status),
		Notes:        record.Notes,
		RecallReason: record.RecallReason,
		RecalledAt:   record.RecalledAt,
		RecalledBy:   record.RecalledBy,
		CreatedAt:    record.CreatedAt,
	}
}

func ToDomainAllocationRecord(model *models.AllocationRecordModel) *domain.AllocationRecord {
	return &domain.AllocationRecord{
		ID:           model.ID,
		DeviceID:     model.DeviceID,
		ProductID:    model.ProductID,
		FromUserID:   model.FromUserID,
		ToUserID:     model.ToUserID,
		FromLevel:    domain.Role(model.FromLevel),
		ToLevel:      domain.Role(model.ToLevel),
		Type:         domain.AllocationType(model.Type),
		Status:       domain.AllocationStatus(model.Status),
		Notes:        model.Notes,
		RecallReason: model.RecallReason,
		RecalledAt:   model.RecalledAt,
		RecalledBy:   model.RecalledBy,
		CreatedAt:    model.CreatedAt,
	}
}
