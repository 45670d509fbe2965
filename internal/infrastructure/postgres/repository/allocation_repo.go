package repository

import (
	"gorm.io/gorm"

	"github.com/speedo5/FinetechSalesManager-sub002/internal/domain"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/infrastructure/postgres/mappers"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/infrastructure/postgres/models"
)

type DefaultAllocationRepository struct {
	DB *gorm.DB
}

func NewDefaultAllocationRepository(db *gorm.DB) *DefaultAllocationRepository {
	return &DefaultAllocationRepository{DB: db}
}

func (r *DefaultAllocationRepository) CreateAllocationRecord(record *domain.AllocationRecord) error {
	recordModel := mappers.ToGORMAllocationRecord(record)
	return r.DB.Create(recordModel).Error
}

func (r *DefaultAllocationRepository) GetAllocationRecordsByDeviceID(deviceID string) ([]*domain.AllocationRecord, error) {
	var recordModels []*models.AllocationRecordModel
	if err := r.DB.Model(&models.AllocationRecordModel{}).
		Where("device_id = ?", deviceID).
		Order("created_at").
		Find(&recordModels).Error; err != nil {
		return nil, err
	}

	records := make([]*domain.AllocationRecord, len(recordModels))
	for i, recordModel := range recordModels {
		records[i] = mappers.ToDomainAllocationRecord(recordModel)
	}

	return records, nil
}
