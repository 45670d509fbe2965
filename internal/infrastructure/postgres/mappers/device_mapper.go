package mappers

import (
	"github.com/speedo5/FinetechSalesManager-sub002/internal/domain"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/infrastructure/postgres/models"
)

func ToGORMDevice(device *domain.Device) *models.DeviceModel {
	model := &models.DeviceModel{
		ID:              device.ID,
		IMEI:            device.IMEI,
		SerialNumber:    device.SerialNumber,
		ProductID:       device.ProductID,
		Status:          string(device.Status),
		CurrentHolderID: device.CurrentHolderID,
		Region:          device.Region,
		RegisteredBy:    device.RegisteredBy,
		CreatedAt:       device.CreatedAt,
		UpdatedAt:       device.UpdatedAt,
	}
	if device.CommissionConfig != nil {
		model.HasCommissionOverride = true
		model.FoCommission = device.CommissionConfig.FOCommission
		model.TeamLeaderCommission = device.CommissionConfig.TeamLeaderCommission
		model.RegionalManagerCommission = device.CommissionConfig.RegionalManagerCommission
	}

	return model
}

func ToDomainDevice(model *models.DeviceModel) *domain.Device {
	device := &domain.Device{
		ID:              model.ID,
		IMEI:            model.IMEI,
		SerialNumber:    model.SerialNumber,
		ProductID:       model.ProductID,
		Status:          domain.DeviceStatus(model.Status),
		CurrentHolderID: model.CurrentHolderID,
		Region:          model.Region,
		RegisteredBy:    model.RegisteredBy,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
	if model.HasCommissionOverride {
		device.CommissionConfig = &domain.CommissionConfig{
			FOCommission:              model.FoCommission,
			TeamLeaderCommission:      model.TeamLeaderCommission,
			RegionalManagerCommission: model.RegionalManagerCommission,
		}
	}

	return device
}
