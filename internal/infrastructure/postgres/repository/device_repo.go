package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/speedo5/FinetechSalesManager-sub002/internal/domain"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/infrastructure/postgres/mappers"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/infrastructure/postgres/models"
)

type DefaultDeviceRepository struct {
	DB *gorm.DB
}

func NewDefaultDeviceRepository(db *gorm.DB) *DefaultDeviceRepository {
	return &DefaultDeviceRepository{DB: db}
}

func (r *DefaultDeviceRepository) CreateDevice(device *domain.Device) error {
	deviceModel := mappers.ToGORMDevice(device)
	return r.DB.Create(deviceModel).Error
}

func (r *DefaultDeviceRepository) GetDeviceByID(deviceID string) (*domain.Device, error) {
	var deviceModel models.DeviceModel
	if err := r.DB.First(&deviceModel, "id = ?", deviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: device %s", domain.ErrNotFound, deviceID)
		}
		return nil, err
	}

	return mappers.ToDomainDevice(&deviceModel), nil
}

func (r *DefaultDeviceRepository) GetDeviceByIMEI(imei string) (*domain.Device, error) {
	var deviceModel models.DeviceModel
	if err := r.DB.First(&deviceModel, "imei = ?", imei).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: device with IMEI %s", domain.ErrNotFound, imei)
		}
		return nil, err
	}

	return mappers.ToDomainDevice(&deviceModel), nil
}

// UpdateCustody is a compare-and-swap keyed on (status, current holder). A
// concurrent transfer that got there first makes the expected state stale and
// the write is rejected with ErrConflict instead of silently double-allocating.
func (r *DefaultDeviceRepository) UpdateCustody(deviceID string, expected domain.CustodyState, update domain.CustodyUpdate) error {
	return updateCustody(r.DB, deviceID, expected, update)
}

func updateCustody(db *gorm.DB, deviceID string, expected domain.CustodyState, update domain.CustodyUpdate) error {
	values := map[string]interface{}{
		"status":            string(update.Status),
		"current_holder_id": update.HolderID,
	}
	if update.Region != "" {
		values["region"] = update.Region
	}

	result := db.Model(&models.DeviceModel{}).
		Where("id = ? AND status = ? AND current_holder_id = ?", deviceID, string(expected.Status), expected.HolderID).
		Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: custody of device %s changed concurrently", domain.ErrConflict, deviceID)
	}

	return nil
}

func (r *DefaultDeviceRepository) GetDevicesByHolder(holderID string) ([]*domain.Device, error) {
	var deviceModels []*models.DeviceModel
	if err := r.DB.Model(&models.DeviceModel{}).Where("current_holder_id = ?", holderID).Find(&deviceModels).Error; err != nil {
		return nil, err
	}

	devices := make([]*domain.Device, len(deviceModels))
	for i, deviceModel := range deviceModels {
		devices[i] = mappers.ToDomainDevice(deviceModel)
	}

	return devices, nil
}
