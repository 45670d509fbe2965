package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/speedo5/FinetechSalesManager-sub002/internal/domain"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/infrastructure/postgres/mappers"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/infrastructure/postgres/models"
)

type DefaultUserRepository struct {
	DB *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{DB: db}
}

func (r *DefaultUserRepository) GetUserByID(userID string) (*domain.User, error) {
	var userModel models.UserModel
	if err := r.DB.First(&userModel, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, userID)
		}
		return nil, err
	}

	return mappers.ToDomainUser(&userModel), nil
}

func (r *DefaultUserRepository) GetUserByName(fullName string) (*domain.User, error) {
	var userModels []models.UserModel
	if err := r.DB.Where("full_name = ?", fullName).Limit(2).Find(&userModels).Error; err != nil {
		return nil, err
	}
	if len(userModels) == 0 {
		return nil, fmt.Errorf("%w: user named %q", domain.ErrNotFound, fullName)
	}
	if len(userModels) > 1 {
		return nil, fmt.Errorf("%w: user name %q is ambiguous", domain.ErrNotFound, fullName)
	}

	return mappers.ToDomainUser(&userModels[0]), nil
}

func (r *DefaultUserRepository) FindActiveUserByRoleAndRegion(role domain.Role, region string) (*domain.User, error) {
	var userModel models.UserModel
	if err := r.DB.
		Where("role = ? AND region = ? AND active = ?", string(role), region, true).
		Order("created_at").
		First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no active %s in region %q", domain.ErrNotFound, role, region)
		}
		return nil, err
	}

	return mappers.ToDomainUser(&userModel), nil
}
