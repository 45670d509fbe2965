package mappers

import (
	"github.com/speedo5/FinetechSalesManager-sub002/internal/domain"
	"github.com/speedo5/FinetechSalesManager-sub002/internal/infrastructure/postgres/models"
)

func ToGORMUser(user *domain.User) *models.UserModel {
	return &models.UserModel{
		ID:                user.ID,
		FullName:          user.FullName,
		Role:              string(user.Role),
		Region:            user.Region,
		TeamLeaderID:      user.TeamLeaderID,
		RegionalManagerID: user.RegionalManagerID,
		Active:            user.Active,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}
}

func ToDomainUser(model *models.UserModel) *domain.User {
	return &domain.User{
		ID:                model.ID,
		FullName:          model.FullName,
		Role:              domain.Role(model.Role),
		Region:            model.Region,
		TeamLeaderID:      model.TeamLeaderID,
		RegionalManagerID: model.RegionalManagerID,
		Active:            model.Active,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}
