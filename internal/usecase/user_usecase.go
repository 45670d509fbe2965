package usecase

import (
	"github.com/google/uuid"

	"github.com/speedo5/FinetechSalesManager-sub002/internal/domain"
)

type UserUsecase interface {
	GetUserByID(userID string) (*domain.User, error)
	ResolveRecipient(identifier string) (*domain.User, error)
}

type DefaultUserUsecase struct {
	userRepo domain.UserRepository
}

func NewDefaultUserUsecase(userRepo domain.UserRepository) *DefaultUserUsecase {
	return &DefaultUserUsecase{
		userRepo: userRepo,
	}
}

func (uc *DefaultUserUsecase) GetUserByID(userID string) (*domain.User, error) {
	return uc.userRepo.GetUserByID(userID)
}

// ResolveRecipient turns an id-or-name recipient identifier into a user before
// any transfer logic runs. UUID-shaped identifiers are looked up by id, anything
// else by exact full name. No silent fallbacks: a miss on the chosen path is a
// not-found error.
func (uc *DefaultUserUsecase) ResolveRecipient(identifier string) (*domain.User, error) {
	if _, err := uuid.Parse(identifier); err == nil {
		return uc.userRepo.GetUserByID(identifier)
	}
	return uc.userRepo.GetUserByName(identifier)
}
