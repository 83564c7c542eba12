package services

import (
	"context"

	"github.com/Dewey-byte/angular-project/internal/model"
	"github.com/Dewey-byte/angular-project/internal/repository"
)

type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(r *repository.UserRepository) *UserService {
	return &UserService{Repo: r}
}

func (s *UserService) GetByID(ctx context.Context, userID int64) (*model.User, error) {
	return s.Repo.GetByID(ctx, userID)
}

// UpdateProfile overwrites only the fields the caller provided; nil means
// keep the stored value. Shipping and profile edits share the same columns.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, fullName, address, contactNumber *string) error {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if fullName != nil {
		u.FullName = *fullName
	}
	if address != nil {
		u.Address = *address
	}
	if contactNumber != nil {
		u.ContactNumber = *contactNumber
	}
	return s.Repo.UpdateShipping(ctx, userID, u.FullName, u.Address, u.ContactNumber)
}
