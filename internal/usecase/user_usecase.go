package usecase

import (
	"context"
	"strings"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/domain/entity"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/domain/repository"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

type UpdateProfileInput struct {
	Name         string
	Phone        string
	Bio          string
	ProfileImage string
	Location     *entity.GeoPoint
	CompanyName  string
	FarmSize     float64
	FarmType     []string
	Crops        []string
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies only the fields the caller set; the password
// hash is out of reach of this path.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		user.Name = name
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.Bio != "" {
		user.Bio = input.Bio
	}
	if input.ProfileImage != "" {
		user.ProfileImage = input.ProfileImage
	}
	if input.Location != nil {
		user.Location = *input.Location
	}
	if input.CompanyName != "" {
		user.CompanyName = input.CompanyName
	}
	if input.FarmSize > 0 {
		user.FarmSize = input.FarmSize
	}
	if input.FarmType != nil {
		user.FarmType = input.FarmType
	}
	if input.Crops != nil {
		user.Crops = input.Crops
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
