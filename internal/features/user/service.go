package user

import (
	"context"
	"errors"

	"kisanmitra/internal/common/models"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

var ErrWrongPassword = errors.New("password is incorrect")

type UpdateProfileInput struct {
	Name        string
	Phone       *string
	Avatar      string
	Location    *models.Location
	FarmDetails *models.FarmDetails
}

type UserService interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) (*models.User, error)
	ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error
	DeleteAccount(ctx context.Context, id, password string) error
}

type UserServiceImpl struct {
	UserRepo UserRepository
}

func NewUserService(userRepo UserRepository) UserService {
	return &UserServiceImpl{UserRepo: userRepo}
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.UserRepo.FindByID(ctx, id)
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) (*models.User, error) {
	fields := bson.M{}
	if input.Name != "" {
		fields["name"] = input.Name
	}
	if input.Phone != nil {
		fields["phone"] = *input.Phone
	}
	if input.Avatar != "" {
		fields["avatar"] = input.Avatar
	}
	if input.Location != nil {
		fields["location"] = input.Location
	}
	if input.FarmDetails != nil {
		fields["farm_details"] = input.FarmDetails
	}

	return s.UserRepo.UpdateProfile(ctx, id, fields)
}

func (s *UserServiceImpl) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	usr, err := s.UserRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(currentPassword)); err != nil {
		return ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.UserRepo.UpdatePassword(ctx, id, string(hashed))
}

// DeleteAccount physically removes the user after confirming the password.
func (s *UserServiceImpl) DeleteAccount(ctx context.Context, id, password string) error {
	usr, err := s.UserRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return ErrWrongPassword
	}

	return s.UserRepo.Delete(ctx, id)
}
