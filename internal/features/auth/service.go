package auth

import (
	"context"
	"errors"
	"time"

	"kisanmitra/internal/common/models"
	"kisanmitra/internal/features/user"
	"kisanmitra/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken          = errors.New("user already exists with this email")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	Role        models.UserRole
	Phone       string
	Location    *models.Location
	FarmDetails *models.FarmDetails
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, string, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, userID string) error
}

type AuthServiceImpl struct {
	UserRepo user.UserRepository
}

func NewAuthService(userRepo user.UserRepository) AuthService {
	return &AuthServiceImpl{UserRepo: userRepo}
}

func (s *AuthServiceImpl) Register(ctx context.Context, input RegisterInput) (*models.User, string, string, error) {
	if existing, _ := s.UserRepo.FindByEmail(ctx, input.Email); existing != nil {
		return nil, "", "", ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}

	role := input.Role
	if role == "" {
		role = models.RoleFarmer
	}

	now := time.Now()
	newUser := &models.User{
		Name:        input.Name,
		Email:       input.Email,
		Password:    string(hashed),
		Phone:       input.Phone,
		Role:        role,
		Location:    input.Location,
		FarmDetails: input.FarmDetails,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.UserRepo.Create(ctx, newUser); err != nil {
		return nil, "", "", err
	}

	return s.issueTokens(ctx, newUser)
}

func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*models.User, string, string, error) {
	usr, err := s.UserRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	return s.issueTokens(ctx, usr)
}

// issueTokens signs both tokens and persists the refresh token, overwriting
// any previous one. At most one refresh token per user is valid at a time,
// so a new login invalidates the previous session's refresh token.
func (s *AuthServiceImpl) issueTokens(ctx context.Context, usr *models.User) (*models.User, string, string, error) {
	accessToken, err := utils.GenerateAccessToken(usr.ID)
	if err != nil {
		return nil, "", "", err
	}

	refreshToken, err := utils.GenerateRefreshToken(usr.ID)
	if err != nil {
		return nil, "", "", err
	}

	if err := s.UserRepo.SetRefreshToken(ctx, usr.ID.Hex(), refreshToken); err != nil {
		return nil, "", "", err
	}
	usr.RefreshToken = refreshToken

	return usr, accessToken, refreshToken, nil
}

// Refresh mints a new access token. The presented token must verify against
// the refresh secret AND match the token stored on the user; a superseded
// token fails exactly like a forged one.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	usr, err := s.UserRepo.FindByID(ctx, claims.UserID)
	if err != nil || usr.RefreshToken != refreshToken {
		return "", ErrInvalidRefreshToken
	}

	return utils.GenerateAccessToken(usr.ID)
}

// Logout clears the stored refresh token, invalidating future refreshes even
// when the token itself has not expired yet.
func (s *AuthServiceImpl) Logout(ctx context.Context, userID string) error {
	return s.UserRepo.SetRefreshToken(ctx, userID, "")
}
